package drive

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"github.com/mastercactapus/wheelbase/wcode"
	"github.com/mastercactapus/wheelbase/wheels"
)

type Options struct {
	InvertLeft  bool
	InvertRight bool

	// Timeout bounds each call to the adapter. Zero means no limit.
	Timeout time.Duration
}

// Status is a snapshot of the drive after a command.
type Status struct {
	State      wheels.State `json:"state"`
	Speed      uint8        `json:"speed"`
	Multiplier uint8        `json:"multiplier,omitempty"`
	Output     Output       `json:"output"`
}

// Drive serializes access to a wheels.Controller and forwards every
// dispatched event to an Adapter.
type Drive struct {
	a   Adapter
	opt Options

	mx   sync.Mutex
	c    *wheels.Controller
	ctx  context.Context
	err  error
	last Output

	state chan Status
}

func New(a Adapter, opt Options) *Drive {
	d := &Drive{
		a:     a,
		opt:   opt,
		c:     wheels.NewController(),
		state: make(chan Status, 1),
	}
	for _, e := range wheels.Events {
		e := e
		d.c.Bind(e, wheels.HandlerFunc(func(p, s uint8) { d.handle(e, p, s) }))
	}
	return d
}

// handle runs with d.mx held, from within Controller.Apply.
func (d *Drive) handle(e wheels.Event, p, s uint8) {
	out := d.opt.apply(Mix(e, p, s))
	d.last = out

	ctx := d.ctx
	if d.opt.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.opt.Timeout)
		defer cancel()
	}
	err := d.a.SetWheels(ctx, out)
	if err != nil && d.err == nil {
		d.err = err
	}
}

// Apply runs cmd through the controller. The controller state advances even
// if the adapter fails; the adapter error is returned.
func (d *Drive) Apply(ctx context.Context, cmd wheels.Command) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	return d.apply(ctx, cmd)
}

func (d *Drive) apply(ctx context.Context, cmd wheels.Command) error {
	d.ctx, d.err = ctx, nil
	d.c.Apply(cmd)
	err := d.err
	d.ctx, d.err = nil, nil

	d.publish()
	if err != nil {
		log.Printf("ERROR: apply %s: %v", cmd, err)
	}
	return err
}

// Run applies every block from r until EOF. It returns the number of blocks
// applied and stops at the first parse, range or adapter error.
func (d *Drive) Run(ctx context.Context, r wcode.Reader) (int, error) {
	var n int
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		b, err := r.Read()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		cmds, err := b.Commands()
		if err != nil {
			return n, err
		}
		d.mx.Lock()
		for _, cmd := range cmds {
			err = d.apply(ctx, cmd)
			if err != nil {
				break
			}
		}
		d.mx.Unlock()
		if err != nil {
			return n, err
		}
		n++
	}
}

func (d *Drive) status() Status {
	s := Status{
		State:  d.c.State(),
		Speed:  d.c.Speed().Value(),
		Output: d.last,
	}
	if m, ok := d.c.ActiveMultiplier(); ok {
		s.Multiplier = m.Value()
	}
	return s
}

func (d *Drive) publish() {
	s := d.status()
	select {
	case <-d.state:
	default:
	}
	select {
	case d.state <- s:
	default:
	}
}

// Status returns the current snapshot.
func (d *Drive) Status() Status {
	d.mx.Lock()
	defer d.mx.Unlock()
	return d.status()
}

// State returns a channel that receives the latest status after each
// command. Stale values are dropped if nobody is reading.
func (d *Drive) State() <-chan Status { return d.state }

// Close stops the wheels and closes the adapter.
func (d *Drive) Close() error {
	d.mx.Lock()
	defer d.mx.Unlock()

	ctx := context.Background()
	err := d.apply(ctx, wheels.Stop())
	cErr := d.a.Close()
	if err != nil {
		return err
	}
	return cErr
}
