package sim

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mastercactapus/wheelbase/drive"
)

// ErrClosed is returned by SetWheels after Close.
var ErrClosed = errors.New("simulated base closed")

// Defaults roughly match a small hobby base.
const (
	DefaultMaxWheelSpeed = 0.5
	DefaultTrackWidth    = 0.2
)

// Base is a simulated differential-drive base.
type Base struct {
	// MaxWheelSpeed is the wheel surface speed, in m/s, at 100% duty.
	MaxWheelSpeed float64
	// TrackWidth is the distance between the wheels in meters.
	TrackWidth float64

	// Fail, if set, is returned by SetWheels. The output is still recorded.
	Fail error

	mx      sync.Mutex
	outputs []drive.Output
	pose    Pose
	closed  bool
}

var _ drive.Adapter = &Base{}

func NewBase() *Base {
	return &Base{
		MaxWheelSpeed: DefaultMaxWheelSpeed,
		TrackWidth:    DefaultTrackWidth,
	}
}

func (b *Base) SetWheels(ctx context.Context, out drive.Output) error {
	b.mx.Lock()
	defer b.mx.Unlock()
	if b.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	b.outputs = append(b.outputs, out)
	return b.Fail
}

func (b *Base) Close() error {
	b.mx.Lock()
	b.closed = true
	b.mx.Unlock()
	return nil
}

// Outputs returns every output written so far.
func (b *Base) Outputs() []drive.Output {
	b.mx.Lock()
	defer b.mx.Unlock()
	res := make([]drive.Output, len(b.outputs))
	copy(res, b.outputs)
	return res
}

// Last returns the most recent output, or zero if none.
func (b *Base) Last() drive.Output {
	b.mx.Lock()
	defer b.mx.Unlock()
	if len(b.outputs) == 0 {
		return drive.Output{}
	}
	return b.outputs[len(b.outputs)-1]
}

func (b *Base) Pose() Pose {
	b.mx.Lock()
	defer b.mx.Unlock()
	return b.pose
}

// Step advances the pose by dt using the last output.
func (b *Base) Step(dt time.Duration) Pose {
	b.mx.Lock()
	defer b.mx.Unlock()

	var out drive.Output
	if len(b.outputs) > 0 {
		out = b.outputs[len(b.outputs)-1]
	}
	vl := float64(out.Left) / 100 * b.MaxWheelSpeed
	vr := float64(out.Right) / 100 * b.MaxWheelSpeed

	b.pose = b.pose.advance((vl+vr)/2, (vr-vl)/b.TrackWidth, dt.Seconds())
	return b.pose
}
