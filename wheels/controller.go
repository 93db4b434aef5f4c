package wheels

import "encoding"

// State is the motion state reported after the most recent command.
type State uint8

const (
	Stopped State = iota
	MovingForward
	MovingBackward
	TurningRight
	TurningLeft
)

var (
	_ encoding.TextMarshaler   = State(0)
	_ encoding.TextUnmarshaler = (*State)(nil)
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case MovingForward:
		return "MovingForward"
	case MovingBackward:
		return "MovingBackward"
	case TurningRight:
		return "TurningRight"
	case TurningLeft:
		return "TurningLeft"
	}
	return "Unknown"
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(b []byte) error {
	for _, v := range []State{Stopped, MovingForward, MovingBackward, TurningRight, TurningLeft} {
		if v.String() == string(b) {
			*s = v
			return nil
		}
	}
	return &UnknownStateError{Name: string(b)}
}

// Event returns the callback slot dispatched when entering s.
func (s State) Event() Event {
	switch s {
	case MovingForward:
		return EventMovingForward
	case MovingBackward:
		return EventMovingBackward
	case TurningRight:
		return EventTurningRight
	case TurningLeft:
		return EventTurningLeft
	}
	return EventStopped
}

type UnknownStateError struct {
	Name string
}

func (err *UnknownStateError) Error() string {
	return "unknown motion state " + err.Name
}

// Controller tracks the motion state of a differential-drive base and
// dispatches a callback for every motion command.
//
// A Controller is not safe for concurrent use; callers that share one
// must serialize calls to Apply and the Bind methods.
type Controller struct {
	state State
	speed Speed

	mult    CounterRotationMultiplier
	hasMult bool

	callbacks Callbacks
}

// NewController returns a stopped Controller at DefaultSpeed with no
// multiplier and no callbacks bound.
func NewController() *Controller {
	return &Controller{
		state: Stopped,
		speed: Speed{v: DefaultSpeed},
	}
}

func (c *Controller) State() State { return c.state }
func (c *Controller) Speed() Speed { return c.speed }

// ActiveMultiplier returns the multiplier stored by the last
// rotate-with-counter command. It is never cleared by other commands.
func (c *Controller) ActiveMultiplier() (CounterRotationMultiplier, bool) {
	return c.mult, c.hasMult
}

func (c *Controller) Bind(e Event, h Handler)      { c.callbacks.Bind(e, h) }
func (c *Controller) BindMovingForward(h Handler)  { c.callbacks.Bind(EventMovingForward, h) }
func (c *Controller) BindMovingBackward(h Handler) { c.callbacks.Bind(EventMovingBackward, h) }
func (c *Controller) BindTurningRight(h Handler)   { c.callbacks.Bind(EventTurningRight, h) }
func (c *Controller) BindTurningLeft(h Handler)    { c.callbacks.Bind(EventTurningLeft, h) }
func (c *Controller) BindStopped(h Handler)        { c.callbacks.Bind(EventStopped, h) }

// Apply transitions the controller and runs the matching callback before
// returning. ChangeSpeed only updates the base speed and runs nothing.
func (c *Controller) Apply(cmd Command) {
	var secondary uint8
	switch cmd.kind {
	case KindChangeSpeed:
		c.speed = cmd.speed
		return
	case KindMoveForward:
		c.state = MovingForward
	case KindMoveBackward:
		c.state = MovingBackward
	case KindRotateRight:
		c.state = TurningRight
		secondary = c.counterSpeed()
	case KindRotateLeft:
		c.state = TurningLeft
		secondary = c.counterSpeed()
	case KindRotateRightWithCounter:
		c.state = TurningRight
		c.mult, c.hasMult = cmd.mult, true
		secondary = c.counterSpeed()
	case KindRotateLeftWithCounter:
		c.state = TurningLeft
		c.mult, c.hasMult = cmd.mult, true
		secondary = c.counterSpeed()
	default:
		c.state = Stopped
	}

	c.callbacks.Dispatch(c.state.Event(), c.speed.v, secondary)
}

func (c *Controller) counterSpeed() uint8 {
	if !c.hasMult {
		return c.speed.v
	}
	return c.mult.EffectiveSpeed(c.speed).v
}
