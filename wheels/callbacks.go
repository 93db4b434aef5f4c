package wheels

import "reflect"

// Event names a callback slot. There is one slot per motion state.
type Event uint8

const (
	EventMovingForward Event = iota
	EventMovingBackward
	EventTurningRight
	EventTurningLeft
	EventStopped

	numEvents
)

// Events lists every callback slot in order.
var Events = [...]Event{
	EventMovingForward,
	EventMovingBackward,
	EventTurningRight,
	EventTurningLeft,
	EventStopped,
}

func (e Event) String() string {
	switch e {
	case EventMovingForward:
		return "moving_forward"
	case EventMovingBackward:
		return "moving_backward"
	case EventTurningRight:
		return "turning_right"
	case EventTurningLeft:
		return "turning_left"
	case EventStopped:
		return "stopped"
	}
	return "unknown"
}

// A Handler receives the primary (base) speed and the secondary speed of a
// transition. Secondary is 0 for straight moves and stops.
//
// Handlers run synchronously inside Controller.Apply and may block.
type Handler interface {
	Handle(primary, secondary uint8)
}

// HandlerFunc adapts an ordinary function to a Handler.
type HandlerFunc func(primary, secondary uint8)

func (f HandlerFunc) Handle(primary, secondary uint8) { f(primary, secondary) }

// Callbacks holds one optional Handler per Event.
type Callbacks struct {
	slots [numEvents]Handler
}

// Bind replaces the handler for e. A nil handler, including a nil
// HandlerFunc or nil pointer, empties the slot.
func (c *Callbacks) Bind(e Event, h Handler) {
	if e >= numEvents {
		return
	}
	if isNil(h) {
		h = nil
	}
	c.slots[e] = h
}

func isNil(h Handler) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Bound reports whether a handler is bound to e.
func (c *Callbacks) Bound(e Event) bool {
	return e < numEvents && c.slots[e] != nil
}

// Dispatch calls the handler bound to e, if any.
func (c *Callbacks) Dispatch(e Event, primary, secondary uint8) {
	if e >= numEvents || c.slots[e] == nil {
		return
	}
	c.slots[e].Handle(primary, secondary)
}
