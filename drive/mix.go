package drive

import "github.com/mastercactapus/wheelbase/wheels"

// Mix converts a dispatched event into per-side output. Turning right
// drives the left side at the primary speed and reverses the right side at
// the secondary speed; turning left mirrors it.
func Mix(e wheels.Event, primary, secondary uint8) Output {
	p, s := int8(primary), int8(secondary)
	switch e {
	case wheels.EventMovingForward:
		return Output{Left: p, Right: p}
	case wheels.EventMovingBackward:
		return Output{Left: -p, Right: -p}
	case wheels.EventTurningRight:
		return Output{Left: p, Right: -s}
	case wheels.EventTurningLeft:
		return Output{Left: -s, Right: p}
	}
	return Output{}
}

func (o Options) apply(out Output) Output {
	if o.InvertLeft {
		out.Left = -out.Left
	}
	if o.InvertRight {
		out.Right = -out.Right
	}
	return out
}
