package wheels

// CommandKind identifies one of the eight command variants.
type CommandKind uint8

// The zero CommandKind is KindStop, so a zero Command stops the wheels.
const (
	KindStop CommandKind = iota
	KindMoveForward
	KindMoveBackward
	KindRotateRight
	KindRotateLeft
	KindRotateRightWithCounter
	KindRotateLeftWithCounter
	KindChangeSpeed
)

func (k CommandKind) String() string {
	switch k {
	case KindStop:
		return "Stop"
	case KindMoveForward:
		return "MoveForward"
	case KindMoveBackward:
		return "MoveBackward"
	case KindRotateRight:
		return "RotateRight"
	case KindRotateLeft:
		return "RotateLeft"
	case KindRotateRightWithCounter:
		return "RotateRightWithCounter"
	case KindRotateLeftWithCounter:
		return "RotateLeftWithCounter"
	case KindChangeSpeed:
		return "ChangeSpeed"
	}
	return "Unknown"
}

// A Command is an immutable, already validated instruction for a Controller.
//
// Commands can only carry a value when built through ChangeSpeed,
// RotateRightWithCounter or RotateLeftWithCounter, so applying a Command
// never fails.
type Command struct {
	kind  CommandKind
	speed Speed
	mult  CounterRotationMultiplier
}

func MoveForward() Command  { return Command{kind: KindMoveForward} }
func MoveBackward() Command { return Command{kind: KindMoveBackward} }
func RotateRight() Command  { return Command{kind: KindRotateRight} }
func RotateLeft() Command   { return Command{kind: KindRotateLeft} }
func Stop() Command         { return Command{kind: KindStop} }

// ChangeSpeed replaces the controller base speed. raw must be in [1,100].
func ChangeSpeed(raw uint8) (Command, error) {
	s, err := NewSpeed(raw)
	if err != nil {
		return Command{}, err
	}
	return Command{kind: KindChangeSpeed, speed: s}, nil
}

// RotateRightWithCounter turns right and stores raw as the active
// counter rotation multiplier. raw must be in [1,100].
func RotateRightWithCounter(raw uint8) (Command, error) {
	m, err := NewCounterRotationMultiplier(raw)
	if err != nil {
		return Command{}, err
	}
	return Command{kind: KindRotateRightWithCounter, mult: m}, nil
}

// RotateLeftWithCounter is the left turn counterpart of RotateRightWithCounter.
func RotateLeftWithCounter(raw uint8) (Command, error) {
	m, err := NewCounterRotationMultiplier(raw)
	if err != nil {
		return Command{}, err
	}
	return Command{kind: KindRotateLeftWithCounter, mult: m}, nil
}

func (c Command) Kind() CommandKind { return c.kind }

// Speed returns the new base speed of a ChangeSpeed command.
func (c Command) Speed() (Speed, bool) {
	return c.speed, c.kind == KindChangeSpeed
}

// Multiplier returns the multiplier of a rotate-with-counter command.
func (c Command) Multiplier() (CounterRotationMultiplier, bool) {
	ok := c.kind == KindRotateRightWithCounter || c.kind == KindRotateLeftWithCounter
	return c.mult, ok
}

func (c Command) String() string {
	if s, ok := c.Speed(); ok {
		return c.kind.String() + "(" + s.String() + ")"
	}
	if m, ok := c.Multiplier(); ok {
		return c.kind.String() + "(" + m.String() + ")"
	}
	return c.kind.String()
}
