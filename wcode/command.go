package wcode

import (
	"fmt"
	"math"

	"github.com/mastercactapus/wheelbase/wheels"
)

func (w Word) byteArg() (uint8, error) {
	if w.Arg < 0 || w.Arg > math.MaxUint8 || w.Arg != math.Trunc(w.Arg) {
		return 0, fmt.Errorf("invalid argument: %s", w)
	}
	return uint8(w.Arg), nil
}

// Commands converts b into controller commands. A speed change in the same
// block is applied before the motion word.
func (b Block) Commands() ([]wheels.Command, error) {
	err := b.Validate()
	if err != nil {
		return nil, err
	}

	var cmds []wheels.Command
	if ok, v := b.Arg('V'); ok {
		cmd, err := Word{W: 'V', Arg: v, HasArg: true}.command()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if w, ok := b.Motion(); ok {
		cmd, err := w.command()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}

	return cmds, nil
}

func (w Word) command() (wheels.Command, error) {
	switch w.W {
	case 'F':
		return wheels.MoveForward(), nil
	case 'B':
		return wheels.MoveBackward(), nil
	case 'S':
		return wheels.Stop(), nil
	case 'R':
		if !w.HasArg {
			return wheels.RotateRight(), nil
		}
		v, err := w.byteArg()
		if err != nil {
			return wheels.Command{}, err
		}
		return wheels.RotateRightWithCounter(v)
	case 'L':
		if !w.HasArg {
			return wheels.RotateLeft(), nil
		}
		v, err := w.byteArg()
		if err != nil {
			return wheels.Command{}, err
		}
		return wheels.RotateLeftWithCounter(v)
	case 'V':
		v, err := w.byteArg()
		if err != nil {
			return wheels.Command{}, err
		}
		return wheels.ChangeSpeed(v)
	}

	return wheels.Command{}, fmt.Errorf("unsupported code: %s", w)
}

// Encode returns the single-word block for cmd.
func Encode(cmd wheels.Command) Block {
	switch cmd.Kind() {
	case wheels.KindMoveForward:
		return Block{{W: 'F'}}
	case wheels.KindMoveBackward:
		return Block{{W: 'B'}}
	case wheels.KindRotateRight:
		return Block{{W: 'R'}}
	case wheels.KindRotateLeft:
		return Block{{W: 'L'}}
	case wheels.KindRotateRightWithCounter:
		m, _ := cmd.Multiplier()
		return Block{{W: 'R', Arg: float64(m.Value()), HasArg: true}}
	case wheels.KindRotateLeftWithCounter:
		m, _ := cmd.Multiplier()
		return Block{{W: 'L', Arg: float64(m.Value()), HasArg: true}}
	case wheels.KindChangeSpeed:
		s, _ := cmd.Speed()
		return Block{{W: 'V', Arg: float64(s.Value()), HasArg: true}}
	}
	return Block{{W: 'S'}}
}
