package wcode

import (
	"errors"
	"strings"
)

// A Block is one line of wheel codes.
type Block []Word

func (b Block) Arg(w byte) (bool, float64) {
	for _, g := range b {
		if g.W == w && g.HasArg {
			return true, g.Arg
		}
	}
	return false, 0
}

// Motion returns the motion word of the block, if any.
func (b Block) Motion() (Word, bool) {
	for _, g := range b {
		if g.IsMotion() {
			return g, true
		}
	}
	return Word{}, false
}

func (b Block) Validate() error {
	var checkGroup [256]bool

	for _, g := range b {
		if !g.IsValid() {
			return errors.New("invalid word in block")
		}
		grp := g.Group()
		if grp == GroupNone {
			return errors.New("unsupported code: " + g.String())
		}
		if checkGroup[grp] {
			return errors.New("multiple words from same group")
		}
		checkGroup[grp] = true

		allowed, required := g.argRule()
		if required && !g.HasArg {
			return errors.New("missing argument: " + g.String())
		}
		if !allowed && g.HasArg {
			return errors.New("unexpected argument: " + g.String())
		}
	}

	return nil
}

func (b Block) String() string {
	var s strings.Builder
	for _, g := range b {
		s.WriteString(g.String())
	}
	return s.String()
}
