package wcode

import (
	"strconv"
	"strings"
)

// A Word is a single letter code with an optional numeric argument.
type Word struct {
	W      byte
	Arg    float64
	HasArg bool
}

func (w Word) IsValid() bool {
	return w.W >= 'A' && w.W <= 'Z'
}

// IsMotion reports whether w changes the motion state.
func (w Word) IsMotion() bool {
	return w.Group() == GroupMotion
}

func formatFloat(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
	}
	return strings.TrimRight(s, ".")
}

func (w Word) String() string {
	if !w.HasArg {
		return string(w.W)
	}
	return string(w.W) + formatFloat(w.Arg, 3)
}
