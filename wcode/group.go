package wcode

// Group partitions words so that a block holds at most one word of each.
type Group byte

const (
	GroupNone Group = iota
	GroupMotion
	GroupSpeed
)

func (w Word) Group() Group {
	switch w.W {
	case 'F', 'B', 'S', 'R', 'L':
		return GroupMotion
	case 'V':
		return GroupSpeed
	}

	return GroupNone
}

// argRule reports whether the word takes an argument and whether it must.
func (w Word) argRule() (allowed, required bool) {
	switch w.W {
	case 'R', 'L':
		return true, false
	case 'V':
		return true, true
	}
	return false, false
}
