package wcode

import (
	"bytes"
	"io"
)

// Parse reads every block from data. Blank and comment-only lines are
// skipped; the first malformed line is returned as an error.
func Parse(data string) ([]Block, error) {
	r := NewParser(bytes.NewBufferString(data))
	var b []Block
	for {
		bl, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		b = append(b, bl)
	}
	return b, nil
}

// MustParse is like Parse but panics on error. Use it for fixed command
// sequences.
func MustParse(data string) []Block {
	b, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return b
}
