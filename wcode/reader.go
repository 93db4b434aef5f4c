package wcode

import "io"

// A Reader yields one block of wheel codes per call and returns io.EOF
// when the stream ends.
type Reader interface {
	Read() (Block, error)
}

var (
	_ Reader = &Parser{}
	_ Reader = &BlocksReader{}
)

// BlocksReader replays a fixed list of blocks, such as a request body
// that was already parsed and checked.
type BlocksReader struct {
	Blocks []Block
	n      int
}

func (b *BlocksReader) Read() (Block, error) {
	if b.n == len(b.Blocks) {
		return nil, io.EOF
	}

	b.n++
	return b.Blocks[b.n-1], nil
}
