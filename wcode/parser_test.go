package wcode

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Read(t *testing.T) {
	p := NewParser(strings.NewReader("v20 f ; go\n\n; only a comment\nR 3\nS"))

	b, err := p.Read()
	require.NoError(t, err)
	assert.Equal(t, Block{{W: 'V', Arg: 20, HasArg: true}, {W: 'F'}}, b)

	b, err = p.Read()
	require.NoError(t, err)
	assert.Equal(t, Block{{W: 'R', Arg: 3, HasArg: true}}, b)

	// last line has no newline
	b, err = p.Read()
	require.NoError(t, err)
	assert.Equal(t, Block{{W: 'S'}}, b)

	_, err = p.Read()
	assert.Equal(t, io.EOF, err)
}

func TestParseLine(t *testing.T) {
	b, err := ParseLine("  ; nothing\n")
	assert.NoError(t, err)
	assert.Nil(t, b)

	_, err = ParseLine("F#")
	assert.Error(t, err)

	_, err = ParseLine("3F")
	assert.Error(t, err)

	_, err = ParseLine("V1.2.3")
	assert.Error(t, err)

	b, err = ParseLine("l-2")
	assert.NoError(t, err)
	assert.Equal(t, Block{{W: 'L', Arg: -2, HasArg: true}}, b)
}

func TestParse(t *testing.T) {
	b, err := Parse("F\nB\n")
	require.NoError(t, err)
	assert.Len(t, b, 2)

	_, err = Parse("F\n!\n")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParse("?") })
}

func TestBlock_String(t *testing.T) {
	assert.Equal(t, "V23R2", Block{{W: 'V', Arg: 23, HasArg: true}, {W: 'R', Arg: 2, HasArg: true}}.String())
	assert.Equal(t, "V1.5", Block{{W: 'V', Arg: 1.5, HasArg: true}}.String())
	assert.Equal(t, "S", Block{{W: 'S'}}.String())
}
