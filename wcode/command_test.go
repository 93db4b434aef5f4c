package wcode

import (
	"errors"
	"testing"

	"github.com/mastercactapus/wheelbase/wheels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlock_Validate(t *testing.T) {
	assert.NoError(t, Block{{W: 'V', Arg: 5, HasArg: true}, {W: 'F'}}.Validate())
	assert.NoError(t, Block{{W: 'L'}}.Validate())

	assert.Error(t, Block{{W: 'f'}}.Validate(), "lowercase letter")
	assert.Error(t, Block{{W: 'X'}}.Validate(), "unsupported")
	assert.Error(t, Block{{W: 'F'}, {W: 'B'}}.Validate(), "two motion words")
	assert.Error(t, Block{{W: 'V', Arg: 1, HasArg: true}, {W: 'V', Arg: 2, HasArg: true}}.Validate())
	assert.Error(t, Block{{W: 'V'}}.Validate(), "missing speed")
	assert.Error(t, Block{{W: 'F', Arg: 1, HasArg: true}}.Validate(), "unexpected argument")
}

func TestBlock_Commands(t *testing.T) {
	cmds, err := MustParse("F V23")[0].Commands()
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, wheels.KindChangeSpeed, cmds[0].Kind())
	assert.Equal(t, wheels.KindMoveForward, cmds[1].Kind())

	cmds, err = MustParse("V5")[0].Commands()
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, wheels.KindChangeSpeed, cmds[0].Kind())

	cmds, err = MustParse("L4")[0].Commands()
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, wheels.KindRotateLeftWithCounter, cmds[0].Kind())
	m, _ := cmds[0].Multiplier()
	assert.Equal(t, uint8(4), m.Value())

	for _, s := range []string{"F", "B", "S", "R", "L"} {
		cmds, err = MustParse(s)[0].Commands()
		require.NoError(t, err)
		assert.Equal(t, s, Encode(cmds[0]).String())
	}
}

func TestBlock_CommandsRange(t *testing.T) {
	for _, s := range []string{"V0", "V101", "V255", "R0", "L101"} {
		_, err := MustParse(s)[0].Commands()
		assert.True(t, errors.Is(err, wheels.ErrOutOfRange), s)
	}

	for _, s := range []string{"V256", "V-1", "V2.5", "R1.1"} {
		_, err := MustParse(s)[0].Commands()
		assert.Error(t, err, s)
		assert.False(t, errors.Is(err, wheels.ErrOutOfRange), s)
	}
}

func TestBlock_Motion(t *testing.T) {
	b := MustParse("V40 R3")[0]
	w, ok := b.Motion()
	assert.True(t, ok)
	assert.Equal(t, Word{W: 'R', Arg: 3, HasArg: true}, w)
	assert.True(t, w.IsMotion())

	ok, v := b.Arg('V')
	assert.True(t, ok)
	assert.Equal(t, 40.0, v)
	ok, _ = b.Arg('R')
	assert.True(t, ok)
	ok, _ = Block{{W: 'L'}}.Arg('L')
	assert.False(t, ok)

	_, ok = MustParse("V40")[0].Motion()
	assert.False(t, ok)
}

func TestEncode(t *testing.T) {
	c, _ := wheels.ChangeSpeed(23)
	assert.Equal(t, "V23", Encode(c).String())
	c, _ = wheels.RotateRightWithCounter(2)
	assert.Equal(t, "R2", Encode(c).String())
	assert.Equal(t, "S", Encode(wheels.Command{}).String())
}
