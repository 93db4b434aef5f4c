package wheels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCmd(t *testing.T) func(Command, error) Command {
	return func(c Command, err error) Command {
		t.Helper()
		require.NoError(t, err)
		return c
	}
}

func TestNewController(t *testing.T) {
	c := NewController()
	assert.Equal(t, Stopped, c.State())
	assert.Equal(t, MustSpeed(DefaultSpeed), c.Speed())
	_, ok := c.ActiveMultiplier()
	assert.False(t, ok)
	for _, e := range Events {
		assert.False(t, c.callbacks.Bound(e))
	}
}

func TestController_Apply(t *testing.T) {
	must := mustCmd(t)
	c := NewController()

	c.Apply(MoveForward())
	assert.Equal(t, MovingForward, c.State())
	c.Apply(MoveBackward())
	assert.Equal(t, MovingBackward, c.State())
	c.Apply(RotateRight())
	assert.Equal(t, TurningRight, c.State())
	_, ok := c.ActiveMultiplier()
	assert.False(t, ok)
	c.Apply(RotateLeft())
	assert.Equal(t, TurningLeft, c.State())
	_, ok = c.ActiveMultiplier()
	assert.False(t, ok)
	c.Apply(Stop())
	assert.Equal(t, Stopped, c.State())

	c.Apply(must(RotateRightWithCounter(2)))
	assert.Equal(t, TurningRight, c.State())
	m, ok := c.ActiveMultiplier()
	assert.True(t, ok)
	assert.Equal(t, uint8(2), m.Value())

	c.Apply(must(RotateLeftWithCounter(1)))
	assert.Equal(t, TurningLeft, c.State())
	m, _ = c.ActiveMultiplier()
	assert.Equal(t, uint8(1), m.Value())

	c.Apply(must(ChangeSpeed(23)))
	assert.Equal(t, MustSpeed(23), c.Speed())
	assert.Equal(t, TurningLeft, c.State())
}

func TestController_StraightCallbacks(t *testing.T) {
	must := mustCmd(t)
	c := NewController()
	c.Apply(must(ChangeSpeed(1)))

	fwd, back, stop := &recorder{}, &recorder{}, &recorder{}
	c.BindMovingForward(fwd)
	c.BindMovingBackward(back)
	c.BindStopped(stop)

	c.Apply(MoveForward())
	c.Apply(MoveBackward())
	c.Apply(Stop())

	assert.Equal(t, [][2]uint8{{1, 0}}, fwd.calls)
	assert.Equal(t, [][2]uint8{{1, 0}}, back.calls)
	assert.Equal(t, [][2]uint8{{1, 0}}, stop.calls)
}

func TestController_RotationCallbacks(t *testing.T) {
	must := mustCmd(t)
	c := NewController()
	c.Apply(must(ChangeSpeed(1)))

	right, left := &recorder{}, &recorder{}
	c.BindTurningRight(right)
	c.BindTurningLeft(left)

	// no multiplier yet: secondary is the base speed
	c.Apply(RotateRight())
	c.Apply(RotateLeft())
	assert.Equal(t, [][2]uint8{{1, 1}}, right.calls)
	assert.Equal(t, [][2]uint8{{1, 1}}, left.calls)

	c.Apply(must(RotateRightWithCounter(2)))
	c.Apply(must(RotateLeftWithCounter(2)))
	assert.Equal(t, [][2]uint8{{1, 1}, {1, 2}}, right.calls)
	assert.Equal(t, [][2]uint8{{1, 1}, {1, 2}}, left.calls)
}

func TestController_StickyMultiplier(t *testing.T) {
	must := mustCmd(t)
	c := NewController()
	left := &recorder{}
	c.BindTurningLeft(left)

	c.Apply(must(RotateRightWithCounter(2)))
	c.Apply(RotateLeft())
	// effective(2, 50) = 100, not the base speed
	assert.Equal(t, [][2]uint8{{50, 100}}, left.calls)

	for _, cmd := range []Command{Stop(), MoveForward(), MoveBackward(), RotateRight(), RotateLeft()} {
		c.Apply(cmd)
		m, ok := c.ActiveMultiplier()
		assert.True(t, ok, "multiplier cleared by %v", cmd)
		assert.Equal(t, uint8(2), m.Value())
	}

	// the stored multiplier follows later speed changes
	c.Apply(must(ChangeSpeed(10)))
	c.Apply(RotateLeft())
	assert.Equal(t, [2]uint8{10, 20}, left.calls[len(left.calls)-1])

	// only another counter command replaces it
	c.Apply(must(RotateLeftWithCounter(3)))
	assert.Equal(t, [2]uint8{10, 30}, left.calls[len(left.calls)-1])
	m, _ := c.ActiveMultiplier()
	assert.Equal(t, uint8(3), m.Value())
}

func TestController_RotateRightWithCounterAtMinSpeed(t *testing.T) {
	must := mustCmd(t)
	c := NewController()
	c.Apply(must(ChangeSpeed(1)))
	right := &recorder{}
	c.BindTurningRight(right)

	c.Apply(must(RotateRightWithCounter(2)))
	assert.Equal(t, TurningRight, c.State())
	m, ok := c.ActiveMultiplier()
	assert.True(t, ok)
	assert.Equal(t, uint8(2), m.Value())
	assert.Equal(t, [][2]uint8{{1, 2}}, right.calls)
}

func TestController_ChangeSpeedDispatchesNothing(t *testing.T) {
	must := mustCmd(t)
	c := NewController()
	r := &recorder{}
	for _, e := range Events {
		c.Bind(e, r)
	}
	c.Apply(MoveForward())
	assert.Len(t, r.calls, 1)

	c.Apply(must(ChangeSpeed(23)))
	assert.Len(t, r.calls, 1)
	assert.Equal(t, MovingForward, c.State())
	assert.Equal(t, MustSpeed(23), c.Speed())
}

func TestController_UnboundSlots(t *testing.T) {
	must := mustCmd(t)
	c := NewController()
	c.Apply(MoveForward())
	assert.Equal(t, MovingForward, c.State())
	c.Apply(must(RotateLeftWithCounter(4)))
	assert.Equal(t, TurningLeft, c.State())
	c.Apply(Stop())
	assert.Equal(t, Stopped, c.State())
}

func TestController_Rebind(t *testing.T) {
	c := NewController()
	old, cur := &recorder{}, &recorder{}
	c.BindMovingForward(old)
	c.BindMovingForward(cur)

	c.Apply(MoveForward())
	assert.Empty(t, old.calls)
	assert.Len(t, cur.calls, 1)
}

func TestController_NilHandlers(t *testing.T) {
	c := NewController()
	c.BindMovingForward(HandlerFunc(nil))
	c.BindStopped((*recorder)(nil))
	c.BindTurningLeft(nil)
	for _, e := range Events {
		assert.False(t, c.callbacks.Bound(e), e.String())
	}

	assert.NotPanics(t, func() {
		c.Apply(MoveForward())
		c.Apply(Stop())
		c.Apply(RotateLeft())
	})
	assert.Equal(t, TurningLeft, c.State())

	// a nil handler also clears a bound slot
	r := &recorder{}
	c.BindMovingForward(r)
	c.BindMovingForward(HandlerFunc(nil))
	c.Apply(MoveForward())
	assert.Empty(t, r.calls)
}

func TestController_ZeroCommandStops(t *testing.T) {
	c := NewController()
	stop := &recorder{}
	c.BindStopped(stop)

	c.Apply(MoveForward())
	c.Apply(Command{})
	assert.Equal(t, Stopped, c.State())
	assert.Len(t, stop.calls, 1)
}

func TestState_Text(t *testing.T) {
	data, err := json.Marshal(struct{ State State }{TurningRight})
	require.NoError(t, err)
	assert.Equal(t, `{"State":"TurningRight"}`, string(data))

	var v struct{ State State }
	require.NoError(t, json.Unmarshal([]byte(`{"State":"MovingBackward"}`), &v))
	assert.Equal(t, MovingBackward, v.State)

	assert.Error(t, json.Unmarshal([]byte(`{"State":"Flying"}`), &v))
}

func TestState_Event(t *testing.T) {
	assert.Equal(t, EventMovingForward, MovingForward.Event())
	assert.Equal(t, EventMovingBackward, MovingBackward.Event())
	assert.Equal(t, EventTurningRight, TurningRight.Event())
	assert.Equal(t, EventTurningLeft, TurningLeft.Event())
	assert.Equal(t, EventStopped, Stopped.Event())
}
