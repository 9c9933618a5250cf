package physics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/impact/vmath"
)

type body2 = RigidBody[vmath.Vec2, float64]
type state2 = BodyState[vmath.Vec2, float64]

const eps = 1e-9

// newBall returns a validated sphere body, failing the test on error
func newBall(t *testing.T, radius, mass float64, pos, vel vmath.Vec2, restitution float64) *body2 {
	t.Helper()
	b, err := NewRigidBody(Sphere[vmath.Vec2](radius), mass, pos, vel, restitution)
	require.NoError(t, err)
	return b
}

// ballState returns an unscaled sphere state without validation
func ballState(radius, mass float64, pos, vel vmath.Vec2, restitution float64) state2 {
	return NewBodyState(Sphere[vmath.Vec2](radius), mass, pos, vel, restitution)
}

// stepPair runs one detect/resolve cycle on two bodies
func stepPair(t *testing.T, a, b *body2, step float64) Detection {
	t.Helper()
	d, err := a.IntersectTick(b, step)
	require.NoError(t, err)
	_, err = a.MoveTick(step)
	require.NoError(t, err)
	_, err = b.MoveTick(step)
	require.NoError(t, err)
	return d
}
