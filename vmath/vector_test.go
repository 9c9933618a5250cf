package vmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthSqMatchesDot(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		v := V2(rng.Float64()*20-10, rng.Float64()*20-10)
		lsq := LengthSq[Vec2, float64](v)
		assert.Equal(t, v.Dot(v), lsq)
		assert.GreaterOrEqual(t, lsq, 0.0)
	}
}

func TestLength(t *testing.T) {
	assert.Equal(t, 5.0, Length[Vec2, float64](V2(3, 4)))
	assert.Equal(t, float32(5), Length[Vec2f, float32](V2f(3, 4)))
	assert.InDelta(t, math.Sqrt(14), Length[Vec3, float64](V3(1, 2, 3)), 1e-12)
}

func TestNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"axis", V2(5, 0), V2(1, 0)},
		{"diagonal", V2(3, -4), V2(0.6, -0.8)},
		{"zero stays zero", V2(0, 0), V2(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalized[Vec2, float64](tt.in)
			assert.True(t, got.ApproxEqual(tt.want, 1e-12), "got %v want %v", got, tt.want)
		})
	}
}

func TestNormalizedZeroHasNoNaN(t *testing.T) {
	got := Normalized[Vec3, float64](Vec3{})
	for i := range got {
		require.False(t, math.IsNaN(got[i]))
	}
}

func TestReflect(t *testing.T) {
	// Ball moving down-right hits a floor with upward normal
	got := Reflect[Vec2, float64](V2(1, -1), V2(0, 1))
	assert.Equal(t, V2(1, 1), got)

	// Head-on reflection reverses the vector
	got = Reflect[Vec2, float64](V2(2, 0), V2(-1, 0))
	assert.Equal(t, V2(-2, 0), got)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance[Vec2, float64](V2(1, 1), V2(4, 5)))
}

func TestMinTieResolvesToSecond(t *testing.T) {
	negZero := math.Copysign(0, -1)
	got := Min(0.0, negZero)
	assert.True(t, math.Signbit(got), "tie should return the second argument")

	assert.Equal(t, 1.0, Min(1.0, 2.0))
	assert.Equal(t, 1.0, Min(2.0, 1.0))
	assert.Equal(t, 2.0, Max(1.0, 2.0))
}

func TestSqrtPrecision(t *testing.T) {
	assert.Equal(t, float32(3), Sqrt(float32(9)))
	assert.Equal(t, math.Sqrt2, Sqrt(2.0))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1.5))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(float32(math.Inf(-1))))
	assert.True(t, IsFinite(float32(-2)))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 2.0, Abs(-2.0))
	assert.Equal(t, float32(2), Abs(float32(2)))
}

func TestVecOps(t *testing.T) {
	a, b := V2(1, 2), V2(3, -1)
	assert.Equal(t, V2(4, 1), a.Add(b))
	assert.Equal(t, V2(-2, 3), a.Sub(b))
	assert.Equal(t, V2(2, 4), a.Mul(2))
	assert.Equal(t, V2(0.5, 1), a.Div(2))
	assert.Equal(t, 1.0, a.Dot(b))
	assert.Equal(t, 5.0, a.LenSqr())

	c := V3(1, 0, 0).Cross(V3(0, 1, 0))
	assert.Equal(t, V3(0, 0, 1), c)
	assert.Equal(t, V2(1, 2), V3(1, 2, 3).XY())

	f := V2f(1, 2).Add(V2f(1, 1)).Mul(2).Div(4)
	assert.Equal(t, V2f(1, 1.5), f)
}

func TestMulDivRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		v := V2(rng.Float64()*100-50, rng.Float64()*100-50)
		s := 0.25 * float64(1+rng.Intn(8))
		assert.True(t, v.Mul(s).Div(s).ApproxEqual(v, 1e-12))
	}
}
