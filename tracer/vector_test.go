package tracer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func assertVec(t *testing.T, want, got Vector3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tol, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, tol, msgAndArgs...)
}

func TestNormalize(t *testing.T) {
	assert := assert.New(t)

	for _, v := range []Vector3{V(1, 0, 0), V(3, 4, 0), V(-2, 7, 0.5), V(1e-3, 1e-3, 1e-3)} {
		assert.InDelta(1.0, v.Normalize().Length(), tol, "%v", v)
	}

	assert.Equal(Vector3{}, Vector3{}.Normalize())
}

func TestDistance(t *testing.T) {
	assert := assert.New(t)

	a, b := V(1, 2, 3), V(-4, 0.5, 9)
	assert.Equal(a.Distance(b), b.Distance(a))
	assert.Equal(0.0, a.Distance(a))

	origin := V(0, 0, 0)
	assert.Equal(1.0, origin.Distance(V(0, 0, 1)))
	assert.Equal(1.0, origin.Distance(V(1, 0, 0)))
}

func TestArithmetic(t *testing.T) {
	assert := assert.New(t)

	a, b := V(1, 2, 3), V(4, 5, 6)
	assert.Equal(V(5, 7, 9), a.Add(b))
	assert.Equal(V(-3, -3, -3), a.Sub(b))
	assert.Equal(V(2, 4, 6), a.Scale(2))
	assert.Equal(V(0.5, 1, 1.5), a.Div(2))
	assert.Equal(32.0, a.Dot(b))
	assert.Equal(V(-3, 6, -3), a.Cross(b))
	assert.Equal(V(0, 0, 1), V(1, 0, 0).Cross(V(0, 1, 0)))
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name   string
		point  Vector3
		rot    Rotation3
		expect Vector3
	}{
		{"no_rotate", V(1, 2, 3), Rotation3{}, V(1, 2, 3)},
		{"yaw_90deg", V(1, 0, 0), Rotation3{Yaw: math.Pi / 2}, V(0, 1, 0)},
		{"pitch_90deg", V(1, 0, 0), Rotation3{Pitch: math.Pi / 2}, V(0, 0, -1)},
		{"roll_90deg", V(0, 1, 0), Rotation3{Roll: math.Pi / 2}, V(0, 0, 1)},
		{"yaw_180deg", V(1, 1, 0), Rotation3{Yaw: math.Pi}, V(-1, -1, 0)},
		// roll is applied first, then pitch, then yaw
		{"roll_then_yaw", V(0, 1, 0), Rotation3{Roll: math.Pi / 2, Yaw: math.Pi / 2}, V(0, 0, 1)},
		{"pitch_then_yaw", V(1, 0, 0), Rotation3{Pitch: math.Pi / 2, Yaw: math.Pi / 2}, V(0, 0, -1)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertVec(t, test.expect, test.point.Rotate(test.rot))
		})
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := V(0.3, -1.2, 2.5)
	got := v.Rotate(Rotation3{Yaw: 0.7, Pitch: -1.1, Roll: 2.9})
	assert.InDelta(t, v.Length(), got.Length(), tol)
}

func TestForward(t *testing.T) {
	assert := assert.New(t)

	assertVec(t, V(1, 0, 0), Rotation3{}.Forward())
	assertVec(t, V(0, 1, 0), Rotation3{Yaw: math.Pi / 2}.Forward())
	assertVec(t, V(0, 0, 1), Rotation3{Pitch: math.Pi / 2}.Forward())
	// roll does not move the forward direction
	assert.Equal(Rotation3{Yaw: 0.4}.Forward(), Rotation3{Yaw: 0.4, Roll: 1.3}.Forward())
}

func TestDegrees(t *testing.T) {
	r := Degrees(180, 90, 45)
	assert.InDelta(t, math.Pi, r.Yaw, tol)
	assert.InDelta(t, math.Pi/2, r.Pitch, tol)
	assert.InDelta(t, math.Pi/4, r.Roll, tol)
}

func TestRayTowards(t *testing.T) {
	assert := assert.New(t)

	r := RayTowards(V(1, 1, 1), V(1, 1, 5))
	assert.Equal(V(1, 1, 1), r.Origin)
	assertVec(t, V(0, 0, 1), r.Direction)
	assertVec(t, V(1, 1, 3), r.At(2))

	r.Nudge()
	assertVec(t, V(1, 1, 2), r.Origin)
}
