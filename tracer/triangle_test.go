package tracer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangleRayHit(t *testing.T) {
	tri := Triangle{A: V(-1, 0, 0), B: V(0, 1, 0), C: V(1, 0, 0), Material: Diffuse(White)}

	tests := []struct {
		name      string
		ray       Ray
		shouldHit bool
		expect    Vector3
	}{
		{
			name:      "straight_down_z",
			ray:       Ray{Origin: V(0, 0.33, 1), Direction: V(0, 0, -1)},
			shouldHit: true,
			expect:    V(0, 0.33, 0),
		},
		{
			name:      "from_behind",
			ray:       Ray{Origin: V(0, 0.33, -1), Direction: V(0, 0, 1)},
			shouldHit: true,
			expect:    V(0, 0.33, 0),
		},
		{
			name:      "outside_triangle",
			ray:       Ray{Origin: V(0.9, 0.9, 1), Direction: V(0, 0, -1)},
			shouldHit: false,
		},
		{
			name:      "pointing_away",
			ray:       Ray{Origin: V(0, 0.33, 1), Direction: V(0, 0, 1)},
			shouldHit: false,
		},
		{
			name:      "origin_on_surface",
			ray:       Ray{Origin: V(0, 0.33, 0), Direction: V(0, 0, -1)},
			shouldHit: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			point, ok := tri.RayHit(test.ray)
			assert.Equal(t, test.shouldHit, ok)
			if test.shouldHit {
				assertVec(t, test.expect, point)
				assert.InDelta(t, 0, point.Z, tol)
			}
		})
	}
}

func TestTriangleParallelRayNeverHits(t *testing.T) {
	tri := Triangle{A: V(-1, 0, 0), B: V(0, 1, 0), C: V(1, 0, 0)}

	for _, origin := range []Vector3{V(0, 0.3, 0), V(-5, 0.2, 0), V(0, 0, 1), V(3, -3, -0.5)} {
		for _, dir := range []Vector3{V(1, 0, 0), V(0, 1, 0), V(1, 1, 0).Normalize()} {
			_, ok := tri.RayHit(Ray{Origin: origin, Direction: dir})
			assert.False(t, ok, "origin %v dir %v", origin, dir)
		}
	}
}

func TestTriangleNormal(t *testing.T) {
	tri := Triangle{A: V(0, 0, 0), B: V(1, 0, 0), C: V(0, 1, 0)}
	assert.Equal(t, V(0, 0, 1), tri.Normal())

	flipped := Triangle{A: V(0, 0, 0), B: V(0, 1, 0), C: V(1, 0, 0)}
	assert.Equal(t, V(0, 0, -1), flipped.Normal())

	tilted := Triangle{A: V(0, 0, 0), B: V(0, 2, 0), C: V(0, 0, 3)}
	assert.Equal(t, V(6, 0, 0), tilted.Normal())
}

func TestTriangleTransformed(t *testing.T) {
	mat := Diffuse(Magenta)
	tri := Triangle{A: V(1, 0, 0), B: V(0, 1, 0), C: V(0, 0, 1), Material: mat}

	got := tri.Transformed(V(10, 0, 0), Rotation3{Yaw: math.Pi / 2})

	// rotated about the local origin first, then moved
	assertVec(t, V(10, 1, 0), got.A)
	assertVec(t, V(9, 0, 0), got.B)
	assertVec(t, V(10, 0, 1), got.C)
	assert.Equal(t, mat, got.Material)
}
