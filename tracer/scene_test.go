package tracer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracePrefersHitNearestCamera(t *testing.T) {
	assert := assert.New(t)

	scene := NewScene(NewCamera(V(0, 0, 0), Rotation3{}, 40))
	// nearer the ray origin but farther from the camera
	nearOrigin := NewSphere(V(8, 0, 0), 0.5, Diffuse(Color{R: 200}))
	// farther from the ray origin but nearer the camera
	nearCamera := NewSphere(V(2, 0, 0), 0.5, Diffuse(Color{B: 200}))
	scene.AddSphere(nearOrigin)
	scene.AddSphere(nearCamera)

	hit, ok := scene.Trace(Ray{Origin: V(10, 0, 0), Direction: V(-1, 0, 0)})
	require.True(t, ok)
	assertVec(t, V(2.5, 0, 0), hit.Point)
	assert.Equal(Color{B: 200}, hit.Material.Color)
}

func TestTraceMiss(t *testing.T) {
	scene := NewScene(NewCamera(V(0, 0, 0), Rotation3{}, 40))
	scene.AddLight(NewLight(V(0, 0, -3), Rotation3{}, 1))
	scene.AddSphere(NewSphere(V(0, 0, -5), 1, Diffuse(White)))

	_, ok := scene.Trace(Ray{Origin: V(0, 0, 0), Direction: V(0, 1, 0)})
	assert.False(t, ok)
}

func TestSceneHandles(t *testing.T) {
	assert := assert.New(t)

	scene := NewScene(NewCamera(V(3, 3, 3), Rotation3{}, 40))
	light := NewLight(V(-1, -1, 2), Rotation3{}, 10)
	light.Name = "key light"
	lh := scene.AddLight(light)

	cube := NewCube(V(0, 0, 1.5), Rotation3{}, 1, Diffuse(White), Diffuse(Magenta))
	cube.Name = "spinning cube"
	mh := scene.AddMesh(cube)
	floor := scene.AddMesh(NewPlane(V(0, 0, 0), Rotation3{}, 4, Diffuse(White)))
	sh := scene.AddSphere(NewSphere(V(1, 1, 1), 0.5, Diffuse(White)))

	assert.Equal(4, scene.Len())
	assert.Equal([]Handle{lh.Handle(), mh.Handle(), floor.Handle(), sh.Handle()}, scene.Handles())
	assert.Equal([]MeshHandle{mh, floor}, scene.MeshHandles())
	assert.Equal([]LightHandle{lh}, scene.LightHandles())
	assert.Equal([]SphereHandle{sh}, scene.SphereHandles())

	got, ok := scene.LookupLight("key light")
	assert.True(ok)
	assert.Equal(lh, got)
	gotMesh, ok := scene.LookupMesh("spinning cube")
	assert.True(ok)
	assert.Equal(mh, gotMesh)
	_, ok = scene.LookupMesh("key light")
	assert.False(ok)
	_, ok = scene.LookupSphere("nothing")
	assert.False(ok)
}

func TestSceneUpdatesInPlace(t *testing.T) {
	assert := assert.New(t)

	scene := NewScene(NewCamera(V(0, 0, 0), Rotation3{}, 40))
	lh := scene.AddLight(NewLight(V(0, 0, 0), Rotation3{}, 1))
	mh := scene.AddMesh(NewPlane(V(0, 0, 0), Rotation3{}, 1, Diffuse(White)))
	sh := scene.AddSphere(NewSphere(V(0, 0, -5), 1, Diffuse(White)))

	snapshot := scene.Lights()

	scene.UpdateLight(lh, func(l *Light) { l.Pos.Y += 0.05 })
	scene.UpdateMesh(mh, func(m *Mesh) { m.Rotation.Yaw += 0.01 })
	scene.UpdateCamera(func(c *Camera) { c.FOV++ })
	scene.UpdateSphere(sh, func(s *Sphere) { s.Radius = 2 })

	assert.InDelta(0.05, scene.Light(lh).Pos.Y, tol)
	assert.InDelta(0.01, scene.Mesh(mh).Rotation.Yaw, tol)
	assert.Equal(41, scene.Camera().FOV)
	assert.Equal(2.0, scene.Sphere(sh).Radius)
	// snapshots are copies
	assert.Equal(0.0, snapshot[0].Pos.Y)

	// copies returned by getters do not write back
	l := scene.Light(lh)
	l.Pos.X = 100
	assert.Equal(0.0, scene.Light(lh).Pos.X)
}

func TestSceneEach(t *testing.T) {
	scene := NewScene(NewCamera(V(0, 0, 0), Rotation3{}, 40))
	scene.AddSphere(NewSphere(V(0, 0, -5), 1, Diffuse(White)))
	l := NewLight(V(1, 2, 3), Rotation3{}, 1)
	l.Name = "lamp"
	scene.AddLight(l)

	var kinds []Kind
	var ids []string
	scene.Each(func(h Handle, o Object) {
		kinds = append(kinds, h.Kind)
		ids = append(ids, o.ID())
	})
	assert.Equal(t, []Kind{KindSphere, KindLight}, kinds)
	assert.Equal(t, []string{"", "lamp"}, ids)
	assert.Equal(t, "light", KindLight.String())
}
