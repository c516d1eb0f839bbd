package tracer

import "fmt"

// Kind tags the variant a Handle refers to.
type Kind int

const (
	KindMesh Kind = iota
	KindSphere
	KindLight
)

func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindSphere:
		return "sphere"
	case KindLight:
		return "light"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Handle identifies one object of a scene. Handles stay valid for the life
// of the scene; objects are never removed.
type Handle struct {
	Kind  Kind
	Index int
}

type (
	MeshHandle   int
	SphereHandle int
	LightHandle  int
)

func (h MeshHandle) Handle() Handle   { return Handle{KindMesh, int(h)} }
func (h SphereHandle) Handle() Handle { return Handle{KindSphere, int(h)} }
func (h LightHandle) Handle() Handle  { return Handle{KindLight, int(h)} }

// Scene owns every object that can be rendered plus the active camera. The
// camera is not part of the object list and is never traced against.
type Scene struct {
	meshes  []Mesh
	spheres []Sphere
	lights  []Light
	// order is insertion order across all kinds; traversal and light
	// enumeration follow it.
	order  []Handle
	camera Camera
}

func NewScene(camera Camera) *Scene {
	return &Scene{camera: camera}
}

func (s *Scene) AddMesh(m Mesh) MeshHandle {
	h := MeshHandle(len(s.meshes))
	s.meshes = append(s.meshes, m)
	s.order = append(s.order, h.Handle())
	return h
}

func (s *Scene) AddSphere(sp Sphere) SphereHandle {
	h := SphereHandle(len(s.spheres))
	s.spheres = append(s.spheres, sp)
	s.order = append(s.order, h.Handle())
	return h
}

func (s *Scene) AddLight(l Light) LightHandle {
	h := LightHandle(len(s.lights))
	s.lights = append(s.lights, l)
	s.order = append(s.order, h.Handle())
	return h
}

// Camera returns a copy of the active camera.
func (s *Scene) Camera() Camera { return s.camera }

// UpdateCamera edits the active camera in place.
func (s *Scene) UpdateCamera(fn func(*Camera)) { fn(&s.camera) }

func (s *Scene) Mesh(h MeshHandle) Mesh { return s.meshes[h] }

func (s *Scene) UpdateMesh(h MeshHandle, fn func(*Mesh)) { fn(&s.meshes[h]) }

func (s *Scene) Sphere(h SphereHandle) Sphere { return s.spheres[h] }

func (s *Scene) UpdateSphere(h SphereHandle, fn func(*Sphere)) { fn(&s.spheres[h]) }

func (s *Scene) Light(h LightHandle) Light { return s.lights[h] }

func (s *Scene) UpdateLight(h LightHandle, fn func(*Light)) { fn(&s.lights[h]) }

// Len is the number of objects, not counting the camera.
func (s *Scene) Len() int { return len(s.order) }

// Handles lists every object in insertion order.
func (s *Scene) Handles() []Handle {
	return append([]Handle(nil), s.order...)
}

func (s *Scene) MeshHandles() []MeshHandle {
	hs := make([]MeshHandle, len(s.meshes))
	for i := range s.meshes {
		hs[i] = MeshHandle(i)
	}
	return hs
}

func (s *Scene) SphereHandles() []SphereHandle {
	hs := make([]SphereHandle, len(s.spheres))
	for i := range s.spheres {
		hs[i] = SphereHandle(i)
	}
	return hs
}

func (s *Scene) LightHandles() []LightHandle {
	hs := make([]LightHandle, len(s.lights))
	for i := range s.lights {
		hs[i] = LightHandle(i)
	}
	return hs
}

// Lights returns a snapshot of every light in scene order.
func (s *Scene) Lights() []Light {
	lights := make([]Light, 0, len(s.lights))
	for _, h := range s.order {
		if h.Kind == KindLight {
			lights = append(lights, s.lights[h.Index])
		}
	}
	return lights
}

// Each calls fn for every object in insertion order. The Object passed to fn
// must not be kept after fn returns.
func (s *Scene) Each(fn func(Handle, Object)) {
	for _, h := range s.order {
		fn(h, s.Object(h))
	}
}

// Object returns the object behind h. The pointer is only valid until the
// next Add call.
func (s *Scene) Object(h Handle) Object {
	switch h.Kind {
	case KindMesh:
		return &s.meshes[h.Index]
	case KindSphere:
		return &s.spheres[h.Index]
	case KindLight:
		return &s.lights[h.Index]
	}
	panic(fmt.Sprintf("unknown object kind %v", h.Kind))
}

// LookupMesh finds the first mesh tagged id.
func (s *Scene) LookupMesh(id string) (MeshHandle, bool) {
	for i := range s.meshes {
		if s.meshes[i].Name == id {
			return MeshHandle(i), true
		}
	}
	return 0, false
}

// LookupLight finds the first light tagged id.
func (s *Scene) LookupLight(id string) (LightHandle, bool) {
	for i := range s.lights {
		if s.lights[i].Name == id {
			return LightHandle(i), true
		}
	}
	return 0, false
}

// LookupSphere finds the first sphere tagged id.
func (s *Scene) LookupSphere(id string) (SphereHandle, bool) {
	for i := range s.spheres {
		if s.spheres[i].Name == id {
			return SphereHandle(i), true
		}
	}
	return 0, false
}

// Trace intersects the ray with every object and keeps the hit closest to
// the active camera. The camera, not the ray origin, is the reference for
// every ray, including shadow and reflection rays.
func (s *Scene) Trace(ray Ray) (Hit, bool) {
	eye := s.camera.Pos

	var closest Hit
	found := false
	closestDist := 0.0
	for _, h := range s.order {
		hit, ok := s.Object(h).RayHit(ray)
		if !ok {
			continue
		}
		dist := eye.Distance(hit.Point)
		if !found || dist < closestDist {
			closest, closestDist, found = hit, dist, true
		}
	}
	return closest, found
}
