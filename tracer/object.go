package tracer

import "math"

// Hit describes where a ray met a surface.
type Hit struct {
	Point    Vector3
	Material Material
	Normal   Vector3
}

// Object is anything that can be placed in a scene. Lights and cameras are
// markers: they have a position but never intersect a ray.
type Object interface {
	Position() Vector3
	Orientation() Rotation3
	RayHit(ray Ray) (Hit, bool)
	ID() string
}

var (
	_ Object = (*Mesh)(nil)
	_ Object = (*Sphere)(nil)
	_ Object = (*Light)(nil)
	_ Object = (*Camera)(nil)
)

// selfHitBias is the minimum distance from the ray origin at which a mesh
// hit is accepted.
const selfHitBias = 0.01

// Mesh is a list of triangles placed in the world by an anchor position and
// a rotation.
type Mesh struct {
	Anchor    Vector3
	Rotation  Rotation3
	Triangles []Triangle
	Name      string
}

func NewMesh(anchor Vector3, rot Rotation3, tris []Triangle) Mesh {
	return Mesh{
		Anchor:    anchor,
		Rotation:  rot,
		Triangles: tris,
	}
}

func (m *Mesh) Position() Vector3      { return m.Anchor }
func (m *Mesh) Orientation() Rotation3 { return m.Rotation }
func (m *Mesh) ID() string             { return m.Name }

// RayHit returns the nearest hit among the mesh's triangles in world space.
func (m *Mesh) RayHit(ray Ray) (Hit, bool) {
	rot := m.Rotation.Matrix()

	nearest := Hit{}
	found := false
	minDist := 0.0
	for _, tri := range m.Triangles {
		world := tri.transform(rot, m.Anchor)
		point, ok := world.RayHit(ray)
		if !ok {
			continue
		}
		dist := ray.Origin.Distance(point)
		if dist <= selfHitBias {
			continue
		}
		if !found || dist < minDist {
			minDist = dist
			nearest = Hit{Point: point, Material: world.Material, Normal: world.Normal()}
			found = true
		}
	}
	return nearest, found
}

type Sphere struct {
	Center Vector3
	Radius float64
	// Rotation is carried for the Object interface; it does not affect
	// intersection.
	Rotation Rotation3
	Material Material
	Name     string
}

func NewSphere(center Vector3, radius float64, mat Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

func (s *Sphere) Position() Vector3      { return s.Center }
func (s *Sphere) Orientation() Rotation3 { return s.Rotation }
func (s *Sphere) ID() string             { return s.Name }

// RayHit returns the near intersection of the ray with the sphere. Rays that
// start inside the sphere, or that point away from its center, miss.
func (s *Sphere) RayHit(ray Ray) (Hit, bool) {
	r2 := s.Radius * s.Radius

	oc := ray.Origin.Sub(s.Center)
	ocDir := oc.Dot(ray.Direction)
	if ocDir > 0 || oc.Dot(oc) < r2 {
		return Hit{}, false
	}

	a := oc.Sub(ray.Direction.Scale(ocDir))
	aa := a.Dot(a)
	if aa > r2 {
		return Hit{}, false
	}

	h := math.Sqrt(r2 - aa)
	i := a.Sub(ray.Direction.Scale(h))
	return Hit{
		Point:    s.Center.Add(i),
		Material: s.Material,
		Normal:   i.Div(s.Radius),
	}, true
}

// Light is a point light. Intensity is carried but the falloff used by
// shading depends on distance alone.
type Light struct {
	Pos       Vector3
	Rotation  Rotation3
	Intensity float64
	Color     Color
	Name      string
}

func NewLight(pos Vector3, rot Rotation3, intensity float64) Light {
	return Light{
		Pos:       pos,
		Rotation:  rot,
		Intensity: intensity,
		Color:     White,
	}
}

func (l *Light) Position() Vector3      { return l.Pos }
func (l *Light) Orientation() Rotation3 { return l.Rotation }
func (l *Light) RayHit(Ray) (Hit, bool) { return Hit{}, false }
func (l *Light) ID() string             { return l.Name }
