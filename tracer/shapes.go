package tracer

// NewCube builds an axis-aligned cube of the given half extent around the
// local origin. Faces alternate between accent and face materials, one
// triangle of each per side.
func NewCube(center Vector3, rot Rotation3, half float64, face, accent Material) Mesh {
	p := func(x, y, z float64) Vector3 { return V(x*half, y*half, z*half) }
	tri := func(a, b, c Vector3, m Material) Triangle { return Triangle{A: a, B: b, C: c, Material: m} }

	tris := []Triangle{
		tri(p(-1, -1, -1), p(-1, -1, 1), p(-1, 1, 1), accent),
		tri(p(1, 1, -1), p(-1, -1, -1), p(-1, 1, -1), face),

		tri(p(1, -1, 1), p(-1, -1, -1), p(1, -1, -1), face),
		tri(p(1, 1, -1), p(-1, -1, -1), p(1, -1, -1), accent),

		tri(p(-1, -1, -1), p(-1, 1, 1), p(-1, 1, -1), accent),
		tri(p(1, -1, 1), p(-1, -1, 1), p(-1, -1, -1), face),

		tri(p(-1, 1, 1), p(-1, -1, 1), p(1, -1, 1), accent),
		tri(p(1, 1, 1), p(-1, 1, 1), p(1, -1, 1), face),

		tri(p(1, 1, 1), p(1, -1, -1), p(1, 1, -1), accent),
		tri(p(1, -1, -1), p(1, 1, 1), p(1, -1, 1), face),

		tri(p(1, 1, 1), p(1, 1, -1), p(-1, 1, -1), accent),
		tri(p(1, 1, 1), p(-1, 1, -1), p(-1, 1, 1), face),
	}
	return NewMesh(center, rot, tris)
}

// NewPlane builds a square in the local XY plane made of two triangles.
func NewPlane(center Vector3, rot Rotation3, half float64, mat Material) Mesh {
	tris := []Triangle{
		{A: V(half, half, 0), B: V(-half, half, 0), C: V(half, -half, 0), Material: mat},
		{A: V(-half, half, 0), B: V(-half, -half, 0), C: V(half, -half, 0), Material: mat},
	}
	return NewMesh(center, rot, tris)
}
