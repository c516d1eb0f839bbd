package tracer

import "gonum.org/v1/gonum/spatial/r3"

// epsilon bounds both the determinant and the hit distance in RayHit.
const epsilon = 1e-7

// Triangle is authored in the local space of the mesh that owns it.
type Triangle struct {
	A, B, C  Vector3
	Material Material
}

// Transformed returns t rotated by rot and then translated by pos.
func (t Triangle) Transformed(pos Vector3, rot Rotation3) Triangle {
	return t.transform(rot.Matrix(), pos)
}

func (t Triangle) transform(m *r3.Mat, pos Vector3) Triangle {
	return Triangle{
		A:        Vector3(m.MulVec(t.A.vec())).Add(pos),
		B:        Vector3(m.MulVec(t.B.vec())).Add(pos),
		C:        Vector3(m.MulVec(t.C.vec())).Add(pos),
		Material: t.Material,
	}
}

// Normal is the cross product of the two edges leaving A. It is not
// normalized.
func (t Triangle) Normal() Vector3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// RayHit intersects the ray with t using the Möller–Trumbore algorithm and
// returns the hit point.
func (t Triangle) RayHit(ray Ray) (Vector3, bool) {
	edge1 := t.B.Sub(t.A)
	edge2 := t.C.Sub(t.A)
	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)

	// Ray lies in the plane of the triangle
	if det > -epsilon && det < epsilon {
		return Vector3{}, false
	}
	invDet := 1 / det

	tvec := ray.Origin.Sub(t.A)
	u := pvec.Dot(tvec) * invDet
	if u < 0 || u > 1 {
		return Vector3{}, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return Vector3{}, false
	}

	dist := edge2.Dot(qvec) * invDet
	if dist < epsilon {
		return Vector3{}, false
	}
	return ray.At(dist), true
}
