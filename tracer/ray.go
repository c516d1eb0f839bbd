package tracer

// Ray is a half-line. Direction should be normalized: hit distances and the
// sphere test both assume it.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// RayTowards returns a ray starting at from and pointing at to.
func RayTowards(from, to Vector3) Ray {
	return Ray{
		Origin:    from,
		Direction: to.Sub(from).Normalize(),
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Nudge advances the origin by one direction length.
func (r *Ray) Nudge() {
	r.Origin = r.Origin.Add(r.Direction)
}
