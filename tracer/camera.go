package tracer

import "math"

// Camera is a pinhole camera. FOV is in whole degrees.
type Camera struct {
	Pos      Vector3
	Rotation Rotation3
	FOV      int
	Name     string
}

func NewCamera(pos Vector3, rot Rotation3, fov int) Camera {
	return Camera{
		Pos:      pos,
		Rotation: rot,
		FOV:      fov,
	}
}

func (c *Camera) Position() Vector3      { return c.Pos }
func (c *Camera) Orientation() Rotation3 { return c.Rotation }
func (c *Camera) RayHit(Ray) (Hit, bool) { return Hit{}, false }
func (c *Camera) ID() string             { return c.Name }

// PrimaryRay maps pixel (x, y) of a width×height image to a world-space ray
// leaving the camera. The camera looks down -Z before rotation.
func (c *Camera) PrimaryRay(x, y, width, height int) Ray {
	aspect := float64(width) / float64(height)
	angle := math.Tan(math.Pi * 0.5 * float64(c.FOV) / 180)

	ndcX := (2*((float64(x)+0.5)/float64(width)) - 1) * angle * aspect
	ndcY := (1 - 2*((float64(y)+0.5)/float64(height))) * angle

	dir := V(ndcX, ndcY, -1).Normalize().Rotate(c.Rotation)
	return Ray{Origin: c.Pos, Direction: dir}
}
