package tracer

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3 is a point or direction in world or object space.
//
// It shares its layout with r3.Vec so values convert freely between the two.
type Vector3 struct {
	X, Y, Z float64
}

// V is a shorthand constructor for Vector3
func V(X, Y, Z float64) Vector3 {
	return Vector3{X: X, Y: Y, Z: Z}
}

func (v Vector3) vec() r3.Vec { return r3.Vec(v) }

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3(r3.Add(v.vec(), o.vec()))
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3(r3.Sub(v.vec(), o.vec()))
}

// Scale multiplies every component by f.
func (v Vector3) Scale(f float64) Vector3 {
	return Vector3(r3.Scale(f, v.vec()))
}

// Div divides every component by f.
func (v Vector3) Div(f float64) Vector3 {
	return Vector3{v.X / f, v.Y / f, v.Z / f}
}

func (v Vector3) Dot(o Vector3) float64 {
	return r3.Dot(v.vec(), o.vec())
}

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3(r3.Cross(v.vec(), o.vec()))
}

func (v Vector3) Length() float64 {
	return r3.Norm(v.vec())
}

// Distance is the Euclidean distance between v and o.
func (v Vector3) Distance(o Vector3) float64 {
	return r3.Norm(r3.Sub(o.vec(), v.vec()))
}

// Normalize returns v scaled to unit length. A zero vector is returned
// unchanged, so callers must tolerate a non-unit result in that case.
func (v Vector3) Normalize() Vector3 {
	lenSquared := r3.Norm2(v.vec())
	if lenSquared > 0 {
		return v.Scale(1 / math.Sqrt(lenSquared))
	}
	return v
}

// Rotate applies rot to v about the origin.
func (v Vector3) Rotate(rot Rotation3) Vector3 {
	return Vector3(rot.Matrix().MulVec(v.vec()))
}

// Rotation3 holds Euler angles in radians.
type Rotation3 struct {
	Yaw, Pitch, Roll float64
}

// Forward converts the yaw and pitch of r into a direction vector. Roll does
// not change where the direction points and is ignored.
func (r Rotation3) Forward() Vector3 {
	return Vector3{
		X: math.Cos(r.Yaw) * math.Cos(r.Pitch),
		Y: math.Sin(r.Yaw) * math.Cos(r.Pitch),
		Z: math.Sin(r.Pitch),
	}
}

// Matrix builds the rotation matrix Rz(yaw)·Ry(pitch)·Rx(roll).
func (r Rotation3) Matrix() *r3.Mat {
	su, cu := math.Sincos(r.Roll)
	sv, cv := math.Sincos(r.Pitch)
	sw, cw := math.Sincos(r.Yaw)

	return r3.NewMat([]float64{
		cv * cw, su*sv*cw - cu*sw, su*sw + cu*sv*cw,
		cv * sw, cu*cw + su*sv*sw, cu*sv*sw - su*cw,
		-sv, su * cv, cu * cv,
	})
}

// Add returns the component-wise sum of two rotations.
func (r Rotation3) Add(o Rotation3) Rotation3 {
	return Rotation3{Yaw: r.Yaw + o.Yaw, Pitch: r.Pitch + o.Pitch, Roll: r.Roll + o.Roll}
}

// Degrees builds a Rotation3 from angles given in degrees.
func Degrees(yaw, pitch, roll float64) Rotation3 {
	return Rotation3{Yaw: degToRad(yaw), Pitch: degToRad(pitch), Roll: degToRad(roll)}
}

func degToRad(deg float64) float64 {
	return math.Pi / 180 * deg
}
