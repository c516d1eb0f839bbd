package tracer

import "fmt"

// Color is an 8-bit RGB triple. It satisfies image/color.Color and is always
// fully opaque.
type Color struct {
	R, G, B uint8
}

var (
	Black   = Color{0, 0, 0}
	White   = Color{255, 255, 255}
	Magenta = Color{255, 10, 255}
)

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex formats c as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

type Material struct {
	Color Color
	// Transparency and Reflectivity are in [0, 1]. Shading does not read
	// either of them yet.
	Transparency float64
	Reflectivity float64
}

// Diffuse is an opaque, non-reflective material of the given color.
func Diffuse(c Color) Material {
	return Material{Color: c}
}
