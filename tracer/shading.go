package tracer

import "math"

// Luminosity coefficients for the inverse-square falloff of a light, for a
// point in shadow and for a point the light reaches directly.
const (
	OccludedCoefficient = 0.22
	DirectCoefficient   = 1.0
)

// CastRay shades pixel (x, y) of a width×height image as seen by the active
// camera.
func (s *Scene) CastRay(x, y, width, height int) Color {
	return s.Shade(s.camera.PrimaryRay(x, y, width, height))
}

// Shade returns the color seen along a primary ray.
//
// Every light in turn overwrites the result; contributions are not summed,
// so with several lights the last one in scene order wins. A surface that is
// hit while no lights exist stays black.
//
// One reflection ray leaves the hit point along the surface normal. If it
// hits something, the light loop runs again from the original hit point
// using the reflected surface's color.
func (s *Scene) Shade(ray Ray) Color {
	return s.shade(ray, nil)
}

// shade is Shade that also fills trace, when non-nil, with every ray cast.
func (s *Scene) shade(ray Ray, trace *PixelTrace) Color {
	verifyPrimaryRay(ray)

	hit, ok := s.Trace(ray)
	if !ok {
		return Black
	}
	if trace != nil {
		trace.Hit = &hit
	}

	lights := s.Lights()
	occluded := make([]bool, len(lights))
	for i, l := range lights {
		shadow := RayTowards(hit.Point, l.Pos)
		verifyShadowRay(shadow, hit.Point)
		_, occluded[i] = s.Trace(shadow)
		if trace != nil {
			trace.Shadows = append(trace.Shadows, ShadowRay{
				Light:      l,
				Ray:        shadow,
				Occluded:   occluded[i],
				Luminosity: luminosity(hit.Point, l, occluded[i]),
			})
		}
	}

	color := lightLoop(hit.Point, hit.Material.Color, lights, occluded, Black)

	reflection := Ray{Origin: hit.Point, Direction: hit.Normal}
	if trace != nil {
		trace.Reflection = &reflection
	}
	reflected, ok := s.Trace(reflection)
	if ok {
		if trace != nil {
			trace.ReflectionHit = &reflected
		}
		color = lightLoop(hit.Point, reflected.Material.Color, lights, occluded, color)
	}
	return color
}

func lightLoop(point Vector3, surface Color, lights []Light, occluded []bool, color Color) Color {
	for i, l := range lights {
		color = blend(l.Color, surface, luminosity(point, l, occluded[i]))
	}
	return color
}

// luminosity is the inverse-square falloff of l at point.
func luminosity(point Vector3, l Light, occluded bool) float64 {
	k := DirectCoefficient
	if occluded {
		k = OccludedCoefficient
	}
	d := point.Distance(l.Pos)
	return k / (d * d)
}

func blend(light, surface Color, luminosity float64) Color {
	return Color{
		R: channel(light.R, surface.R, luminosity),
		G: channel(light.G, surface.G, luminosity),
		B: channel(light.B, surface.B, luminosity),
	}
}

func channel(light, surface uint8, luminosity float64) uint8 {
	return uint8(capped(float64(light)*luminosity+float64(surface)*luminosity, 0, 255))
}

// capped clamps v to [floor, ceil]; NaN maps to floor.
func capped(v, floor, ceil float64) float64 {
	if math.IsNaN(v) || v < floor {
		return floor
	}
	if v > ceil {
		return ceil
	}
	return v
}
