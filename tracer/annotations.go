package tracer

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSON schema types
type VectorJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type RayJSON struct {
	Origin    VectorJSON `json:"origin"`
	Direction VectorJSON `json:"direction"`
}

type HitJSON struct {
	Point  VectorJSON `json:"point"`
	Normal VectorJSON `json:"normal"`
	Color  string     `json:"color"`
}

type ShadowJSON struct {
	Light      string  `json:"light,omitempty"`
	Ray        RayJSON `json:"ray"`
	Occluded   bool    `json:"occluded"`
	Luminosity float64 `json:"luminosity"`
}

type PixelTraceJSON struct {
	X             int          `json:"x"`
	Y             int          `json:"y"`
	Primary       RayJSON      `json:"primary"`
	Hit           *HitJSON     `json:"hit,omitempty"`
	Shadows       []ShadowJSON `json:"shadows,omitempty"`
	Reflection    *RayJSON     `json:"reflection,omitempty"`
	ReflectionHit *HitJSON     `json:"reflectionHit,omitempty"`
	Color         string       `json:"color"`
}

// PixelTrace records every ray cast while shading one pixel.
type PixelTrace struct {
	X, Y          int
	Primary       Ray
	Hit           *Hit
	Shadows       []ShadowRay
	Reflection    *Ray
	ReflectionHit *Hit
	Color         Color
}

type ShadowRay struct {
	Light      Light
	Ray        Ray
	Occluded   bool
	Luminosity float64
}

// TracePixel shades pixel (x, y) like CastRay and keeps the intermediate
// rays and hits.
func (s *Scene) TracePixel(x, y, width, height int) PixelTrace {
	trace := PixelTrace{X: x, Y: y, Primary: s.camera.PrimaryRay(x, y, width, height)}
	trace.Color = s.shade(trace.Primary, &trace)
	return trace
}

// Conversion functions
func VectorToJSON(v Vector3) VectorJSON {
	return VectorJSON{X: v.X, Y: v.Y, Z: v.Z}
}

func RayToJSON(r Ray) RayJSON {
	return RayJSON{Origin: VectorToJSON(r.Origin), Direction: VectorToJSON(r.Direction)}
}

func HitToJSON(h Hit) HitJSON {
	return HitJSON{
		Point:  VectorToJSON(h.Point),
		Normal: VectorToJSON(h.Normal),
		Color:  h.Material.Color.Hex(),
	}
}

func (p PixelTrace) JSON() PixelTraceJSON {
	out := PixelTraceJSON{
		X:       p.X,
		Y:       p.Y,
		Primary: RayToJSON(p.Primary),
		Color:   p.Color.Hex(),
	}
	if p.Hit != nil {
		h := HitToJSON(*p.Hit)
		out.Hit = &h
	}
	for _, s := range p.Shadows {
		out.Shadows = append(out.Shadows, ShadowJSON{
			Light:      s.Light.Name,
			Ray:        RayToJSON(s.Ray),
			Occluded:   s.Occluded,
			Luminosity: s.Luminosity,
		})
	}
	if p.Reflection != nil {
		r := RayToJSON(*p.Reflection)
		out.Reflection = &r
	}
	if p.ReflectionHit != nil {
		h := HitToJSON(*p.ReflectionHit)
		out.ReflectionHit = &h
	}
	return out
}

// SavePixelTracesToJSON writes the traces to filename as indented JSON.
func SavePixelTracesToJSON(filename string, traces []PixelTrace) error {
	container := struct {
		Pixels []PixelTraceJSON `json:"pixels"`
	}{
		Pixels: make([]PixelTraceJSON, 0, len(traces)),
	}
	for _, t := range traces {
		container.Pixels = append(container.Pixels, t.JSON())
	}

	data, err := json.MarshalIndent(container, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling pixel traces: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
