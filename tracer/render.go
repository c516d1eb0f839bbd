package tracer

import "image/draw"

// Render traces one primary ray per pixel of dst and writes the result. The
// whole frame is recomputed on every call.
func (s *Scene) Render(dst draw.Image) {
	b := dst.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return
	}
	for i := 0; i < width*height; i++ {
		x, y := i%width, i/width
		dst.Set(b.Min.X+x, b.Min.Y+y, s.CastRay(x, y, width, height))
	}
}
