package tracer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// View turns a rendered frame into an image for saving or display.
type View struct {
	// Scale is the integer upscale factor applied with nearest-neighbour
	// sampling so pixels stay square. Values below 2 leave the frame as is.
	Scale int
	// HUD draws the camera orientation in the top-left corner.
	HUD bool
}

// Compose applies the view's scale and overlay to frame.
func (v View) Compose(frame image.Image, cam Camera) image.Image {
	img := frame
	if v.Scale > 1 {
		b := frame.Bounds()
		img = resize.Resize(uint(b.Dx()*v.Scale), uint(b.Dy()*v.Scale), frame, resize.NearestNeighbor)
	}
	if !v.HUD {
		return img
	}

	c := gg.NewContextForImage(img)
	c.SetRGB(1, 1, 1)
	for i, line := range HUDLines(cam) {
		// 13px matches the default gg face
		c.DrawString(line, 2, float64(13*(i+1)))
	}
	return c.Image()
}

// HUDLines describes the camera orientation, one value per line.
func HUDLines(cam Camera) []string {
	return []string{
		fmt.Sprintf("roll %.2f", cam.Rotation.Roll),
		fmt.Sprintf("yaw %.2f", cam.Rotation.Yaw),
		fmt.Sprintf("pitch %.2f", cam.Rotation.Pitch),
		fmt.Sprintf("fov %d", cam.FOV),
	}
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

// EncodePNG returns the PNG encoding of img.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// channelValues splits img into its red, green and blue 8-bit samples.
func channelValues(img image.Image) (r, g, b plotter.Values) {
	bounds := img.Bounds()
	n := bounds.Dx() * bounds.Dy()
	r, g, b = make(plotter.Values, 0, n), make(plotter.Values, 0, n), make(plotter.Values, 0, n)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r = append(r, float64(cr>>8))
			g = append(g, float64(cg>>8))
			b = append(b, float64(cb>>8))
		}
	}
	return r, g, b
}

// SaveHistogram plots the per-channel distribution of frame and saves it to
// path. The format follows the file extension.
func SaveHistogram(path string, width, height int, frame image.Image) error {
	p := plot.New()
	p.Title.Text = "Channel histogram"
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Pixels"

	r, g, b := channelValues(frame)
	channels := []struct {
		name   string
		values plotter.Values
		fill   color.Color
	}{
		{"red", r, color.NRGBA{R: 255, A: 96}},
		{"green", g, color.NRGBA{G: 255, A: 96}},
		{"blue", b, color.NRGBA{B: 255, A: 96}},
	}
	for _, ch := range channels {
		h, err := plotter.NewHist(ch.values, 32)
		if err != nil {
			return fmt.Errorf("building %s histogram: %w", ch.name, err)
		}
		h.FillColor = ch.fill
		h.LineStyle.Width = 0
		p.Add(h)
		p.Legend.Add(ch.name, h)
	}

	if err := p.Save(vg.Length(width), vg.Length(height), path); err != nil {
		return fmt.Errorf("saving histogram: %w", err)
	}
	return nil
}
