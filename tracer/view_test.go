package tracer

import (
	"encoding/json"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderedFrame(t *testing.T) *image.RGBA {
	t.Helper()
	scene := targetScene()
	scene.AddLight(NewLight(V(0, 0, -2), Rotation3{}, 1))
	img := image.NewRGBA(image.Rect(0, 0, 16, 9))
	scene.Render(img)
	return img
}

func TestComposeScale(t *testing.T) {
	frame := renderedFrame(t)
	cam := NewCamera(V(0, 0, 0), Rotation3{}, 90)

	tests := []struct {
		name   string
		view   View
		expect image.Point
	}{
		{"unscaled", View{}, image.Pt(16, 9)},
		{"scale_one", View{Scale: 1}, image.Pt(16, 9)},
		{"scale_four", View{Scale: 4}, image.Pt(64, 36)},
		{"scale_with_hud", View{Scale: 8, HUD: true}, image.Pt(128, 72)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			img := test.view.Compose(frame, cam)
			assert.Equal(t, test.expect, img.Bounds().Size())
		})
	}
}

func TestComposeKeepsPixelsSquare(t *testing.T) {
	frame := renderedFrame(t)
	img := View{Scale: 3}.Compose(frame, NewCamera(V(0, 0, 0), Rotation3{}, 90))

	for _, p := range []image.Point{{0, 0}, {7, 4}, {15, 8}} {
		want := frame.At(p.X, p.Y)
		for dy := 0; dy < 3; dy++ {
			for dx := 0; dx < 3; dx++ {
				r1, g1, b1, _ := want.RGBA()
				r2, g2, b2, _ := img.At(p.X*3+dx, p.Y*3+dy).RGBA()
				assert.Equal(t, []uint32{r1, g1, b1}, []uint32{r2, g2, b2})
			}
		}
	}
}

func TestHUDLines(t *testing.T) {
	cam := NewCamera(V(0, 0, 0), Rotation3{Yaw: -3, Pitch: 0.2, Roll: 1.5}, 40)
	assert.Equal(t, []string{"roll 1.50", "yaw -3.00", "pitch 0.20", "fov 40"}, HUDLines(cam))
}

func TestSaveOutputs(t *testing.T) {
	dir := t.TempDir()
	frame := renderedFrame(t)

	require.NoError(t, SavePNG(filepath.Join(dir, "frame.png"), frame))
	require.NoError(t, SaveHistogram(filepath.Join(dir, "hist.png"), 320, 240, frame))

	data, err := EncodePNG(frame)
	require.NoError(t, err)
	onDisk, err := os.ReadFile(filepath.Join(dir, "hist.png"))
	require.NoError(t, err)
	assert.NotEmpty(t, onDisk)
	// PNG signature
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestSavePixelTracesToJSON(t *testing.T) {
	scene := targetScene()
	light := NewLight(V(0, 0, -2), Rotation3{}, 1)
	light.Name = "key light"
	scene.AddLight(light)

	traces := []PixelTrace{scene.TracePixel(0, 0, 1, 1), scene.TracePixel(0, 0, 1, 1)}
	traces[1].Hit = nil
	traces[1].Shadows = nil
	traces[1].Reflection = nil

	path := filepath.Join(t.TempDir(), "traces.json")
	require.NoError(t, SavePixelTracesToJSON(path, traces))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got struct {
		Pixels []PixelTraceJSON `json:"pixels"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got.Pixels, 2)

	first := got.Pixels[0]
	assert.Equal(t, "#584c3f", first.Color)
	if assert.NotNil(t, first.Hit) {
		assert.Equal(t, "#643200", first.Hit.Color)
	}
	if assert.Len(t, first.Shadows, 1) {
		assert.Equal(t, "key light", first.Shadows[0].Light)
		assert.False(t, first.Shadows[0].Occluded)
	}
	assert.Nil(t, first.ReflectionHit)

	assert.Nil(t, got.Pixels[1].Hit)
	assert.Empty(t, got.Pixels[1].Shadows)
}
