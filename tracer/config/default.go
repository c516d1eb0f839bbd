package config

import "github.com/jdginn/go-raycaster/engine"

// Default returns the built-in sample scene: a spinning two-tone cube above
// a floor, lit by one movable white light.
func Default() *SceneConfig {
	return &SceneConfig{
		Viewport: Viewport{
			Width:  engine.DefaultWidth,
			Height: engine.DefaultHeight,
			Scale:  6,
			TPS:    60,
		},
		Materials: Materials{
			Inline: map[string]Material{
				"white":   {Color: [3]int{255, 255, 255}},
				"magenta": {Color: [3]int{255, 10, 255}},
			},
		},
		Camera: Camera{
			ID:       "main camera",
			Position: [3]float64{3, 3, 3},
			Rotation: Rotation{Yaw: -3, Roll: 1.5},
			FOV:      40,
		},
		Lights: []Light{{
			ID:        "key light",
			Position:  [3]float64{-1, -1, 2},
			Intensity: 10,
		}},
		Meshes: []Mesh{
			{
				ID:             "spinning cube",
				Shape:          ShapeCube,
				Size:           2,
				Position:       [3]float64{0, 0, 1.5},
				Rotation:       Rotation{Yaw: 30, Roll: 60, Degrees: true},
				Material:       "white",
				AccentMaterial: "magenta",
			},
			{
				ID:       "floor",
				Shape:    ShapePlane,
				Size:     8,
				Material: "white",
			},
		},
		Controls: Controls{
			Lights: []string{"key light"},
			Spin:   []string{"spinning cube"},
		},
	}
}
