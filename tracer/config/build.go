package config

import (
	"fmt"

	"github.com/jdginn/go-raycaster/engine"
	"github.com/jdginn/go-raycaster/tracer"
)

func vec(v [3]float64) tracer.Vector3 {
	return tracer.V(v[0], v[1], v[2])
}

func (r Rotation) toTracer() tracer.Rotation3 {
	if r.Degrees {
		return tracer.Degrees(r.Yaw, r.Pitch, r.Roll)
	}
	return tracer.Rotation3{Yaw: r.Yaw, Pitch: r.Pitch, Roll: r.Roll}
}

func color(c [3]int) tracer.Color {
	return tracer.Color{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2])}
}

func (m Material) toTracer() tracer.Material {
	return tracer.Material{
		Color:        color(m.Color),
		Transparency: m.Transparency,
		Reflectivity: m.Reflectivity,
	}
}

func (m *Materials) lookup(name string) (tracer.Material, error) {
	mat, ok := m.Inline[name]
	if !ok {
		return tracer.Material{}, fmt.Errorf("undefined material %q", name)
	}
	return mat.toTracer(), nil
}

// FrameSize returns the frame buffer size, falling back to the engine
// defaults.
func (v Viewport) FrameSize() (int, int) {
	if v.Width <= 0 || v.Height <= 0 {
		return engine.DefaultWidth, engine.DefaultHeight
	}
	return v.Width, v.Height
}

// Build turns the config into a scene and resolves the control bindings to
// handles. Objects are added lights first, then meshes, then spheres, each
// in file order.
func (c *SceneConfig) Build() (*tracer.Scene, engine.Controls, error) {
	cam := tracer.NewCamera(vec(c.Camera.Position), c.Camera.Rotation.toTracer(), c.Camera.FOV)
	cam.Name = c.Camera.ID
	scene := tracer.NewScene(cam)

	for _, l := range c.Lights {
		light := tracer.NewLight(vec(l.Position), l.Rotation.toTracer(), l.Intensity)
		light.Name = l.ID
		if l.Color != nil {
			light.Color = color(*l.Color)
		}
		scene.AddLight(light)
	}

	for i, m := range c.Meshes {
		mesh, err := c.buildMesh(m)
		if err != nil {
			return nil, engine.Controls{}, fmt.Errorf("building meshes.%d: %w", i, err)
		}
		mesh.Name = m.ID
		scene.AddMesh(mesh)
	}

	for i, s := range c.Spheres {
		mat, err := c.Materials.lookup(s.Material)
		if err != nil {
			return nil, engine.Controls{}, fmt.Errorf("building spheres.%d: %w", i, err)
		}
		sphere := tracer.NewSphere(vec(s.Center), s.Radius, mat)
		sphere.Name = s.ID
		scene.AddSphere(sphere)
	}

	controls := engine.Controls{
		Steps: engine.Steps{
			Yaw:   c.Controls.YawStep,
			Roll:  c.Controls.RollStep,
			FOV:   c.Controls.FOVStep,
			Light: c.Controls.LightStep,
			Spin:  c.Controls.SpinStep,
		},
	}
	for _, id := range c.Controls.Lights {
		h, ok := scene.LookupLight(id)
		if !ok {
			return nil, engine.Controls{}, fmt.Errorf("controls: undefined light %q", id)
		}
		controls.Lights = append(controls.Lights, h)
	}
	for _, id := range c.Controls.Spin {
		h, ok := scene.LookupMesh(id)
		if !ok {
			return nil, engine.Controls{}, fmt.Errorf("controls: undefined mesh %q", id)
		}
		controls.Spin = append(controls.Spin, h)
	}

	return scene, controls, nil
}

func (c *SceneConfig) buildMesh(m Mesh) (tracer.Mesh, error) {
	pos, rot := vec(m.Position), m.Rotation.toTracer()

	var mat tracer.Material
	if m.Material != "" {
		var err error
		if mat, err = c.Materials.lookup(m.Material); err != nil {
			return tracer.Mesh{}, err
		}
	}

	switch m.Shape {
	case ShapeCube:
		accent := mat
		if m.AccentMaterial != "" {
			var err error
			if accent, err = c.Materials.lookup(m.AccentMaterial); err != nil {
				return tracer.Mesh{}, err
			}
		}
		return tracer.NewCube(pos, rot, m.Size/2, mat, accent), nil
	case ShapePlane:
		return tracer.NewPlane(pos, rot, m.Size/2, mat), nil
	case ShapeFile:
		tris, err := tracer.LoadTriangles(m.Path, tracer.ImportOptions{
			Scale:             m.Scale,
			Material:          mat,
			KeepFileMaterials: m.KeepFileMaterials,
		})
		if err != nil {
			return tracer.Mesh{}, err
		}
		return tracer.NewMesh(pos, rot, tris), nil
	}
	return tracer.Mesh{}, fmt.Errorf("unknown shape %q", m.Shape)
}
