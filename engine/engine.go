package engine

import (
	"errors"
	"image"
	"image/draw"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jdginn/go-raycaster/tracer"
)

// Frame buffer size used when a scene does not set one.
const (
	DefaultWidth  = 160
	DefaultHeight = 90
)

// FOV limits in degrees.
const (
	MinFOV = 1
	MaxFOV = 179
)

var ErrNotCreated = errors.New("engine: frame buffer not created")

// Steps are the per-tick increments applied while a key is held. A zero
// step means "use the default" from DefaultSteps; to keep a mesh still,
// leave it out of Controls.Spin.
type Steps struct {
	Yaw   float64 // radians
	Roll  float64 // radians
	FOV   int     // degrees
	Light float64 // world units
	Spin  float64 // radians, applied every tick to bound meshes
}

func DefaultSteps() Steps {
	return Steps{
		Yaw:   0.01,
		Roll:  0.01,
		FOV:   1,
		Light: 0.05,
		Spin:  0.01,
	}
}

// withDefaults fills zero steps from DefaultSteps.
func (s Steps) withDefaults() Steps {
	d := DefaultSteps()
	if s.Yaw == 0 {
		s.Yaw = d.Yaw
	}
	if s.Roll == 0 {
		s.Roll = d.Roll
	}
	if s.FOV == 0 {
		s.FOV = d.FOV
	}
	if s.Light == 0 {
		s.Light = d.Light
	}
	if s.Spin == 0 {
		s.Spin = d.Spin
	}
	return s
}

// Controls binds held-key edits to objects of the scene. Zero fields of
// Steps fall back to DefaultSteps.
type Controls struct {
	// Lights move with the G/J, H/Y and U/T keys.
	Lights []tracer.LightHandle
	// Spin meshes turn on every axis each tick.
	Spin  []tracer.MeshHandle
	Steps Steps
}

// Application drives one scene through the host lifecycle. It is not safe
// for concurrent use; hosts call it from their tick loop only.
type Application struct {
	scene    *tracer.Scene
	controls Controls
	fb       draw.Image
	logger   *log.Logger
	frames   int
}

type Option func(*Application)

func WithLogger(logger *log.Logger) Option {
	return func(a *Application) {
		a.logger = logger
	}
}

func New(scene *tracer.Scene, controls Controls, opts ...Option) *Application {
	controls.Steps = controls.Steps.withDefaults()
	a := &Application{
		scene:    scene,
		controls: controls,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("component", "engine")
	return a
}

// NewFrameBuffer allocates a frame buffer, falling back to the default size
// for non-positive dimensions.
func NewFrameBuffer(width, height int) *image.RGBA {
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (a *Application) Scene() *tracer.Scene { return a.scene }

func (a *Application) Controls() Controls { return a.controls }

// Frames is the number of completed Update calls.
func (a *Application) Frames() int { return a.frames }

// Create takes ownership of fb and clears it to black.
func (a *Application) Create(fb draw.Image) error {
	if fb == nil {
		return errors.New("engine: nil frame buffer")
	}
	b := fb.Bounds()
	if b.Empty() {
		return errors.New("engine: empty frame buffer")
	}
	draw.Draw(fb, b, image.NewUniform(tracer.Black), image.Point{}, draw.Src)
	a.fb = fb
	a.frames = 0
	a.logger.Debug("created", "width", b.Dx(), "height", b.Dy())
	return nil
}

// Update renders the whole frame and then applies the edits for the keys
// held in this tick, so edits show up in the next frame.
func (a *Application) Update(elapsed time.Duration, in Input) error {
	if a.fb == nil {
		return ErrNotCreated
	}

	start := time.Now()
	a.scene.Render(a.fb)
	a.apply(in)
	a.frames++

	a.logger.Debug("frame", "n", a.frames, "render", time.Since(start), "elapsed", elapsed)
	return nil
}

// Destroy releases the frame buffer. The scene is left as it was.
func (a *Application) Destroy() error {
	a.fb = nil
	a.logger.Debug("destroyed", "frames", a.frames)
	return nil
}

func (a *Application) apply(in Input) {
	steps := a.controls.Steps

	a.scene.UpdateCamera(func(c *tracer.Camera) {
		if in.YawRight {
			c.Rotation.Yaw -= steps.Yaw
		}
		if in.YawLeft {
			c.Rotation.Yaw += steps.Yaw
		}
		if in.RollUp {
			c.Rotation.Roll += steps.Roll
		}
		if in.RollDown {
			c.Rotation.Roll -= steps.Roll
		}
		if in.FOVIncrease {
			c.FOV += steps.FOV
		}
		if in.FOVDecrease {
			c.FOV -= steps.FOV
		}
		c.FOV = clampFOV(c.FOV)
	})

	var move tracer.Vector3
	if in.LightMinusX {
		move.X -= steps.Light
	}
	if in.LightPlusX {
		move.X += steps.Light
	}
	if in.LightMinusY {
		move.Y -= steps.Light
	}
	if in.LightPlusY {
		move.Y += steps.Light
	}
	if in.LightMinusZ {
		move.Z -= steps.Light
	}
	if in.LightPlusZ {
		move.Z += steps.Light
	}
	if move != (tracer.Vector3{}) {
		for _, h := range a.controls.Lights {
			a.scene.UpdateLight(h, func(l *tracer.Light) {
				l.Pos = l.Pos.Add(move)
			})
		}
	}

	spin := tracer.Rotation3{Yaw: steps.Spin, Pitch: steps.Spin, Roll: steps.Spin}
	for _, h := range a.controls.Spin {
		a.scene.UpdateMesh(h, func(m *tracer.Mesh) {
			m.Rotation = m.Rotation.Add(spin)
		})
	}
}

func clampFOV(fov int) int {
	if fov < MinFOV {
		return MinFOV
	}
	if fov > MaxFOV {
		return MaxFOV
	}
	return fov
}
