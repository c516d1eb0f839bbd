// Package gui hosts an engine.Application in a desktop window.
package gui

import (
	"errors"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jdginn/go-raycaster/engine"
)

// Options configures the window.
type Options struct {
	Title  string
	Width  int // frame buffer pixels
	Height int // frame buffer pixels
	Scale  int // window pixels per frame buffer pixel
	TPS    int
	Logger *log.Logger
}

var keyMap = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyArrowLeft, engine.KeyLeft},
	{ebiten.KeyArrowRight, engine.KeyRight},
	{ebiten.KeyArrowUp, engine.KeyUp},
	{ebiten.KeyArrowDown, engine.KeyDown},
	{ebiten.KeyR, engine.KeyR},
	{ebiten.KeyF, engine.KeyF},
	{ebiten.KeyG, engine.KeyG},
	{ebiten.KeyJ, engine.KeyJ},
	{ebiten.KeyH, engine.KeyH},
	{ebiten.KeyY, engine.KeyY},
	{ebiten.KeyU, engine.KeyU},
	{ebiten.KeyT, engine.KeyT},
}

// Run opens a window and drives app until the window closes or Esc is
// pressed. It blocks.
func Run(app *engine.Application, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	fb := engine.NewFrameBuffer(opts.Width, opts.Height)
	if err := app.Create(fb); err != nil {
		return err
	}

	g := &hostGame{app: app, fb: fb, last: time.Now()}
	size := fb.Bounds().Size()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(size.X*opts.Scale, size.Y*opts.Scale)
	ebiten.SetTPS(opts.TPS)

	logger := opts.Logger.With("component", "gui")
	logger.Info("window open", "width", size.X, "height", size.Y, "scale", opts.Scale)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if derr := app.Destroy(); err == nil {
		err = derr
	}
	logger.Info("window closed", "frames", app.Frames())
	return err
}

type hostGame struct {
	app   *engine.Application
	fb    *image.RGBA
	fbImg *ebiten.Image
	last  time.Time
}

func pollInput() engine.Input {
	var in engine.Input
	for _, k := range keyMap {
		if ebiten.IsKeyPressed(k.key) {
			in.Set(k.name)
		}
	}
	return in
}

func (g *hostGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	elapsed := now.Sub(g.last)
	g.last = now
	return g.app.Update(elapsed, pollInput())
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.fbImg == nil {
		b := g.fb.Bounds()
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.fbImg.WritePixels(g.fb.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.fb.Bounds()
	return b.Dx(), b.Dy()
}
