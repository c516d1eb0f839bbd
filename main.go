package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/jdginn/go-raycaster/engine"
	"github.com/jdginn/go-raycaster/gui"
	"github.com/jdginn/go-raycaster/interact"
	"github.com/jdginn/go-raycaster/tracer"
	"github.com/jdginn/go-raycaster/tracer/config"
	"github.com/jdginn/go-raycaster/tracer/run"
	"github.com/jdginn/go-raycaster/upload"
)

type Globals struct {
	Config   string `name:"config" short:"c" type:"existingfile" help:"scene file to load instead of the built-in sample scene"`
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"minimum level to log"`
	LogFile  string `name:"log-file" help:"write logs to this file instead of stderr"`
}

var CLI struct {
	Globals

	Window    WindowCmd    `cmd:"" default:"1" help:"Render the scene in a window"`
	Term      TermCmd      `cmd:"" help:"Render the scene in the terminal"`
	Render    RenderCmd    `cmd:"" help:"Render frames headless and save the last one"`
	Inspect   InspectCmd   `cmd:"" help:"Trace one pixel and save every ray as JSON"`
	DumpScene DumpSceneCmd `cmd:"" name:"dump-scene" help:"Write the active scene to a YAML file"`
	Validate  ValidateCmd  `cmd:"" help:"Check a scene file"`
}

// logger builds the root logger. quiet discards output that would otherwise
// go to stderr.
func (g *Globals) logger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case g.LogFile != "":
		f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closer, nil
}

func (g *Globals) scene(logger *log.Logger) (*config.SceneConfig, error) {
	if g.Config == "" {
		logger.Debug("using built-in scene")
		return config.Default(), nil
	}
	logger.Debug("loading scene", "path", g.Config)
	return config.LoadFromFile(g.Config, config.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
}

// application builds the scene and wraps it for a host.
func (g *Globals) application(logger *log.Logger) (*engine.Application, *config.SceneConfig, error) {
	cfg, err := g.scene(logger)
	if err != nil {
		return nil, nil, err
	}
	scene, controls, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("building scene: %w", err)
	}
	return engine.New(scene, controls, engine.WithLogger(logger)), cfg, nil
}

type WindowCmd struct {
	Scale int `help:"window pixels per frame pixel; 0 uses the scene's viewport scale"`
}

func (c *WindowCmd) Run(g *Globals) error {
	logger, done, err := g.logger(false)
	if err != nil {
		return err
	}
	defer done()

	app, cfg, err := g.application(logger)
	if err != nil {
		return err
	}
	w, h := cfg.Viewport.FrameSize()
	scale := c.Scale
	if scale <= 0 {
		scale = cfg.Viewport.Scale
	}
	return gui.Run(app, gui.Options{
		Title:  "Raytracing",
		Width:  w,
		Height: h,
		Scale:  scale,
		TPS:    cfg.Viewport.TPS,
		Logger: logger,
	})
}

type TermCmd struct {
	HUD bool `name:"hud" help:"show the camera orientation under the frame"`
}

func (c *TermCmd) Run(g *Globals) error {
	logger, done, err := g.logger(true)
	if err != nil {
		return err
	}
	defer done()

	app, cfg, err := g.application(logger)
	if err != nil {
		return err
	}
	w, h := cfg.Viewport.FrameSize()
	return interact.Run(app, interact.Options{
		Width:  w,
		Height: h,
		TPS:    cfg.Viewport.TPS,
		HUD:    c.HUD,
		Logger: logger,
	})
}

type RenderCmd struct {
	Ticks     int    `default:"1" help:"number of ticks to run; spinning meshes advance once per tick"`
	Out       string `default:"." type:"path" help:"directory that holds the renders folder"`
	Scale     int    `help:"upscale factor of the saved PNG; 0 uses the scene's viewport scale"`
	HUD       bool   `name:"hud" help:"draw the camera orientation on the saved PNG"`
	Histogram bool   `help:"also save a per-channel histogram of the frame"`
	Upload    bool   `help:"upload the saved PNG to S3"`
	EnvFile   string `name:"env-file" default:".env" help:"file with S3_* settings for --upload"`
}

func (c *RenderCmd) Run(g *Globals) error {
	logger, done, err := g.logger(false)
	if err != nil {
		return err
	}
	defer done()

	if c.Ticks < 1 {
		return fmt.Errorf("--ticks must be at least 1")
	}

	app, cfg, err := g.application(logger)
	if err != nil {
		return err
	}
	w, h := cfg.Viewport.FrameSize()
	fb := engine.NewFrameBuffer(w, h)
	if err := app.Create(fb); err != nil {
		return err
	}
	for i := 0; i < c.Ticks; i++ {
		if err := app.Update(0, engine.Input{}); err != nil {
			return err
		}
	}
	if err := app.Destroy(); err != nil {
		return err
	}

	dir, err := run.CreateDirectory(c.Out, logger)
	if err != nil {
		return err
	}
	if g.Config != "" {
		err = dir.CopyConfigFile(g.Config)
	} else {
		err = config.SaveToFile(cfg, dir.FilePath("scene.yaml"))
	}
	if err != nil {
		return err
	}

	scale := c.Scale
	if scale <= 0 {
		scale = cfg.Viewport.Scale
	}
	img := tracer.View{Scale: scale, HUD: c.HUD}.Compose(fb, app.Scene().Camera())
	framePath := dir.FilePath("frame.png")
	if err := tracer.SavePNG(framePath, img); err != nil {
		return fmt.Errorf("saving frame: %w", err)
	}
	logger.Info("saved frame", "path", framePath, "ticks", c.Ticks)

	if c.Histogram {
		histPath := dir.FilePath("histogram.png")
		if err := tracer.SaveHistogram(histPath, 640, 480, fb); err != nil {
			return err
		}
		logger.Info("saved histogram", "path", histPath)
	}

	if c.Upload {
		upCfg, err := upload.ConfigFromEnv(c.EnvFile)
		if err != nil {
			return err
		}
		uploader, err := upload.New(upCfg, logger)
		if err != nil {
			return err
		}
		data, err := tracer.EncodePNG(img)
		if err != nil {
			return fmt.Errorf("encoding frame: %w", err)
		}
		if _, err := uploader.PNG(context.Background(), path.Join(dir.ID, "frame.png"), data); err != nil {
			return err
		}
	}
	return nil
}

type InspectCmd struct {
	X   int    `arg:"" help:"pixel column"`
	Y   int    `arg:"" help:"pixel row"`
	Out string `default:"trace.json" type:"path" help:"JSON file to write"`
}

func (c *InspectCmd) Run(g *Globals) error {
	logger, done, err := g.logger(false)
	if err != nil {
		return err
	}
	defer done()

	cfg, err := g.scene(logger)
	if err != nil {
		return err
	}
	scene, _, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	w, h := cfg.Viewport.FrameSize()
	if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= h {
		return fmt.Errorf("pixel %d,%d is outside the %dx%d frame", c.X, c.Y, w, h)
	}

	trace := scene.TracePixel(c.X, c.Y, w, h)
	if err := tracer.SavePixelTracesToJSON(c.Out, []tracer.PixelTrace{trace}); err != nil {
		return err
	}
	logger.Info("saved pixel trace", "path", c.Out, "color", trace.Color.Hex(), "hit", trace.Hit != nil)
	return nil
}

type DumpSceneCmd struct {
	Path string `arg:"" type:"path" help:"YAML file to write"`
}

func (c *DumpSceneCmd) Run(g *Globals) error {
	logger, done, err := g.logger(false)
	if err != nil {
		return err
	}
	defer done()

	cfg, err := g.scene(logger)
	if err != nil {
		return err
	}
	if err := config.SaveToFile(cfg, c.Path); err != nil {
		return err
	}
	logger.Info("wrote scene", "path", c.Path)
	return nil
}

type ValidateCmd struct {
	Scene string `arg:"" type:"existingfile" help:"scene file to check"`
}

func (c *ValidateCmd) Run(g *Globals) error {
	cfg, err := config.LoadFromFile(c.Scene, config.LoadOptions{ResolvePaths: true, MergeFiles: true})
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Print(config.FormatValidationErrors(errs))
		return fmt.Errorf("%s has %d problems", c.Scene, len(errs))
	}
	if _, _, err := cfg.Build(); err != nil {
		return err
	}
	fmt.Printf("%s is valid\n", c.Scene)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("raycaster"),
		kong.Description("Trace a small 3-D scene, one ray per pixel."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&CLI.Globals)
	if err != nil {
		log.Fatal(err)
	}
}
