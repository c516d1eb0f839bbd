// Package interact hosts an engine.Application in the terminal, drawing two
// frame rows per text line with half-block cells.
package interact

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jdginn/go-raycaster/engine"
	"github.com/jdginn/go-raycaster/tracer"
)

var (
	docStyle = lipgloss.NewStyle().Margin(0, 1)
	hudStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#aaaaaa"))
)

type keyMap struct {
	Yaw    key.Binding
	Roll   key.Binding
	FOV    key.Binding
	LightX key.Binding
	LightY key.Binding
	LightZ key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yaw, k.Roll, k.FOV, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Yaw, k.Roll, k.FOV},
		{k.LightX, k.LightY, k.LightZ},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Yaw: key.NewBinding(
		key.WithKeys(engine.KeyLeft, engine.KeyRight),
		key.WithHelp("←/→", "yaw"),
	),
	Roll: key.NewBinding(
		key.WithKeys(engine.KeyUp, engine.KeyDown),
		key.WithHelp("↑/↓", "roll"),
	),
	FOV: key.NewBinding(
		key.WithKeys(engine.KeyR, engine.KeyF),
		key.WithHelp("r/f", "fov"),
	),
	LightX: key.NewBinding(
		key.WithKeys(engine.KeyG, engine.KeyJ),
		key.WithHelp("g/j", "light x"),
	),
	LightY: key.NewBinding(
		key.WithKeys(engine.KeyH, engine.KeyY),
		key.WithHelp("h/y", "light y"),
	),
	LightZ: key.NewBinding(
		key.WithKeys(engine.KeyU, engine.KeyT),
		key.WithHelp("u/t", "light z"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c", "q"),
		key.WithHelp("esc", "quit"),
	),
}

type tickMsg time.Time

// Options configures the terminal host.
type Options struct {
	Width  int // frame buffer pixels
	Height int // frame buffer pixels
	TPS    int
	HUD    bool
	Logger *log.Logger
}

type model struct {
	app    *engine.Application
	fb     *image.RGBA
	tick   time.Duration
	last   time.Time
	hud    bool
	help   help.Model
	logger *log.Logger

	// held collects key presses since the last tick. Terminals report
	// repeats, not releases, so a key counts as held for one tick per press.
	held engine.Input
	err  error
}

func newModel(app *engine.Application, fb *image.RGBA, opts Options) model {
	tps := opts.TPS
	if tps <= 0 {
		tps = 30
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return model{
		app:    app,
		fb:     fb,
		tick:   time.Second / time.Duration(tps),
		last:   time.Now(),
		hud:    opts.HUD,
		help:   help.New(),
		logger: logger.With("component", "interact"),
	}
}

func (m model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			m.held.Set(msg.String())
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tickMsg:
		now := time.Time(msg)
		elapsed := now.Sub(m.last)
		m.last = now
		if err := m.app.Update(elapsed, m.held); err != nil {
			m.err = err
			m.logger.Error("update failed", "err", err)
			return m, tea.Quit
		}
		m.held = engine.Input{}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(renderFrame(m.fb))
	if m.hud {
		b.WriteString("\n")
		b.WriteString(hudStyle.Render(strings.Join(tracer.HUDLines(m.app.Scene().Camera()), "  ")))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return docStyle.Render(b.String())
}

func hex(r, g, b uint8) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// renderFrame draws img with one "▀" per pair of rows: the foreground is the
// upper pixel, the background the lower one. An odd last row gets a black
// lower half.
func renderFrame(img *image.RGBA) string {
	bounds := img.Bounds()
	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			b.WriteString("\n")
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := img.RGBAAt(x, y)
			var bottom = tracer.Black
			if y+1 < bounds.Max.Y {
				c := img.RGBAAt(x, y+1)
				bottom = tracer.Color{R: c.R, G: c.G, B: c.B}
			}
			cell := lipgloss.NewStyle().
				Foreground(hex(top.R, top.G, top.B)).
				Background(hex(bottom.R, bottom.G, bottom.B))
			b.WriteString(cell.Render("▀"))
		}
	}
	return b.String()
}

// Run drives app in the terminal until the user quits. Logs must not go to
// the terminal while it runs.
func Run(app *engine.Application, opts Options) error {
	fb := engine.NewFrameBuffer(opts.Width, opts.Height)
	if err := app.Create(fb); err != nil {
		return err
	}

	p := tea.NewProgram(newModel(app, fb, opts), tea.WithAltScreen())
	final, err := p.Run()
	if derr := app.Destroy(); err == nil {
		err = derr
	}
	if err != nil {
		return fmt.Errorf("running terminal host: %w", err)
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
