// Package app runs the interactive unit circle window.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/Faultbox/unitcircle/internal/config"
	"github.com/Faultbox/unitcircle/internal/engine/debug"
	"github.com/Faultbox/unitcircle/internal/engine/input"
	"github.com/Faultbox/unitcircle/internal/engine/ui2d"
	"github.com/Faultbox/unitcircle/internal/engine/window"
	"github.com/Faultbox/unitcircle/internal/logger"
	"github.com/Faultbox/unitcircle/internal/prefs"
	"github.com/Faultbox/unitcircle/internal/selector"
	"github.com/Faultbox/unitcircle/internal/view"
	"github.com/Faultbox/unitcircle/pkg/trig"
)

const title = "Unit Circle"

// App is the application instance.
type App struct {
	cfg     *config.Config
	running bool

	window *window.Window
	face   font.Face
	ui     *ui2d.Context
	input  *input.Input
	sel    *selector.Selector

	screenshots *debug.ScreenshotCapture
	exports     *debug.ScreenshotCapture
	pendingShot bool

	unsubTitle func()
	log        *zap.Logger
}

// New creates the window, the renderer and the angle selector.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}
	a.log.Info("initializing",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.face, err = view.NewFace(view.DefaultFontSize)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	// UI coordinates are window points; the viewport uses drawable pixels.
	w, h := a.window.GetSize()
	a.ui, err = ui2d.NewContext(w, h, a.face)
	if err != nil {
		a.face.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create UI: %w", err)
	}

	a.sel, err = selector.New(cfg, prefs.NewStore(config.ConfigDir()))
	if err != nil {
		a.ui.Close()
		a.face.Close()
		a.window.Close()
		return nil, err
	}
	a.sel.Resize(w, h)
	a.sel.SetCursorSetter(a.window)
	a.sel.SetPointerSink(a)
	a.sel.OnScreenshot(func() { a.pendingShot = true })
	a.unsubTitle = a.sel.OnAngleChange(a.updateTitle)

	a.input = input.New(a.sel)
	a.screenshots = debug.NewScreenshotCapture(cfg.Export.ScreenshotDir, "unitcircle")
	a.exports = debug.NewScreenshotCapture(cfg.Export.ScreenshotDir, "unitcircle_export")

	a.log.Info("initialized")
	return a, nil
}

// Run starts the main loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	var frameTime time.Duration
	if a.cfg.Window.FPSLimit > 0 {
		frameTime = time.Second / time.Duration(a.cfg.Window.FPSLimit)
	}

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		frameStart := time.Now()

		// 1. Input, dispatched synchronously to the controllers
		f := a.input.Poll()
		if f.Quit {
			a.running = false
			break
		}
		if f.Resized {
			a.resize()
		}

		// 2. Render
		if err := a.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 3. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameTime > 0 {
			if elapsed := time.Since(frameStart); elapsed < frameTime {
				time.Sleep(frameTime - elapsed)
			}
		}
	}

	return nil
}

// Close detaches the controllers and releases GL and SDL resources. It is
// safe to call more than once.
func (a *App) Close() {
	if a.window == nil {
		return
	}
	a.log.Info("closing")

	if a.unsubTitle != nil {
		a.unsubTitle()
		a.unsubTitle = nil
	}
	if a.sel != nil {
		a.sel.Close()
		a.sel = nil
	}
	if a.ui != nil {
		a.ui.Close()
		a.ui = nil
	}
	if a.face != nil {
		a.face.Close()
		a.face = nil
	}
	a.window.Close()
	a.window = nil
}

// PointerDown feeds the widget layer and reports whether a widget is under
// the pointer.
func (a *App) PointerDown(x, y float64) bool {
	a.ui.Input().PressLeft(float32(x), float32(y))
	return a.ui.WantsMouse(float32(x), float32(y))
}

// PointerMove feeds the widget layer.
func (a *App) PointerMove(x, y float64) {
	a.ui.Input().MoveMouse(float32(x), float32(y))
}

// PointerUp feeds the widget layer.
func (a *App) PointerUp(x, y float64) {
	a.ui.Input().ReleaseLeft(float32(x), float32(y))
}

func (a *App) resize() {
	w, h := a.window.GetSize()
	a.ui.Resize(w, h)
	a.sel.Resize(w, h)
}

func (a *App) render() error {
	dw, dh := a.window.DrawableSize()
	gl.Viewport(0, 0, int32(dw), int32(dh))

	theme := a.sel.Theme()
	bg := ui2d.FromColor(theme.Background)
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	a.ui.SetStyle(styleFor(theme))
	a.ui.Begin()
	a.sel.Paint(glCanvas{r: a.ui.Renderer()})
	a.controls()
	a.ui.End()

	if a.pendingShot {
		a.pendingShot = false
		a.screenshot(dw, dh)
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("OpenGL error 0x%x", code)
	}
	return nil
}

// controls draws the widget panel below the readout.
func (a *App) controls() {
	r := a.sel.Layout().Controls()
	if r.Empty() {
		return
	}
	a.ui.BeginPanel("controls", float32(r.X), float32(r.Y), float32(r.W), float32(r.H), "")

	a.ui.Row(22)
	radians := a.sel.Unit() == trig.Radians
	if a.ui.Checkbox("radians", "Radians", radians) != radians {
		_ = a.sel.ToggleUnit()
	}

	a.ui.Row(22)
	light := a.sel.Theme().Name == "light"
	if a.ui.Checkbox("light", "Light theme", light) != light {
		a.sel.ToggleTheme()
	}

	a.ui.Row(28)
	if a.ui.Button("screenshot", 0, "Screenshot") {
		a.pendingShot = true
	}

	a.ui.Row(28)
	if a.ui.Button("export", 0, "Export PNG") {
		a.export()
	}

	a.ui.Separator()
	a.ui.Row(20)
	a.ui.Label("Keys")
	a.ui.Spacer(2)
	a.ui.Row(20)
	a.ui.LabelColored("Shift: free drag", styleFor(a.sel.Theme()).TextDim)
	a.ui.Row(20)
	a.ui.LabelColored("Tab: type an angle", styleFor(a.sel.Theme()).TextDim)

	a.ui.EndPanel()
}

// screenshot reads back the frame just drawn.
func (a *App) screenshot(width, height int) {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	path, err := a.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func (a *App) export() {
	img, err := a.sel.Export()
	if err != nil {
		a.log.Error("export failed", zap.Error(err))
		return
	}
	path, err := a.exports.CaptureFromImage(img)
	if err != nil {
		a.log.Error("export failed", zap.Error(err))
		return
	}
	a.log.Info("export saved", zap.String("path", path))
}

func (a *App) updateTitle(angle float64, visible, _ bool) {
	if !visible {
		a.window.SetTitle(title)
		return
	}
	a.window.SetTitle(title + " - " + trig.FormatAngle(angle, a.sel.Unit()))
}
