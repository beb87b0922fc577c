// Package selector wires the angle selection model into one unit: event bus,
// selection, drag controller, text editor, unit preference and layout. It
// has no window or GL dependencies, so the application shell and the tests
// drive it the same way.
package selector

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/unitcircle/internal/config"
	"github.com/Faultbox/unitcircle/internal/interaction"
	"github.com/Faultbox/unitcircle/internal/logger"
	"github.com/Faultbox/unitcircle/internal/view"
	"github.com/Faultbox/unitcircle/pkg/trig"
)

// UnitStore persists the unit mode preference.
type UnitStore interface {
	Load() trig.Unit
	Save(u trig.Unit) error
}

// PointerSink receives pointer events before the drag controller sees them.
// PointerDown returns true when the point belongs to a widget.
type PointerSink interface {
	PointerDown(x, y float64) bool
	PointerMove(x, y float64)
	PointerUp(x, y float64)
}

// AngleFunc is notified of every selection change.
type AngleFunc func(angle float64, visible, fromDrag bool)

// Selector is the interactive unit circle without a window.
type Selector struct {
	bus     *interaction.Bus
	sel     *interaction.Selection
	drag    *interaction.DragController
	editor  *interaction.AngleEditor
	store   UnitStore
	sink    PointerSink
	painter *view.Painter

	layout     view.Layout
	margin     float64
	panelWidth float64
	unit       trig.Unit
	exportSize int

	onScreenshot func()
	unsubs       []func()
	log          *zap.Logger
}

// New builds a selector from the configuration. store may be nil, in which
// case the unit mode starts in degrees and is not persisted.
func New(cfg *config.Config, store UnitStore) (*Selector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mod, ok := interaction.ParseModifier(cfg.Circle.SnapModifier)
	if !ok {
		return nil, fmt.Errorf("%w: snap modifier %q", config.ErrInvalid, cfg.Circle.SnapModifier)
	}
	theme, ok := view.ThemeByName(cfg.Window.Theme)
	if !ok {
		return nil, fmt.Errorf("%w: theme %q", config.ErrInvalid, cfg.Window.Theme)
	}

	s := &Selector{
		bus:        interaction.NewBus(),
		sel:        interaction.NewSelection(cfg.Circle.InitialAngle),
		store:      store,
		painter:    view.NewPainter(theme),
		margin:     float64(cfg.Window.Margin),
		panelWidth: float64(cfg.Window.PanelWidth),
		unit:       trig.Degrees,
		exportSize: cfg.Export.Size,
		log:        logger.Named("selector"),
	}
	if store != nil {
		s.unit = store.Load()
	}

	s.drag = interaction.NewDragController(s, trig.NewSnapper(cfg.Circle.SnapThreshold), s.sel, interaction.DragOptions{
		HitMargin:      cfg.Circle.HitMargin,
		SnapModifier:   mod,
		ReleaseOnLeave: cfg.Circle.ReleaseOnLeave,
		HideOnCancel:   cfg.Circle.HideOnCancel,
	})
	s.editor = interaction.NewAngleEditor(s.sel, s.unit)

	// The editor sees keys first so typing never reaches the shortcuts, and
	// the drag controller last so widgets can claim clicks.
	s.editor.Attach(s.bus)
	s.unsubs = append(s.unsubs, s.bus.Subscribe(s.handleEvent))
	s.drag.Attach(s.bus)
	s.unsubs = append(s.unsubs, s.sel.Subscribe(s.logChange))

	s.resize(cfg.Window.Width, cfg.Window.Height)

	s.log.Info("selector ready",
		zap.Float64("initial_angle", s.sel.Angle()),
		zap.Stringer("unit", s.unit),
		zap.String("theme", theme.Name),
		zap.Float64("snap_threshold", cfg.Circle.SnapThreshold),
	)
	return s, nil
}

// Close detaches every controller from the bus and the selection.
func (s *Selector) Close() {
	s.drag.Close()
	s.editor.Close()
	for _, u := range s.unsubs {
		u()
	}
	s.unsubs = nil
}

// Publish delivers an input event.
func (s *Selector) Publish(e interaction.Event) bool {
	return s.bus.Publish(e)
}

// Bus returns the input event bus.
func (s *Selector) Bus() *interaction.Bus {
	return s.bus
}

// SetPointerSink routes pointer events to a widget layer.
func (s *Selector) SetPointerSink(p PointerSink) {
	s.sink = p
}

// SetCursorSetter sets the platform cursor hook for the drag affordance.
func (s *Selector) SetCursorSetter(cs interaction.CursorSetter) {
	s.drag.SetCursorSetter(cs)
}

// OnScreenshot sets the action bound to F12.
func (s *Selector) OnScreenshot(fn func()) {
	s.onScreenshot = fn
}

// OnAngleChange registers fn for selection changes. The returned func
// removes it.
func (s *Selector) OnAngleChange(fn AngleFunc) func() {
	return s.sel.Subscribe(func(c interaction.Change) {
		fn(c.Angle, c.Visible, c.FromDrag())
	})
}

// Resize lays the circle out on a new surface size in window points.
func (s *Selector) Resize(width, height int) {
	s.resize(width, height)
	s.log.Debug("layout changed",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float64("radius", s.layout.Radius),
	)
}

func (s *Selector) resize(width, height int) {
	s.layout = view.NewPanelLayout(width, height, s.margin, s.panelWidth)
}

// Circle reports the circle geometry of the current layout.
func (s *Selector) Circle() (cx, cy, radius float64, ok bool) {
	return s.layout.Circle()
}

// Layout returns the current layout.
func (s *Selector) Layout() view.Layout {
	return s.layout
}

// Selection returns the shared selection.
func (s *Selector) Selection() *interaction.Selection {
	return s.sel
}

// Editor returns the angle text editor.
func (s *Selector) Editor() *interaction.AngleEditor {
	return s.editor
}

// Drag returns the drag controller.
func (s *Selector) Drag() *interaction.DragController {
	return s.drag
}

// SetAngle selects an angle programmatically and shows the selector.
func (s *Selector) SetAngle(deg float64) bool {
	return s.sel.Set(deg, true, interaction.OriginExternal)
}

// Unit returns the unit mode.
func (s *Selector) Unit() trig.Unit {
	return s.unit
}

// SetUnit switches the unit mode and persists it. The mode is applied even
// when saving fails.
func (s *Selector) SetUnit(u trig.Unit) error {
	if u == s.unit {
		return nil
	}
	s.unit = u
	s.editor.SetUnit(u)
	s.log.Info("unit mode changed", zap.Stringer("unit", u))
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(u); err != nil {
		s.log.Warn("unit mode not saved", zap.Error(err))
		return err
	}
	return nil
}

// ToggleUnit switches between degrees and radians.
func (s *Selector) ToggleUnit() error {
	return s.SetUnit(s.unit.Toggle())
}

// Theme returns the palette in use.
func (s *Selector) Theme() view.Theme {
	return s.painter.Theme
}

// ToggleTheme switches between the dark and light palettes.
func (s *Selector) ToggleTheme() {
	s.painter.Theme = s.painter.Theme.Toggle()
	s.log.Debug("theme changed", zap.String("theme", s.painter.Theme.Name))
}

// Scene snapshots the state to draw.
func (s *Selector) Scene() view.Scene {
	return view.Scene{
		Angle:   s.sel.Angle(),
		Visible: s.sel.Visible(),
		Unit:    s.unit,
		Editor: view.EditorView{
			Text:    s.editor.Text(),
			Editing: s.editor.Editing(),
			Invalid: s.editor.Err() != nil,
		},
	}
}

// Paint draws the current scene.
func (s *Selector) Paint(c view.Canvas) {
	s.painter.Paint(c, s.layout, s.Scene())
}

// Export renders the circle alone into a square image of the configured
// export size.
func (s *Selector) Export() (image.Image, error) {
	opts := view.DefaultRenderOptions(s.exportSize)
	opts.Theme = s.painter.Theme
	scene := s.Scene()
	scene.Editor = view.EditorView{}
	img, err := view.Render(opts, scene)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return img, nil
}

func (s *Selector) handleEvent(e interaction.Event) bool {
	switch e.Kind {
	case interaction.EventPointerDown:
		return s.pointerDown(e.X, e.Y)
	case interaction.EventPointerMove:
		if s.sink != nil {
			s.sink.PointerMove(e.X, e.Y)
		}
	case interaction.EventPointerUp:
		if s.sink != nil {
			s.sink.PointerUp(e.X, e.Y)
		}
	case interaction.EventKeyDown:
		return s.shortcut(e)
	}
	return false
}

func (s *Selector) pointerDown(x, y float64) bool {
	captured := false
	if s.sink != nil {
		captured = s.sink.PointerDown(x, y)
	}

	onField := s.layout.EditorField().Contains(x, y) || s.layout.AngleReadout().Contains(x, y)
	if s.editor.Editing() && !onField {
		// Clicking elsewhere commits like losing focus.
		_ = s.editor.Commit()
	}
	if onField {
		s.editor.Begin()
		return true
	}
	return captured
}

func (s *Selector) shortcut(e interaction.Event) bool {
	switch e.Key {
	case interaction.KeyTab:
		return s.editor.Begin()
	case interaction.KeyF12:
		if s.onScreenshot != nil {
			s.onScreenshot()
			return true
		}
		return false
	case interaction.KeyOther:
		switch e.Name {
		case "m":
			_ = s.ToggleUnit()
			return true
		case "t":
			s.ToggleTheme()
			return true
		}
	}
	return false
}

func (s *Selector) logChange(c interaction.Change) {
	s.log.Info("angle changed",
		zap.Float64("angle", c.Angle),
		zap.Bool("visible", c.Visible),
		zap.Bool("from_drag", c.FromDrag()),
	)
}
