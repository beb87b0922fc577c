package interaction

import (
	"go.uber.org/zap"

	"github.com/Faultbox/unitcircle/internal/logger"
	"github.com/Faultbox/unitcircle/pkg/math"
	"github.com/Faultbox/unitcircle/pkg/trig"
)

// DragState is the state of the drag gesture.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Cursor is the pointer affordance shown over the circle.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorGrab
	CursorGrabbing
)

// CursorSetter changes the platform pointer cursor.
type CursorSetter interface {
	SetCursor(c Cursor)
}

// Geometry reports where the circle is drawn on the surface. ok is false
// while the surface cannot be measured yet.
type Geometry interface {
	Circle() (cx, cy, radius float64, ok bool)
}

// DragOptions tunes the drag gesture.
type DragOptions struct {
	HitMargin      float64 // pixels beyond the radius that still start a drag
	SnapModifier   Key     // held to disable snapping
	ReleaseOnLeave bool    // end the drag when the pointer leaves the surface
	HideOnCancel   bool    // Escape hides the selector while idle
}

// DefaultDragOptions returns the default drag tuning.
func DefaultDragOptions() DragOptions {
	return DragOptions{
		HitMargin:    30,
		SnapModifier: KeyShift,
	}
}

// DragController turns pointer gestures on the circle into selected angle
// updates.
type DragController struct {
	geom     Geometry
	snapper  *trig.Snapper
	sel      *Selection
	opts     DragOptions
	cursorFn CursorSetter

	state        DragState
	modifierHeld int // left and right keys report the same Key
	cursor       Cursor

	unsubscribe func()
	log         *zap.Logger
}

// NewDragController creates an idle drag controller.
func NewDragController(geom Geometry, snapper *trig.Snapper, sel *Selection, opts DragOptions) *DragController {
	if snapper == nil {
		snapper = trig.NewSnapper(trig.DefaultSnapThreshold)
	}
	return &DragController{
		geom:    geom,
		snapper: snapper,
		sel:     sel,
		opts:    opts,
		log:     logger.Named("drag"),
	}
}

// SetCursorSetter installs the platform cursor hook.
func (d *DragController) SetCursorSetter(cs CursorSetter) {
	d.cursorFn = cs
}

// Attach subscribes the controller to an event source, replacing any
// previous subscription.
func (d *DragController) Attach(src Source) {
	d.Close()
	d.unsubscribe = src.Subscribe(d.HandleEvent)
}

// Close unsubscribes from the event source. Safe to call more than once.
func (d *DragController) Close() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
}

// State returns the gesture state.
func (d *DragController) State() DragState {
	return d.state
}

// SnapSuppressed reports whether the snap modifier is held.
func (d *DragController) SnapSuppressed() bool {
	return d.modifierHeld > 0
}

// Cursor returns the current cursor affordance.
func (d *DragController) Cursor() Cursor {
	return d.cursor
}

// HandleEvent processes one input event.
func (d *DragController) HandleEvent(e Event) bool {
	switch e.Kind {
	case EventPointerDown:
		return d.pointerDown(e.X, e.Y)

	case EventPointerMove:
		if d.state != Dragging {
			d.hover(e.X, e.Y)
			return false
		}
		d.publish(e.X, e.Y)
		return true

	case EventPointerUp:
		if d.state != Dragging {
			return false
		}
		d.release()
		d.hover(e.X, e.Y)
		return true

	case EventPointerLeave:
		if d.state == Dragging && d.opts.ReleaseOnLeave {
			d.release()
		}
		if d.state == Idle {
			d.setCursor(CursorDefault)
		}
		return false

	case EventKeyDown:
		if e.Key == d.opts.SnapModifier {
			d.modifierHeld++
			return false
		}
		if e.Key == KeyEscape && d.opts.HideOnCancel && d.state == Idle && d.sel.Visible() {
			d.sel.Hide()
			return true
		}

	case EventKeyUp:
		if e.Key == d.opts.SnapModifier {
			if d.modifierHeld > 0 {
				d.modifierHeld--
			}
		}
	}
	return false
}

func (d *DragController) pointerDown(x, y float64) bool {
	if !d.inHitArea(x, y) {
		return false
	}
	d.state = Dragging
	d.setCursor(CursorGrabbing)
	angle := d.publish(x, y)
	d.log.Debug("drag started", zap.Float64("angle", angle), zap.Bool("snap_suppressed", d.SnapSuppressed()))
	return true
}

func (d *DragController) release() {
	d.state = Idle
	d.log.Debug("drag ended", zap.Float64("angle", d.sel.Angle()))
}

// publish snaps the angle under the pointer and stores it as visible.
func (d *DragController) publish(x, y float64) float64 {
	cx, cy, _, ok := d.circle()
	if !ok {
		return d.sel.Angle()
	}
	angle := d.snapper.Snap(trig.PointerToAngle(x, y, cx, cy), d.SnapSuppressed())
	d.sel.Set(angle, true, OriginDrag)
	return angle
}

func (d *DragController) hover(x, y float64) {
	if d.inHitArea(x, y) {
		d.setCursor(CursorGrab)
	} else {
		d.setCursor(CursorDefault)
	}
}

// inHitArea reports whether a point is within radius+margin of the centre.
// An unmeasurable surface counts as infinitely far away.
func (d *DragController) inHitArea(x, y float64) bool {
	cx, cy, r, ok := d.circle()
	if !ok {
		return false
	}
	return math.V2(x, y).Distance(math.V2(cx, cy)) <= r+d.opts.HitMargin
}

func (d *DragController) circle() (cx, cy, r float64, ok bool) {
	if d.geom == nil {
		return 0, 0, 0, false
	}
	cx, cy, r, ok = d.geom.Circle()
	if !ok || r <= 0 {
		return 0, 0, 0, false
	}
	return cx, cy, r, true
}

func (d *DragController) setCursor(c Cursor) {
	if c == d.cursor {
		return
	}
	d.cursor = c
	if d.cursorFn != nil {
		d.cursorFn.SetCursor(c)
	}
}
