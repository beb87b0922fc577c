package interaction

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Faultbox/unitcircle/internal/logger"
	"github.com/Faultbox/unitcircle/pkg/trig"
)

// EditorState is the state of the angle text editor.
type EditorState int

const (
	Display EditorState = iota
	Editing
)

func (s EditorState) String() string {
	if s == Editing {
		return "editing"
	}
	return "display"
}

// AngleEditor is the text input alternative to dragging. While editing, the
// typed text is never overwritten by angle changes from elsewhere.
type AngleEditor struct {
	sel   *Selection
	unit  trig.Unit
	state EditorState

	text          string
	lastCommitted string
	err           error

	unsubSelection func()
	unsubEvents    func()
	log            *zap.Logger
}

// NewAngleEditor creates an editor showing the current selection and
// following its changes until Close.
func NewAngleEditor(sel *Selection, unit trig.Unit) *AngleEditor {
	e := &AngleEditor{
		sel:  sel,
		unit: unit,
		log:  logger.Named("editor"),
	}
	e.text = trig.EditorText(sel.Angle(), unit)
	e.lastCommitted = e.text
	e.unsubSelection = sel.Subscribe(e.OnAngleChange)
	return e
}

// Attach routes keyboard and text events from src to the editor.
func (e *AngleEditor) Attach(src Source) {
	if e.unsubEvents != nil {
		e.unsubEvents()
	}
	e.unsubEvents = src.Subscribe(e.HandleEvent)
}

// Close removes the editor's event and selection subscriptions.
func (e *AngleEditor) Close() {
	if e.unsubEvents != nil {
		e.unsubEvents()
		e.unsubEvents = nil
	}
	if e.unsubSelection != nil {
		e.unsubSelection()
		e.unsubSelection = nil
	}
}

// State returns the editor state.
func (e *AngleEditor) State() EditorState {
	return e.state
}

// Editing reports whether the editor has focus.
func (e *AngleEditor) Editing() bool {
	return e.state == Editing
}

// Text returns the shown text.
func (e *AngleEditor) Text() string {
	return e.text
}

// Unit returns the unit used to interpret the text.
func (e *AngleEditor) Unit() trig.Unit {
	return e.unit
}

// Begin gives the editor focus. It returns false if it was already editing.
func (e *AngleEditor) Begin() bool {
	if e.state == Editing {
		return false
	}
	e.state = Editing
	e.err = nil
	return true
}

// SetText replaces the text being edited.
func (e *AngleEditor) SetText(s string) {
	if e.state == Editing {
		e.text = s
	}
}

// Insert appends typed text.
func (e *AngleEditor) Insert(s string) {
	if e.state == Editing {
		e.text += s
	}
}

// Backspace deletes the last character.
func (e *AngleEditor) Backspace() {
	if e.state != Editing || e.text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(e.text)
	e.text = e.text[:len(e.text)-size]
}

// Err returns the error of the last commit, cleared when editing begins
// again.
func (e *AngleEditor) Err() error {
	return e.err
}

// Commit leaves editing and publishes the parsed angle. Text that does not
// parse stays as typed and the selection is left alone; the error is only
// informational.
func (e *AngleEditor) Commit() error {
	if e.state != Editing {
		return nil
	}
	e.state = Display

	angle, err := trig.ParseAngle(e.text, e.unit)
	if err != nil {
		e.log.Debug("angle text not parsed", zap.String("text", e.text), zap.Error(err))
		e.err = fmt.Errorf("parse angle %q: %w", e.text, err)
		return e.err
	}

	e.lastCommitted = e.text
	e.sel.Set(angle, true, OriginEditor)
	e.log.Debug("angle committed", zap.String("text", e.text), zap.Float64("angle", angle))
	return nil
}

// Cancel drops the typed text and leaves editing without publishing.
func (e *AngleEditor) Cancel() {
	if e.state != Editing {
		return
	}
	e.text = e.lastCommitted
	e.state = Display
	e.err = nil
}

// SetUnit changes how text is interpreted and, when not editing, re-renders
// the current angle in the new unit.
func (e *AngleEditor) SetUnit(u trig.Unit) {
	e.unit = u
	if e.state == Display {
		e.text = trig.EditorText(e.sel.Angle(), u)
		e.lastCommitted = e.text
	}
}

// OnAngleChange resyncs the shown text with angle changes made elsewhere.
func (e *AngleEditor) OnAngleChange(c Change) {
	if e.state == Editing || c.Origin == OriginEditor {
		return
	}
	e.text = trig.EditorText(c.Angle, e.unit)
	e.lastCommitted = e.text
	e.err = nil
}

// HandleEvent consumes keyboard input while editing. Modifier keys pass
// through so snap suppression keeps working.
func (e *AngleEditor) HandleEvent(ev Event) bool {
	if e.state != Editing {
		return false
	}
	switch ev.Kind {
	case EventTextInput:
		e.Insert(ev.Text)
		return true
	case EventKeyDown:
		switch ev.Key {
		case KeyEnter, KeyTab:
			_ = e.Commit()
		case KeyEscape:
			e.Cancel()
		case KeyBackspace:
			e.Backspace()
		case KeyShift, KeyAlt, KeyCtrl:
			return false
		}
		return true
	}
	return false
}
