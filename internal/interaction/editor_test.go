package interaction

import (
	"errors"
	"testing"

	"github.com/Faultbox/unitcircle/pkg/trig"
)

func TestEditorCommit(t *testing.T) {
	tests := []struct {
		name string
		unit trig.Unit
		text string
		want float64
	}{
		{name: "radians pi/2", unit: trig.Radians, text: "pi/2", want: 90},
		{name: "degrees wraps", unit: trig.Degrees, text: "450", want: 90},
		{name: "degrees negative", unit: trig.Degrees, text: "-90", want: 270},
		{name: "radians symbol", unit: trig.Radians, text: "π", want: 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelection(0)
			var got []Change
			sel.Subscribe(func(c Change) { got = append(got, c) })

			e := NewAngleEditor(sel, tt.unit)
			e.Begin()
			e.SetText(tt.text)
			if err := e.Commit(); err != nil {
				t.Fatalf("Commit() error = %v", err)
			}
			if e.State() != Display {
				t.Errorf("State() = %v after commit", e.State())
			}
			if sel.Angle() != tt.want || !sel.Visible() {
				t.Errorf("selection = %v visible %v, want %v", sel.Angle(), sel.Visible(), tt.want)
			}
			if len(got) != 1 || got[0].Origin != OriginEditor || got[0].FromDrag() {
				t.Errorf("changes = %+v", got)
			}
			if e.Text() != tt.text {
				t.Errorf("Text() = %q, want typed text kept", e.Text())
			}
		})
	}
}

func TestEditorIgnoresDragWhileEditing(t *testing.T) {
	sel := NewSelection(0)
	e := NewAngleEditor(sel, trig.Degrees)

	e.Begin()
	e.SetText("12")
	sel.Set(60, true, OriginDrag)
	if e.Text() != "12" {
		t.Errorf("Text() = %q, drag overwrote the typed text", e.Text())
	}

	if err := e.Commit(); err != nil {
		t.Fatal(err)
	}
	sel.Set(135, true, OriginDrag)
	if e.Text() != "135" {
		t.Errorf("Text() = %q, want 135 after blur", e.Text())
	}
}

func TestEditorFollowsExternalChanges(t *testing.T) {
	sel := NewSelection(0)
	e := NewAngleEditor(sel, trig.Radians)
	if e.Text() != "0" {
		t.Errorf("initial Text() = %q", e.Text())
	}

	sel.Set(120, true, OriginExternal)
	if e.Text() != "2pi/3" {
		t.Errorf("Text() = %q, want 2pi/3", e.Text())
	}

	e.SetUnit(trig.Degrees)
	if e.Text() != "120" {
		t.Errorf("Text() = %q after unit switch", e.Text())
	}
}

func TestEditorCancelAfterFailedCommit(t *testing.T) {
	sel := NewSelection(90)
	e := NewAngleEditor(sel, trig.Degrees)

	e.Begin()
	e.SetText("abc")
	if err := e.Commit(); err == nil {
		t.Fatal("Commit() accepted abc")
	}

	e.Begin()
	e.SetText("12")
	e.Cancel()

	if e.Text() != "90" {
		t.Errorf("Text() = %q after Cancel, want last committed 90", e.Text())
	}
	if sel.Angle() != 90 {
		t.Errorf("Angle() = %v, want 90", sel.Angle())
	}
}

func TestEditorCancel(t *testing.T) {
	sel := NewSelection(30)
	e := NewAngleEditor(sel, trig.Degrees)
	count := 0
	sel.Subscribe(func(Change) { count++ })

	e.Begin()
	e.SetText("200")
	e.Cancel()

	if e.State() != Display {
		t.Errorf("State() = %v", e.State())
	}
	if e.Text() != "30" {
		t.Errorf("Text() = %q, want 30", e.Text())
	}
	if count != 0 || sel.Angle() != 30 {
		t.Error("Cancel published an angle")
	}
}

func TestEditorParseFailure(t *testing.T) {
	sel := NewSelection(45)
	e := NewAngleEditor(sel, trig.Degrees)

	e.Begin()
	e.SetText("abc")
	err := e.Commit()
	if err == nil {
		t.Fatal("Commit() accepted abc")
	}
	if e.State() != Display {
		t.Errorf("State() = %v after failed commit", e.State())
	}
	if e.Text() != "abc" {
		t.Errorf("Text() = %q, want literal text kept", e.Text())
	}
	if e.Err() == nil {
		t.Error("Err() = nil after failed commit")
	}
	if sel.Angle() != 45 || sel.Visible() {
		t.Error("failed commit changed the selection")
	}

	e.Begin()
	if e.Err() != nil {
		t.Errorf("Err() = %v after Begin", e.Err())
	}
	e.SetText("")
	if err := e.Commit(); !errors.Is(err, trig.ErrEmptyExpression) {
		t.Errorf("Commit(\"\") error = %v, want ErrEmptyExpression", err)
	}
}

func TestEditorIgnoresInputInDisplay(t *testing.T) {
	sel := NewSelection(0)
	e := NewAngleEditor(sel, trig.Degrees)

	e.SetText("99")
	e.Insert("1")
	e.Backspace()
	if e.Text() != "0" {
		t.Errorf("Text() = %q, edited while not focused", e.Text())
	}
	if err := e.Commit(); err != nil {
		t.Errorf("Commit() in display = %v", err)
	}
	if e.HandleEvent(Event{Kind: EventTextInput, Text: "5"}) {
		t.Error("text input consumed in display state")
	}
	if !e.Begin() || e.Begin() {
		t.Error("Begin() should succeed once")
	}
}

func TestEditorKeyboard(t *testing.T) {
	bus := NewBus()
	sel := NewSelection(0)
	e := NewAngleEditor(sel, trig.Radians)
	e.Attach(bus)
	defer e.Close()

	e.Begin()
	e.SetText("")
	for _, s := range []string{"π", "/", "4", "x"} {
		bus.Publish(Event{Kind: EventTextInput, Text: s})
	}
	bus.Publish(Event{Kind: EventKeyDown, Key: KeyBackspace})
	if e.Text() != "π/4" {
		t.Fatalf("Text() = %q", e.Text())
	}
	if bus.Publish(Event{Kind: EventKeyDown, Key: KeyShift}) {
		t.Error("modifier consumed by the editor")
	}
	if !bus.Publish(Event{Kind: EventKeyDown, Key: KeyOther, Name: "m"}) {
		t.Error("letter key leaked past the editor")
	}

	bus.Publish(Event{Kind: EventKeyDown, Key: KeyEnter})
	if e.Editing() {
		t.Error("Enter did not commit")
	}
	if sel.Angle() != 45 {
		t.Errorf("angle = %v, want 45", sel.Angle())
	}

	e.Begin()
	bus.Publish(Event{Kind: EventTextInput, Text: "0"})
	bus.Publish(Event{Kind: EventKeyDown, Key: KeyEscape})
	if e.Text() != "π/4" || sel.Angle() != 45 {
		t.Errorf("Escape: text %q angle %v", e.Text(), sel.Angle())
	}
}

func TestEditorBackspaceRune(t *testing.T) {
	e := NewAngleEditor(NewSelection(0), trig.Radians)
	e.Begin()
	e.SetText("2π")
	e.Backspace()
	if e.Text() != "2" {
		t.Errorf("Text() = %q", e.Text())
	}
}

func TestEditorClose(t *testing.T) {
	bus := NewBus()
	sel := NewSelection(0)
	e := NewAngleEditor(sel, trig.Degrees)
	e.Attach(bus)
	e.Close()
	e.Close()

	if bus.Len() != 0 {
		t.Errorf("Len() = %d after Close", bus.Len())
	}
	sel.Set(90, true, OriginExternal)
	if e.Text() != "0" {
		t.Errorf("closed editor still followed the selection: %q", e.Text())
	}
}
