package view

import "github.com/Faultbox/unitcircle/pkg/trig"

// EditorView is what the readout shows for the angle text field.
type EditorView struct {
	Text    string
	Editing bool
	Invalid bool // last commit did not parse
}

// Scene is everything the painter needs for one frame.
type Scene struct {
	Angle   float64 // degrees
	Visible bool    // selector shown
	Unit    trig.Unit
	Points  []trig.ReferencePoint // nil draws the full reference table
	Editor  EditorView
}
