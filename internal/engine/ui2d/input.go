package ui2d

// InputState holds the mouse state the widgets react to. It is fed from
// platform events between frames.
type InputState struct {
	MouseX float32
	MouseY float32

	MouseLeftDown bool

	// Edges seen this frame
	MouseLeftPressed  bool
	MouseLeftReleased bool

	// Latched by events so a press and release inside one frame both count
	pressLatched   bool
	releaseLatched bool
	prevMouseLeft  bool
}

// MoveMouse records the pointer position.
func (i *InputState) MoveMouse(x, y float32) {
	i.MouseX = x
	i.MouseY = y
}

// PressLeft records a left button press.
func (i *InputState) PressLeft(x, y float32) {
	i.MoveMouse(x, y)
	i.MouseLeftDown = true
	i.pressLatched = true
}

// ReleaseLeft records a left button release.
func (i *InputState) ReleaseLeft(x, y float32) {
	i.MoveMouse(x, y)
	i.MouseLeftDown = false
	i.releaseLatched = true
}

// Update prepares input state for a new frame.
// Call this at the start of each frame after feeding events.
func (i *InputState) Update() {
	i.MouseLeftPressed = i.pressLatched || (i.MouseLeftDown && !i.prevMouseLeft)
	i.MouseLeftReleased = i.releaseLatched || (!i.MouseLeftDown && i.prevMouseLeft)
	i.prevMouseLeft = i.MouseLeftDown
}

// EndFrame clears per-frame input state.
func (i *InputState) EndFrame() {
	i.pressLatched = false
	i.releaseLatched = false
	i.MouseLeftPressed = false
	i.MouseLeftReleased = false
}
