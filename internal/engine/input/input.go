// Package input translates SDL2 events into interaction events.
package input

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/unitcircle/internal/interaction"
	"github.com/Faultbox/unitcircle/internal/logger"
)

// Publisher receives translated events.
type Publisher interface {
	Publish(e interaction.Event) bool
}

// Frame summarizes the window events of one Poll.
type Frame struct {
	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// Input polls SDL events and publishes them.
type Input struct {
	pub Publisher
	log *zap.Logger
}

// New creates a new input handler.
func New(pub Publisher) *Input {
	return &Input{
		pub: pub,
		log: logger.Named("input"),
	}
}

// Poll drains the SDL event queue, publishing pointer, keyboard and text
// events in arrival order.
func (i *Input) Poll() Frame {
	var f Frame
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			f.Quit = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				f.Resized = true
				f.Width = int(e.Data1)
				f.Height = int(e.Data2)
			case sdl.WINDOWEVENT_LEAVE:
				i.pub.Publish(interaction.Event{Kind: interaction.EventPointerLeave})
			case sdl.WINDOWEVENT_CLOSE:
				f.Quit = true
			}

		case *sdl.MouseMotionEvent:
			i.pub.Publish(interaction.Event{
				Kind: interaction.EventPointerMove,
				X:    float64(e.X),
				Y:    float64(e.Y),
			})

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			kind := interaction.EventPointerUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				kind = interaction.EventPointerDown
			}
			i.pub.Publish(interaction.Event{Kind: kind, X: float64(e.X), Y: float64(e.Y)})

		case *sdl.KeyboardEvent:
			key, name := translateKey(e.Keysym.Sym)
			// Key repeat only matters for editing keys.
			if e.Repeat != 0 && key != interaction.KeyBackspace {
				continue
			}
			kind := interaction.EventKeyUp
			if e.Type == sdl.KEYDOWN {
				kind = interaction.EventKeyDown
			}
			i.pub.Publish(interaction.Event{Kind: kind, Key: key, Name: name})

		case *sdl.TextInputEvent:
			i.pub.Publish(interaction.Event{Kind: interaction.EventTextInput, Text: e.GetText()})
		}
	}

	if f.Quit {
		i.log.Debug("quit requested")
	}
	return f
}

func translateKey(sym sdl.Keycode) (interaction.Key, string) {
	switch sym {
	case sdl.K_LSHIFT, sdl.K_RSHIFT:
		return interaction.KeyShift, ""
	case sdl.K_LALT, sdl.K_RALT:
		return interaction.KeyAlt, ""
	case sdl.K_LCTRL, sdl.K_RCTRL:
		return interaction.KeyCtrl, ""
	case sdl.K_ESCAPE:
		return interaction.KeyEscape, ""
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		return interaction.KeyEnter, ""
	case sdl.K_BACKSPACE:
		return interaction.KeyBackspace, ""
	case sdl.K_TAB:
		return interaction.KeyTab, ""
	case sdl.K_F12:
		return interaction.KeyF12, ""
	}
	return interaction.KeyOther, strings.ToLower(sdl.GetKeyName(sym))
}
