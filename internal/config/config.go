// Package config handles application configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/unitcircle/internal/logger"
	"github.com/Faultbox/unitcircle/pkg/trig"
)

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid config")

// Config holds all application settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Circle  CircleConfig  `yaml:"circle"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display and rendering settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	Margin     int  `yaml:"margin"`      // space kept around the circle for labels
	PanelWidth int    `yaml:"panel_width"` // side panel with the readout and unit toggle
	Theme      string `yaml:"theme"`       // dark or light
}

// CircleConfig holds the angle selector tuning.
type CircleConfig struct {
	InitialAngle   float64 `yaml:"initial_angle"`  // degrees
	SnapThreshold  float64 `yaml:"snap_threshold"` // degrees, 0 disables snapping
	SnapModifier   string  `yaml:"snap_modifier"`  // shift, alt or ctrl
	HitMargin      float64 `yaml:"hit_margin"`     // pixels beyond the radius
	HideOnCancel   bool    `yaml:"hide_on_cancel"`
	ReleaseOnLeave bool    `yaml:"release_on_leave"`
}

// ExportConfig holds offscreen rendering and screenshot settings.
type ExportConfig struct {
	Size          int    `yaml:"size"` // PNG edge length in pixels
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1024,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			Margin:     90,
			PanelWidth: 300,
			Theme:      "dark",
		},
		Circle: CircleConfig{
			InitialAngle:  0,
			SnapThreshold: trig.DefaultSnapThreshold,
			SnapModifier:  "shift",
			HitMargin:     30,
		},
		Export: ExportConfig{
			Size:          800,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.Margin < 0 || c.Window.PanelWidth < 0:
		return fmt.Errorf("%w: negative window margin or panel width", ErrInvalid)
	case c.Window.PanelWidth+2*c.Window.Margin >= c.Window.Width:
		return fmt.Errorf("%w: panel width %d leaves no room for the circle", ErrInvalid, c.Window.PanelWidth)
	case c.Window.Theme != "dark" && c.Window.Theme != "light":
		return fmt.Errorf("%w: theme %q", ErrInvalid, c.Window.Theme)
	case c.Circle.SnapThreshold < 0 || c.Circle.SnapThreshold >= 45:
		return fmt.Errorf("%w: snap threshold %g outside [0, 45)", ErrInvalid, c.Circle.SnapThreshold)
	case c.Circle.HitMargin < 0:
		return fmt.Errorf("%w: hit margin %g", ErrInvalid, c.Circle.HitMargin)
	case !validModifier(c.Circle.SnapModifier):
		return fmt.Errorf("%w: snap modifier %q", ErrInvalid, c.Circle.SnapModifier)
	case c.Export.Size <= 0:
		return fmt.Errorf("%w: export size %d", ErrInvalid, c.Export.Size)
	case !logger.ValidLevel(c.Logging.Level):
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

func validModifier(name string) bool {
	switch name {
	case "shift", "alt", "option", "ctrl", "control":
		return true
	}
	return false
}
