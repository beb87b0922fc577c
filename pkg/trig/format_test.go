package trig

import "testing"

func TestFormatAngleDegrees(t *testing.T) {
	tests := map[float64]string{
		44.6:  "45°",
		0:     "0°",
		90.2:  "90°",
		359.7: "0°",
		123.4: "123°",
	}
	for in, want := range tests {
		if got := FormatAngle(in, Degrees); got != want {
			t.Errorf("FormatAngle(%v, Degrees) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatAngleRadians(t *testing.T) {
	tests := map[float64]string{
		0:     "0",
		90:    "π/2",
		180.3: "π",
		315:   "7π/4",
		37:    "0.646",
		100:   "1.745",
	}
	for in, want := range tests {
		if got := FormatAngle(in, Radians); got != want {
			t.Errorf("FormatAngle(%v, Radians) = %q, want %q", in, got, want)
		}
	}
}

func TestCoordinatesForReferenceAngles(t *testing.T) {
	for _, p := range Points() {
		c := CoordinatesFor(float64(p.Angle))
		if !c.Exact {
			t.Errorf("CoordinatesFor(%d) not exact", p.Angle)
		}
		if c.X != p.X || c.Y != p.Y || c.Tan != p.Tan {
			t.Errorf("CoordinatesFor(%d) = %+v, want (%s, %s, %s)", p.Angle, c, p.X, p.Y, p.Tan)
		}
	}
}

func TestCoordinatesForApproximate(t *testing.T) {
	c := CoordinatesFor(37)
	if c.Exact {
		t.Error("CoordinatesFor(37) should be approximate")
	}
	if c.X != "0.799" || c.Y != "0.602" || c.Tan != "0.754" {
		t.Errorf("CoordinatesFor(37) = %+v", c)
	}

	// Fractions of a degree around a reference angle still use the table.
	c = CoordinatesFor(89.7)
	if !c.Exact || c.Tan != Undefined {
		t.Errorf("CoordinatesFor(89.7) = %+v, want exact undefined tangent", c)
	}
}

func TestCoordinatesForNegativeZero(t *testing.T) {
	c := CoordinatesFor(179.2)
	if c.Y != "0.014" {
		t.Errorf("CoordinatesFor(179.2).Y = %q", c.Y)
	}
	c = CoordinatesFor(269.9999)
	if c.Tan != Undefined {
		t.Errorf("CoordinatesFor(269.9999).Tan = %q, want undefined", c.Tan)
	}
	if fixed(-0.0001) != "0.000" {
		t.Errorf("fixed(-0.0001) = %q", fixed(-0.0001))
	}
}

func TestEditorText(t *testing.T) {
	tests := []struct {
		angle float64
		unit  Unit
		want  string
	}{
		{90, Degrees, "90"},
		{44.6, Degrees, "45"},
		{45, Radians, "pi/4"},
		{240, Radians, "4pi/3"},
		{37, Radians, "0.646"},
	}
	for _, tt := range tests {
		if got := EditorText(tt.angle, tt.unit); got != tt.want {
			t.Errorf("EditorText(%v, %v) = %q, want %q", tt.angle, tt.unit, got, tt.want)
		}
	}
}

func TestEditorTextRoundTrip(t *testing.T) {
	for _, a := range Angles() {
		for _, u := range []Unit{Degrees, Radians} {
			text := EditorText(float64(a), u)
			got, err := ParseAngle(text, u)
			if err != nil {
				t.Errorf("ParseAngle(%q, %v): %v", text, u, err)
				continue
			}
			if CircularDistance(got, float64(a)) > 1e-9 {
				t.Errorf("ParseAngle(EditorText(%d, %v)) = %v", a, u, got)
			}
		}
	}
}

func TestUnit(t *testing.T) {
	if Degrees.String() != "degrees" || Radians.String() != "radians" {
		t.Errorf("Unit.String() = %q, %q", Degrees, Radians)
	}
	if Degrees.Toggle() != Radians || Radians.Toggle() != Degrees {
		t.Error("Toggle() did not switch units")
	}
	for in, want := range map[string]Unit{"degrees": Degrees, "RAD": Radians, " radians ": Radians, "deg": Degrees} {
		got, err := ParseUnit(in)
		if err != nil || got != want {
			t.Errorf("ParseUnit(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseUnit("gradians"); err == nil {
		t.Error("ParseUnit(gradians) expected error")
	}
}
