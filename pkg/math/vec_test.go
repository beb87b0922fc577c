package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2Distance(t *testing.T) {
	got := V2(1, 1).Distance(V2(4, 5))
	if got != 5 {
		t.Errorf("Vec2.Distance() = %v, want 5", got)
	}
}

func TestVec2Polar(t *testing.T) {
	c := V2(100, 100)
	tests := []struct {
		deg  float64
		want Vec2
	}{
		{0, V2(150, 100)},
		{90, V2(100, 50)},
		{180, V2(50, 100)},
		{270, V2(100, 150)},
	}
	for _, tt := range tests {
		got := c.Polar(tt.deg, 50)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("Polar(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}
