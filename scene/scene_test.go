package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s.LightPosition != (mgl32.Vec4{0, 2, 2, 1}) {
		t.Errorf("light position %v, want (0,2,2,1)", s.LightPosition)
	}
	if !s.LightEnabled {
		t.Error("light should start enabled")
	}
	if s.CurrentShape != ShapeSphere {
		t.Errorf("shape %v, want sphere", s.CurrentShape)
	}
	if s.RotationAngle != 0 {
		t.Errorf("rotation %f, want 0", s.RotationAngle)
	}
}

func TestNewStateIsFresh(t *testing.T) {
	a, b := NewState(), NewState()
	a.LightPosition[1] = 10
	if b.LightPosition[1] != 2 {
		t.Fatal("states share storage")
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"pyramid", ShapePyramid, false},
		{"Sphere", ShapeSphere, false},
		{" PYRAMID ", ShapePyramid, false},
		{"cube", ShapeSphere, true},
		{"", ShapeSphere, true},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseShape(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShapeStringRoundTrip(t *testing.T) {
	for _, s := range []Shape{ShapePyramid, ShapeSphere} {
		got, err := ParseShape(s.String())
		if err != nil || got != s {
			t.Errorf("ParseShape(%q) = %v, %v", s.String(), got, err)
		}
	}
	if got := Shape(7).String(); got != "Shape(7)" {
		t.Errorf("unknown shape string %q", got)
	}
}

func TestDefaultLighting(t *testing.T) {
	l := DefaultLighting()
	if l.ClearColor != (mgl32.Vec4{1, 0.85, 0.9, 1}) {
		t.Errorf("clear color %v", l.ClearColor)
	}
	if l.LightDiffuse != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("light diffuse %v, want pure red", l.LightDiffuse)
	}
	if l.MaterialDiffuse != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Errorf("material diffuse %v, want white", l.MaterialDiffuse)
	}
	if !l.ColorMaterial {
		t.Error("color material should be on")
	}
}

func TestReflectance(t *testing.T) {
	l := DefaultLighting()
	l.DrawColor = mgl32.Vec4{0.5, 0.5, 0.5, 1}
	if got := l.Reflectance(); got != l.DrawColor {
		t.Errorf("with color material: %v, want draw color", got)
	}
	l.ColorMaterial = false
	if got := l.Reflectance(); got != l.MaterialDiffuse {
		t.Errorf("without color material: %v, want material diffuse", got)
	}
}
