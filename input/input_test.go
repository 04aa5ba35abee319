package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/litsolid/scene"
)

func TestLightMovement(t *testing.T) {
	tests := []struct {
		key  Key
		want mgl32.Vec4
	}{
		{KeyW, mgl32.Vec4{0, 2.5, 2, 1}},
		{KeyS, mgl32.Vec4{0, 1.5, 2, 1}},
		{KeyA, mgl32.Vec4{-0.5, 2, 2, 1}},
		{KeyD, mgl32.Vec4{0.5, 2, 2, 1}},
		{KeyQ, mgl32.Vec4{0, 2, 2.5, 1}},
		{KeyE, mgl32.Vec4{0, 2, 1.5, 1}},
	}
	for _, tt := range tests {
		s := scene.NewState()
		act := Handle(s, tt.key)
		if s.LightPosition != tt.want {
			t.Errorf("key %d: light %v, want %v", tt.key, s.LightPosition, tt.want)
		}
		if act != (Action{Redraw: true}) {
			t.Errorf("key %d: action %+v, want redraw", tt.key, act)
		}
	}
}

func TestShapeSelection(t *testing.T) {
	s := scene.NewState()
	Handle(s, KeyP)
	if s.CurrentShape != scene.ShapePyramid {
		t.Fatalf("after P: %v", s.CurrentShape)
	}
	Handle(s, KeyO)
	if s.CurrentShape != scene.ShapeSphere {
		t.Fatalf("after O: %v", s.CurrentShape)
	}
	Handle(s, KeyP)
	if s.CurrentShape != scene.ShapePyramid {
		t.Fatalf("after P, O, P: %v, want pyramid", s.CurrentShape)
	}
}

func TestOtherKeysKeepShape(t *testing.T) {
	keys := []Key{KeyW, KeyS, KeyA, KeyD, KeyQ, KeyE, KeySpace, KeyUp, KeyDown, KeyEsc, Key(90), Key(0)}
	for _, start := range []scene.Shape{scene.ShapePyramid, scene.ShapeSphere} {
		s := scene.NewState()
		s.CurrentShape = start
		for _, k := range keys {
			Handle(s, k)
			if s.CurrentShape != start {
				t.Fatalf("key %d changed shape from %v to %v", k, start, s.CurrentShape)
			}
		}
	}
}

func TestSpaceTogglesLight(t *testing.T) {
	s := scene.NewState()
	orig := s.LightEnabled
	Handle(s, KeySpace)
	if s.LightEnabled == orig {
		t.Fatal("space did not toggle the light")
	}
	Handle(s, KeySpace)
	if s.LightEnabled != orig {
		t.Fatal("two presses of space did not restore the light flag")
	}
}

func TestRotationIsAdditive(t *testing.T) {
	s := scene.NewState()
	s.RotationAngle = 12.5
	const n = 100
	for i := 0; i < n; i++ {
		Handle(s, KeyUp)
	}
	if want := float32(12.5 + n*5); s.RotationAngle != want {
		t.Fatalf("after %d ups: %f, want %f (no wraparound)", n, s.RotationAngle, want)
	}
	for i := 0; i < n; i++ {
		Handle(s, KeyDown)
	}
	if s.RotationAngle != 12.5 {
		t.Fatalf("after %d ups and downs: %f, want 12.5", n, s.RotationAngle)
	}
}

func TestEscapeRequestsClose(t *testing.T) {
	s := scene.NewState()
	before := *s
	act := Handle(s, KeyEsc)
	if !act.Close || act.Redraw {
		t.Fatalf("action %+v, want close only", act)
	}
	if *s != before {
		t.Fatal("escape modified the scene")
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	s := scene.NewState()
	before := *s
	for _, k := range []Key{Key(66), Key(90), Key(340), Key(-1)} {
		if act := Handle(s, k); act != (Action{}) {
			t.Errorf("key %d: action %+v, want none", k, act)
		}
	}
	if *s != before {
		t.Fatal("unbound keys modified the scene")
	}
}

func TestWWThenO(t *testing.T) {
	s := scene.NewState()
	Handle(s, KeyW)
	Handle(s, KeyW)
	if act := Handle(s, KeyO); !act.Redraw {
		t.Error("O should still request a redraw")
	}
	if s.LightPosition != (mgl32.Vec4{0, 3, 2, 1}) {
		t.Fatalf("light %v, want (0,3,2,1)", s.LightPosition)
	}
	if s.CurrentShape != scene.ShapeSphere {
		t.Fatalf("shape %v, want sphere", s.CurrentShape)
	}
}
