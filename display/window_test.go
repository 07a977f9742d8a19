package display

import (
	"image"
	"testing"

	"github.com/wbrown/img2dice"
)

func TestNewWindowOptions(t *testing.T) {
	m := img2dice.NewMosaic(20, 10, []*img2dice.Die{
		img2dice.NewDie(3, img2dice.Rotation0, image.Pt(0, 0), 0),
		img2dice.NewDie(4, img2dice.Rotation0, image.Pt(10, 0), 0),
	}, nil)
	anim := img2dice.NewAnimation(m, nil)

	w := NewWindow(anim)
	if w.FPS != DefaultFPS || w.Scale != 1 || w.Title != "Dicify" {
		t.Errorf("Unexpected defaults: fps=%d scale=%g title=%q", w.FPS, w.Scale, w.Title)
	}

	w = NewWindow(anim, WithFPS(24), WithScale(2.5), WithTitle("cat"))
	if w.FPS != 24 || w.Scale != 2.5 || w.Title != "cat" {
		t.Errorf("Options not applied: fps=%d scale=%g title=%q", w.FPS, w.Scale, w.Title)
	}

	// Non-positive values keep the defaults.
	w = NewWindow(anim, WithFPS(0), WithScale(-1))
	if w.FPS != DefaultFPS || w.Scale != 1 {
		t.Errorf("Expected defaults kept, got fps=%d scale=%g", w.FPS, w.Scale)
	}
}

func TestWindowLayoutFollowsMosaic(t *testing.T) {
	m := img2dice.NewMosaic(30, 20, nil, nil)
	w := NewWindow(img2dice.NewAnimation(m, nil))
	if width, height := w.anim.Size(); width != 30 || height != 20 {
		t.Errorf("Expected 30x20, got %dx%d", width, height)
	}
}
