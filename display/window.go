// Package display shows a rolling dice mosaic in a desktop window.
package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/wbrown/img2dice"
)

// DefaultFPS matches the rate the dice roll at on screen.
const DefaultFPS = 60

// Window plays an Animation one frame per tick and keeps the settled
// mosaic on screen until the window is closed or Escape is pressed.
type Window struct {
	Title string
	FPS   int
	Scale float64

	anim   *img2dice.Animation
	screen *ebiten.Image
}

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithTitle sets the window title.
func WithTitle(title string) WindowOption {
	return func(w *Window) {
		w.Title = title
	}
}

// WithFPS sets how many frames are shown per second.
func WithFPS(fps int) WindowOption {
	return func(w *Window) {
		if fps > 0 {
			w.FPS = fps
		}
	}
}

// WithScale sets the window size relative to the mosaic.
func WithScale(scale float64) WindowOption {
	return func(w *Window) {
		if scale > 0 {
			w.Scale = scale
		}
	}
}

// NewWindow creates a Window playing anim.
func NewWindow(anim *img2dice.Animation, opts ...WindowOption) *Window {
	w := &Window{
		Title: "Dicify",
		FPS:   DefaultFPS,
		Scale: 1,
		anim:  anim,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if w.anim.Done() {
		return nil
	}
	frame, _ := w.anim.Next()
	w.screen.WritePixels(frame.Pix)
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.screen, nil)
}

// Layout implements ebiten.Game. The logical screen is the mosaic itself;
// ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.screen.Bounds().Dx(), w.screen.Bounds().Dy()
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	width, height := w.anim.Size()
	w.screen = ebiten.NewImage(width, height)
	ebiten.SetWindowSize(int(float64(width)*w.Scale), int(float64(height)*w.Scale))
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetTPS(w.FPS)
	if err := ebiten.RunGame(w); err != nil {
		return errors.Wrap(err, "display")
	}
	return nil
}
