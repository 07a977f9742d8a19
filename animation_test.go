package img2dice

import (
	"context"
	"image"
	"math/rand"
	"testing"

	"github.com/pkg/errors"

	"github.com/wbrown/img2dice/imageutil"
)

// collectSink keeps a copy of every frame.
type collectSink struct {
	frames []*imageutil.RGBAImage
	fail   int
}

func (s *collectSink) WriteFrame(index int, frame *imageutil.RGBAImage) error {
	if s.fail > 0 && index == s.fail {
		return errors.New("disk full")
	}
	s.frames = append(s.frames, frame.Clone())
	return nil
}

func TestFrameRendererPlacesDice(t *testing.T) {
	t.Parallel()

	fr := NewFrameRenderer()
	dice := []*Die{
		NewDie(1, Rotation0, image.Pt(0, 0), 0),
		NewDie(6, Rotation90, image.Pt(10, 0), 0),
	}
	canvas := fr.RenderMosaic(NewMosaic(20, 10, dice, nil))

	for i, d := range dice {
		block := fr.Block(d.Face(), d.Rotation())
		for y := 0; y < DieSize; y++ {
			for x := 0; x < DieSize; x++ {
				got := canvas.GetRGB(d.Position().X+x, d.Position().Y+y)
				if want := block.GetRGB(x, y); got != want {
					t.Fatalf("Die %d pixel (%d,%d): expected %v, got %v", i, x, y, want, got)
				}
			}
		}
	}

	// The centre dot of face 1.
	if got := canvas.GetRGB(4, 4); got != DotColor {
		t.Errorf("Expected dot at (4,4), got %v", got)
	}
	if got := canvas.GetRGB(10, 5); got != imageutil.Gray(BorderValue) {
		t.Errorf("Expected border at (10,5), got %v", got)
	}
}

func TestFrameRendererClipsOutsideCanvas(t *testing.T) {
	t.Parallel()

	canvas := imageutil.NewRGBAImage(15, 10)
	NewFrameRenderer().Render(canvas, []*Die{NewDie(2, Rotation0, image.Pt(10, 0), 0)})
	if got := canvas.GetRGB(10, 0); got != imageutil.Gray(BorderValue) {
		t.Errorf("Expected border at (10,0), got %v", got)
	}
}

func TestAnimationStaticSingleFrame(t *testing.T) {
	t.Parallel()

	m, err := NewBuilder().Build(imageutil.CreateSolidGray(30, 20, 0))
	if err != nil {
		t.Fatal(err)
	}
	sink := &collectSink{}
	n, err := Run(context.Background(), NewAnimation(m, nil), sink)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || len(sink.frames) != 1 {
		t.Fatalf("Expected 1 frame, got %d", n)
	}
	if w, h := sink.frames[0].Width(), sink.frames[0].Height(); w != 30 || h != 20 {
		t.Errorf("Expected 30x20 frame, got %dx%d", w, h)
	}
}

func TestAnimationFrameCount(t *testing.T) {
	t.Parallel()

	dice := []*Die{
		NewDie(3, Rotation90, image.Pt(0, 0), 5),
		NewDie(2, Rotation0, image.Pt(10, 0), 0),
		NewDie(4, Rotation0, image.Pt(0, 10), 2),
	}
	m := NewMosaic(20, 20, dice, rand.New(rand.NewSource(11)))
	anim := NewAnimation(m, nil)

	sink := &collectSink{}
	n, err := Run(context.Background(), anim, sink)
	if err != nil {
		t.Fatal(err)
	}
	// The initial frame, five rolling frames, the frame of the settling
	// step and the final settled frame.
	if n != 7 {
		t.Errorf("Expected 7 frames, got %d", n)
	}
	if !anim.Done() || anim.Frames() != n {
		t.Errorf("Expected done after %d frames, got done=%v frames=%d", n, anim.Done(), anim.Frames())
	}

	settled := NewFrameRenderer().RenderMosaic(NewMosaic(20, 20, []*Die{
		NewDie(3, Rotation90, image.Pt(0, 0), 0),
		NewDie(2, Rotation0, image.Pt(10, 0), 0),
		NewDie(4, Rotation0, image.Pt(0, 10), 0),
	}, nil))
	last := sink.frames[len(sink.frames)-1]
	if mse := imageutil.CalculateMSE(settled, last); mse != 0 {
		t.Errorf("Last frame does not show the targets, MSE %f", mse)
	}

	// The first frame shows every rolling die on its start face.
	start := NewFrameRenderer().Block(StartFace, StartRotation)
	if got, want := sink.frames[0].GetRGB(4, 4), start.GetRGB(4, 4); got != want {
		t.Errorf("First frame: expected start face, got %v", got)
	}
}

func TestAnimationNextAfterFinish(t *testing.T) {
	t.Parallel()

	m := NewMosaic(10, 10, []*Die{NewDie(5, Rotation0, image.Point{}, 0)}, nil)
	anim := NewAnimation(m, nil)
	if _, more := anim.Next(); more {
		t.Fatal("Static animation should have one frame")
	}
	frame, more := anim.Next()
	if more || frame == nil {
		t.Errorf("Expected settled frame and no more, got more=%v", more)
	}
	if anim.Frames() != 1 {
		t.Errorf("Expected 1 frame counted, got %d", anim.Frames())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	m := NewMosaic(10, 10, []*Die{NewDie(5, Rotation0, image.Point{}, 20)}, rand.New(rand.NewSource(1)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &collectSink{}
	n, err := Run(ctx, NewAnimation(m, nil), sink)
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if n != 0 || len(sink.frames) != 0 {
		t.Errorf("Expected no frames, got %d", n)
	}
}

func TestRunSinkError(t *testing.T) {
	t.Parallel()

	m := NewMosaic(10, 10, []*Die{NewDie(5, Rotation0, image.Point{}, 20)}, rand.New(rand.NewSource(1)))
	sink := &collectSink{fail: 3}
	n, err := Run(context.Background(), NewAnimation(m, nil), sink)
	if err == nil {
		t.Fatal("Expected sink error")
	}
	if n != 3 {
		t.Errorf("Expected 3 frames written before the error, got %d", n)
	}
}
