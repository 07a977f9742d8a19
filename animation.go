package img2dice

import (
	"context"

	"github.com/pkg/errors"

	"github.com/wbrown/img2dice/imageutil"
)

// FrameSink consumes finished frames one at a time, in generation order.
// The frame buffer is reused by the producer after WriteFrame returns, so
// sinks that keep frames must copy them.
type FrameSink interface {
	WriteFrame(index int, frame *imageutil.RGBAImage) error
}

// Animation produces the frames of a rolling mosaic: each call to Next
// renders the dice as they are, then rolls them one step. Once every die
// has settled one last frame shows the finished mosaic. A mosaic built
// without animation yields that single frame.
type Animation struct {
	mosaic   *Mosaic
	renderer *FrameRenderer
	canvas   *imageutil.RGBAImage

	frame    int
	settled  bool
	finished bool
}

// NewAnimation prepares the frames of m. A nil renderer gets a fresh one.
func NewAnimation(m *Mosaic, renderer *FrameRenderer) *Animation {
	if renderer == nil {
		renderer = NewFrameRenderer()
	}
	return &Animation{
		mosaic:   m,
		renderer: renderer,
		canvas:   imageutil.NewRGBAImage(m.Width, m.Height),
		settled:  m.Settled(),
	}
}

// Next returns the next frame and whether more frames follow. After the
// last frame it keeps returning the settled mosaic and false.
func (a *Animation) Next() (*imageutil.RGBAImage, bool) {
	if a.finished {
		return a.canvas, false
	}
	a.renderer.Render(a.canvas, a.mosaic.Dice)
	a.frame++
	if a.settled {
		a.finished = true
		return a.canvas, false
	}
	a.settled = a.mosaic.Advance()
	return a.canvas, true
}

// Size returns the frame dimensions.
func (a *Animation) Size() (width, height int) {
	return a.canvas.Width(), a.canvas.Height()
}

// Frames returns how many frames Next has produced.
func (a *Animation) Frames() int {
	return a.frame
}

// Done reports whether the final frame has been produced.
func (a *Animation) Done() bool {
	return a.finished
}

// Run drives a to completion, handing every frame to sink. It stops at
// the next frame boundary once ctx is cancelled and returns the number of
// frames written.
func Run(ctx context.Context, a *Animation, sink FrameSink) (int, error) {
	written := 0
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		frame, more := a.Next()
		if err := sink.WriteFrame(written, frame); err != nil {
			return written, errors.Wrapf(err, "write frame %d", written)
		}
		written++
		if !more {
			return written, nil
		}
	}
}
