package img2dice

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/wbrown/img2dice/imageutil"
)

// FileSink writes every frame to its own file in Dir, named
// dice0000_<Name>, dice0001_<Name>, ... The image format follows Name's
// extension.
type FileSink struct {
	Dir  string
	Name string
}

// FrameName returns the file name of frame index.
func (s FileSink) FrameName(index int) string {
	return fmt.Sprintf("dice%04d_%s", index, s.Name)
}

// WriteFrame implements FrameSink.
func (s FileSink) WriteFrame(index int, frame *imageutil.RGBAImage) error {
	return imageutil.SaveImage(frame, filepath.Join(s.Dir, s.FrameName(index)))
}

// ImageSink writes frames to a single file, each one replacing the last,
// so the file ends up holding the settled mosaic.
type ImageSink struct {
	Path string
}

// WriteFrame implements FrameSink.
func (s ImageSink) WriteFrame(_ int, frame *imageutil.RGBAImage) error {
	return imageutil.SaveImage(frame, s.Path)
}

// framePalette holds every color a die frame can contain.
var framePalette = color.Palette{
	DotColor.ToColor(),
	imageutil.Gray(BlankValue).ToColor(),
	imageutil.Gray(BorderValue).ToColor(),
}

// GIFSink collects frames into an animated GIF written on Close.
type GIFSink struct {
	Path string
	// Delay between frames, in 100ths of a second.
	Delay int
	// Hold is the delay of the final frame, in 100ths of a second.
	Hold int

	anim gif.GIF
}

// NewGIFSink creates a GIFSink writing to path at roughly fps frames per
// second, holding the final frame for two seconds.
func NewGIFSink(path string, fps int) *GIFSink {
	delay := 100 / max(fps, 1)
	return &GIFSink{Path: path, Delay: max(delay, 2), Hold: 200}
}

// WriteFrame implements FrameSink.
func (s *GIFSink) WriteFrame(_ int, frame *imageutil.RGBAImage) error {
	bounds := image.Rect(0, 0, frame.Width(), frame.Height())
	paletted := image.NewPaletted(bounds, framePalette)
	draw.Draw(paletted, bounds, frame.RGBA, frame.Bounds().Min, draw.Src)
	s.anim.Image = append(s.anim.Image, paletted)
	s.anim.Delay = append(s.anim.Delay, s.Delay)
	return nil
}

// Len returns the number of frames collected so far.
func (s *GIFSink) Len() int {
	return len(s.anim.Image)
}

// Close encodes the collected frames to Path.
func (s *GIFSink) Close() error {
	if len(s.anim.Image) == 0 {
		return errors.New("gif: no frames")
	}
	if s.Hold > 0 {
		s.anim.Delay[len(s.anim.Delay)-1] = s.Hold
	}
	return imageutil.SaveGIF(&s.anim, s.Path)
}
