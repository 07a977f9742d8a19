package img2dice

import (
	"image"
	"image/draw"

	"github.com/wbrown/img2dice/imageutil"
)

// FrameRenderer composites dice into RGB frames. The twelve color blocks
// are rendered once and blitted for every die.
type FrameRenderer struct {
	blocks [6][2]*imageutil.RGBAImage
}

// NewFrameRenderer creates a FrameRenderer with every face prerendered.
func NewFrameRenderer() *FrameRenderer {
	fr := &FrameRenderer{}
	for _, face := range Faces {
		for _, rotation := range Rotations {
			fr.blocks[face-1][rotation.index()] = RenderColor(face, rotation)
		}
	}
	return fr
}

// Block returns the shared color block for face and rotation. It must not
// be modified.
func (fr *FrameRenderer) Block(face Face, rotation Rotation) *imageutil.RGBAImage {
	Pattern(face, rotation)
	return fr.blocks[face-1][rotation.index()]
}

// Render draws every die's current face into canvas at the die's
// position, overwriting what was there. Parts of a die falling outside the
// canvas are clipped.
func (fr *FrameRenderer) Render(canvas *imageutil.RGBAImage, dice []*Die) {
	for _, d := range dice {
		drawDie(canvas, d, fr.Block(d.Face(), d.Rotation()))
	}
}

// RenderMosaic draws the mosaic into a new canvas of its size.
func (fr *FrameRenderer) RenderMosaic(m *Mosaic) *imageutil.RGBAImage {
	canvas := imageutil.NewRGBAImage(m.Width, m.Height)
	fr.Render(canvas, m.Dice)
	return canvas
}

// drawDie copies block into canvas at the die's position.
func drawDie(canvas *imageutil.RGBAImage, d *Die, block *imageutil.RGBAImage) {
	r := d.Bounds().Add(canvas.Bounds().Min)
	draw.Draw(canvas.RGBA, r, block.RGBA, image.Point{}, draw.Src)
}
