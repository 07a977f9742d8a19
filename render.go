package img2dice

import (
	"github.com/wbrown/img2dice/imageutil"
)

const (
	// Margin is the gap, in pixels, between dots and around the grid.
	Margin = 1
	// Dot is the side, in pixels, of one square dot.
	Dot = 2
	// DieSize is the side of a rendered die and of a mosaic tile.
	DieSize = 4*Margin + 3*Dot
)

// Output values of a rendered die.
const (
	DotValue    uint8 = 0
	BlankValue  uint8 = 255
	BorderValue uint8 = 200
)

// DotColor is the color of the dots in a full-color render.
var DotColor = imageutil.Gray(DotValue)

// cell kinds of the structural layout, before mapping to output values
type pixelKind uint8

const (
	kindBlank pixelKind = iota
	kindDot
	kindBorder
)

// layout computes the structural map of a die face: which pixels are
// dots, which are border and which are blank. Border pixels win over dots
// so tile edges stay legible.
func layout(face Face, rotation Rotation) [DieSize][DieSize]pixelKind {
	var grid [DieSize][DieSize]pixelKind
	for _, c := range Pattern(face, rotation) {
		row := (Margin+Dot)*c.Row + Margin
		col := (Margin+Dot)*c.Col + Margin
		for y := row; y < row+Dot; y++ {
			for x := col; x < col+Dot; x++ {
				grid[y][x] = kindDot
			}
		}
	}
	for i := 0; i < DieSize; i++ {
		grid[0][i] = kindBorder
		grid[DieSize-1][i] = kindBorder
		grid[i][0] = kindBorder
		grid[i][DieSize-1] = kindBorder
	}
	return grid
}

func (k pixelKind) value() uint8 {
	switch k {
	case kindDot:
		return DotValue
	case kindBorder:
		return BorderValue
	default:
		return BlankValue
	}
}

// RenderGray draws a die as a single-channel DieSize x DieSize block:
// dots are 0, the background 255 and the one pixel border 200. It is the
// block the tile matcher compares against.
func RenderGray(face Face, rotation Rotation) *imageutil.GrayImage {
	grid := layout(face, rotation)
	img := imageutil.NewGrayImage(DieSize, DieSize)
	for y := 0; y < DieSize; y++ {
		for x := 0; x < DieSize; x++ {
			img.Pix[y*img.Stride+x] = grid[y][x].value()
		}
	}
	return img
}

// RenderColor draws a die as an RGB DieSize x DieSize block with DotColor
// dots on white and a mid-gray border. It is the block composited into
// output frames.
func RenderColor(face Face, rotation Rotation) *imageutil.RGBAImage {
	grid := layout(face, rotation)
	img := imageutil.NewRGBAImage(DieSize, DieSize)
	for y := 0; y < DieSize; y++ {
		for x := 0; x < DieSize; x++ {
			c := imageutil.Gray(grid[y][x].value())
			if grid[y][x] == kindDot {
				c = DotColor
			}
			img.SetRGB(x, y, c)
		}
	}
	return img
}
