package img2dice

import (
	"image"
	"image/draw"
	"os"
	"strconv"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wbrown/img2dice/imageutil"
)

// DefaultSheetCell is the side, in pixels, of one die on a build sheet.
const DefaultSheetCell = 16

// Build sheet colors.
var (
	sheetInk   = imageutil.RGB{}
	sheetPaper = imageutil.Gray(255)
	sheetGrid  = imageutil.Gray(BorderValue)
)

// DigitGlyphs holds the face digits 1-6 pre-rendered as coverage masks,
// used to print build sheets: the mosaic as a grid of numbers a person can
// follow to lay out real dice.
type DigitGlyphs struct {
	glyphs [6]*image.Alpha
	cell   int
}

// LoadDigitGlyphs renders the six digits from a TrueType font at a size
// fitting cell x cell pixel squares. A nil ttf uses the Go Regular font.
func LoadDigitGlyphs(ttf []byte, cell int) (*DigitGlyphs, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	if cell < 6 {
		return nil, errors.Errorf("sheet cell of %dpx is too small", cell)
	}

	ttfFont, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse font")
	}

	dg := &DigitGlyphs{cell: cell}
	for _, face := range Faces {
		dg.glyphs[face-1] = renderDigit(ttfFont, face, cell)
	}
	return dg, nil
}

// LoadDigitGlyphsFile is LoadDigitGlyphs reading the font from path.
func LoadDigitGlyphsFile(path string, cell int) (*DigitGlyphs, error) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read font")
	}
	return LoadDigitGlyphs(ttf, cell)
}

// renderDigit draws the digit of face centered in a cell x cell alpha
// mask. The font size leaves room for the grid line and the rotation
// underline.
func renderDigit(ttfFont *truetype.Font, face Face, cell int) *image.Alpha {
	size := float64(cell) * 0.7
	fontFace := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer fontFace.Close()

	img := image.NewAlpha(image.Rect(0, 0, cell, cell))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttfFont)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.Opaque)
	ctx.SetHinting(font.HintingFull)

	label := strconv.Itoa(int(face))
	metrics := fontFace.Metrics()
	advance := font.MeasureString(fontFace, label).Round()
	x := (cell - advance) / 2
	// Digits sit on the baseline and rarely descend; center on ascent.
	baselineY := (cell + metrics.Ascent.Round() - metrics.Descent.Round()) / 2

	// DrawString only fails when no font is set.
	_, _ = ctx.DrawString(label, freetype.Pt(x, baselineY))
	return img
}

// Cell returns the side of one die on the sheet.
func (dg *DigitGlyphs) Cell() int {
	return dg.cell
}

// Glyph returns the coverage mask of face's digit.
func (dg *DigitGlyphs) Glyph(face Face) *image.Alpha {
	Pattern(face, Rotation0)
	return dg.glyphs[face-1]
}

// RenderSheet prints the mosaic's target faces as a grid of digits, one
// cell per die, with dice that settle at 90 degrees underlined.
func (dg *DigitGlyphs) RenderSheet(m *Mosaic) *imageutil.RGBAImage {
	cols, rows := m.Width/DieSize, m.Height/DieSize
	sheet := imageutil.NewRGBAImage(cols*dg.cell+1, rows*dg.cell+1)
	sheet.Fill(sheetGrid)

	ink := &image.Uniform{C: sheetInk.ToColor()}
	paper := &image.Uniform{C: sheetPaper.ToColor()}
	for _, d := range m.Dice {
		origin := image.Pt(d.Position().X/DieSize*dg.cell, d.Position().Y/DieSize*dg.cell)
		cell := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(dg.cell, dg.cell))}

		// The top and left line of every cell stay grid.
		interior := image.Rectangle{Min: origin.Add(image.Pt(1, 1)), Max: cell.Max}
		draw.Draw(sheet.RGBA, interior, paper, image.Point{}, draw.Src)

		draw.DrawMask(sheet.RGBA, cell, ink, image.Point{}, dg.Glyph(d.Target()), image.Point{}, draw.Over)

		if d.TargetRotation() == Rotation90 {
			y := cell.Max.Y - 2
			underline := image.Rect(cell.Min.X+dg.cell/4, y, cell.Max.X-dg.cell/4, y+1)
			draw.Draw(sheet.RGBA, underline, ink, image.Point{}, draw.Src)
		}
	}
	return sheet
}
