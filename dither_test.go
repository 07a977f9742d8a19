package img2dice

import (
	"image"
	"testing"

	"github.com/pkg/errors"

	"github.com/wbrown/img2dice/imageutil"
)

func grayFromRows(rows [][]uint8) *imageutil.GrayImage {
	img := imageutil.NewGrayImage(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, v := range row {
			img.SetGrayValue(x, y, v)
		}
	}
	return img
}

func TestDitherOutputIsBinary(t *testing.T) {
	t.Parallel()

	inputs := map[string]*imageutil.GrayImage{
		"gradient":  imageutil.CreateGrayGradient(64, 32),
		"mid gray":  imageutil.CreateSolidGray(30, 30, 128),
		"dark gray": imageutil.CreateSolidGray(17, 9, 40),
	}
	for name, img := range inputs {
		out, err := Dither(img)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if out.Width() != img.Width() || out.Height() != img.Height() {
			t.Errorf("%s: expected %dx%d, got %dx%d", name, img.Width(), img.Height(), out.Width(), out.Height())
		}
		for v := range imageutil.CountGrayValues(out) {
			if v != 0 && v != 255 {
				t.Errorf("%s: unexpected value %d", name, v)
			}
		}
	}
}

func TestDitherBinaryIsFixedPoint(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateCheckerboardImage(40, 30, 3)
	out, err := Dither(img)
	if err != nil {
		t.Fatal(err)
	}
	if mse := imageutil.CalculateMSEGray(img, out); mse != 0 {
		t.Errorf("Expected binary image unchanged, MSE %f", mse)
	}
}

func TestDitherPreservesMeanBrightness(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateSolidGray(100, 100, 64)
	out, err := Dither(img)
	if err != nil {
		t.Fatal(err)
	}
	white := imageutil.CountGrayValues(out)[255]
	ratio := float64(white) / float64(100*100)
	// 64/255 is about a quarter.
	if ratio < 0.2 || ratio > 0.3 {
		t.Errorf("Expected about 25%% white pixels, got %.1f%%", ratio*100)
	}
}

func TestDitherErrorCarriesEast(t *testing.T) {
	t.Parallel()

	// 127 rounds down, and its error pushes the next pixel over the middle.
	out, err := Dither(grayFromRows([][]uint8{{127, 127}}))
	if err != nil {
		t.Fatal(err)
	}
	if out.GetGray(0, 0) != 0 || out.GetGray(1, 0) != 255 {
		t.Errorf("Expected [0 255], got [%d %d]", out.GetGray(0, 0), out.GetGray(1, 0))
	}
}

func TestDitherSouthWestSkipsFirstColumn(t *testing.T) {
	t.Parallel()

	// Pixel (1,0) holds error 100. Its south-west neighbor is (0,1), which
	// would reach 138.75 and turn white if it received 3/16 of that error.
	img := grayFromRows([][]uint8{
		{0, 100, 0},
		{120, 0, 0},
	})
	out, err := Dither(img)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if v := out.GetGray(x, y); v != 0 {
				t.Errorf("Pixel (%d,%d): expected 0, got %d", x, y, v)
			}
		}
	}
}

func TestDitherDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateGrayGradient(25, 25)
	before := img.Clone()
	if _, err := Dither(img); err != nil {
		t.Fatal(err)
	}
	if mse := imageutil.CalculateMSEGray(before, img); mse != 0 {
		t.Errorf("Input was modified, MSE %f", mse)
	}
}

func TestDitherSubImage(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateGrayGradient(40, 40)
	sub := img.SubImage(image.Rect(10, 10, 30, 30)).(*image.Gray)

	want, err := Dither(imageutil.GrayImageFromImage(sub))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Dither(sub)
	if err != nil {
		t.Fatal(err)
	}
	if mse := imageutil.CalculateMSEGray(want, got); mse != 0 {
		t.Errorf("Sub-image dither differs from copied image, MSE %f", mse)
	}
}

func TestDitherRejectsColorImage(t *testing.T) {
	t.Parallel()

	_, err := Dither(imageutil.CreateGradientImage(10, 10))
	if errors.Cause(err) != ErrInvalidImageFormat {
		t.Errorf("Expected ErrInvalidImageFormat, got %v", err)
	}

	_, err = Dither(nil)
	if errors.Cause(err) != ErrInvalidImageFormat {
		t.Errorf("Expected ErrInvalidImageFormat for nil, got %v", err)
	}
}
