package img2dice

import (
	"image"
	"math"

	"github.com/pkg/errors"

	"github.com/wbrown/img2dice/imageutil"
)

// Dither converts a single-channel grayscale image into a binary one using
// Floyd-Steinberg error diffusion. Every pixel of the result is 0 or 255.
// The input is left untouched; anything other than a single-channel image
// yields ErrInvalidImageFormat.
//
// Pixels are visited left to right, top to bottom, and each pixel's
// quantization error is pushed onto the not-yet-visited neighbors of a
// float working buffer before they are read, so the pass is inherently
// sequential.
func Dither(img image.Image) (*imageutil.GrayImage, error) {
	gray, err := asGray(img)
	if err != nil {
		return nil, errors.Wrap(err, "dither")
	}

	bounds := gray.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	work := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			work[r*cols+c] = float64(gray.GrayAt(bounds.Min.X+c, bounds.Min.Y+r).Y)
		}
	}

	out := imageutil.NewGrayImage(cols, rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			old := work[r*cols+c]
			quantized := math.RoundToEven(old/255) * 255
			if quantized > 0 {
				out.Pix[r*out.Stride+c] = 255
			}
			distributeError(work, rows, cols, r, c, old-quantized)
		}
	}
	return out, nil
}

// distributeError spreads the quantization error of pixel (r, c) over its
// unvisited neighbors with the Floyd-Steinberg weights.
//
// The south-west neighbor only receives error when c-1 > 0, so pixels in
// the first column never get error from the pixel above and to their right.
// Changing the bound changes the output for every image.
func distributeError(work []float64, rows, cols, r, c int, quantErr float64) {
	if quantErr == 0 {
		return
	}
	if c+1 < cols {
		work[r*cols+c+1] += quantErr * 7 / 16
	}
	if r+1 >= rows {
		return
	}
	below := (r + 1) * cols
	if c-1 > 0 {
		work[below+c-1] += quantErr * 3 / 16
	}
	work[below+c] += quantErr * 5 / 16
	if c+1 < cols {
		work[below+c+1] += quantErr * 1 / 16
	}
}
