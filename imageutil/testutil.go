package imageutil

import (
	"image/color"
	"math"
)

// CreateGradientImage creates a horizontal black-to-white gradient.
func CreateGradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / max(width-1, 1))
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// CreateGrayGradient creates a horizontal black-to-white single-channel
// gradient.
func CreateGrayGradient(width, height int) *GrayImage {
	return ToGrayscale(CreateGradientImage(width, height))
}

// CreateCheckerboardImage creates a checkerboard pattern of pure black and
// white squares.
func CreateCheckerboardImage(width, height, squareSize int) *GrayImage {
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetGrayValue(x, y, 255)
			}
		}
	}
	return img
}

// CreateSolidGray creates a single-channel image filled with v.
func CreateSolidGray(width, height int, v uint8) *GrayImage {
	img := NewGrayImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	img.Fill(c)
	return img
}

// CreateColorBarsImage creates a color bars test pattern.
func CreateColorBarsImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	colors := []RGB{
		{255, 255, 255}, // White
		{255, 255, 0},   // Yellow
		{0, 255, 255},   // Cyan
		{0, 255, 0},     // Green
		{255, 0, 255},   // Magenta
		{255, 0, 0},     // Red
		{0, 0, 255},     // Blue
		{0, 0, 0},       // Black
	}

	barWidth := max(width/len(colors), 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := min(x/barWidth, len(colors)-1)
			img.SetRGB(x, y, colors[colorIdx])
		}
	}
	return img
}

// CalculateMSE calculates the Mean Squared Error between two RGBA images.
func CalculateMSE(img1, img2 *RGBAImage) float64 {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return math.MaxFloat64
	}

	width, height := img1.Width(), img1.Height()
	var sumSq float64
	count := float64(width * height * 3) // 3 channels

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c1 := img1.RGBAAt(x, y)
			c2 := img2.RGBAAt(x, y)
			dr := float64(c1.R) - float64(c2.R)
			dg := float64(c1.G) - float64(c2.G)
			db := float64(c1.B) - float64(c2.B)
			sumSq += dr*dr + dg*dg + db*db
		}
	}

	return sumSq / count
}

// CalculateMSEGray calculates the Mean Squared Error between two grayscale images.
func CalculateMSEGray(img1, img2 *GrayImage) float64 {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return math.MaxFloat64
	}

	width, height := img1.Width(), img1.Height()
	var sumSq float64
	count := float64(width * height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := float64(img1.GetGray(x, y)) - float64(img2.GetGray(x, y))
			sumSq += d * d
		}
	}

	return sumSq / count
}

// CountGrayValues returns a histogram of the pixel values in img.
func CountGrayValues(img *GrayImage) map[uint8]int {
	counts := make(map[uint8]int)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			counts[img.GetGray(x, y)]++
		}
	}
	return counts
}
