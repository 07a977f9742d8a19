package imageutil

// ToGrayscale converts an RGBA image to grayscale using the standard
// luminance formula: Y = 0.299*R + 0.587*G + 0.114*B
// This matches the BT.601 standard used by OpenCV's COLOR_BGR2GRAY.
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		for x := range row {
			c := img.RGBAAt(x, y)
			// Integer math scaled by 1000, rounded.
			lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
			row[x] = uint8(min(lum, 255))
		}
	}

	return gray
}
