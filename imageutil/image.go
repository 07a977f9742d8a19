// Package imageutil provides the pure Go image plumbing around the dice
// mosaic: pixel buffer wrappers, loading and saving, grayscale conversion,
// scaling and tonal adjustments.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to an opaque color.RGBA.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Gray returns the RGB triple with all channels set to v.
func Gray(v uint8) RGB {
	return RGB{R: v, G: v, B: v}
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
// Frames handed to sinks are always RGBAImages with an opaque alpha
// channel, so they carry exactly three meaningful 8-bit channels.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
// Every pixel starts out opaque black.
func NewRGBAImage(width, height int) *RGBAImage {
	img := &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	img.Fill(RGB{})
	return img
}

// RGBAImageFromImage converts any image.Image to an RGBAImage anchored at
// the origin.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	bounds := img.Bounds()
	rgba := &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy())),
	}
	draw.Draw(rgba.RGBA, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, c.ToColor())
}

// Fill paints the whole image with c.
func (img *RGBAImage) Fill(c RGB) {
	draw.Draw(img.RGBA, img.Bounds(), &image.Uniform{C: c.ToColor()}, image.Point{}, draw.Src)
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := &RGBAImage{RGBA: image.NewRGBA(img.Bounds())}
	copy(clone.Pix, img.Pix)
	return clone
}

// GrayImage wraps image.Gray for single-channel images.
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a new GrayImage with the specified dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// GrayImageFromImage converts any image.Image to a GrayImage anchored at
// the origin, using the standard library's luminance conversion.
func GrayImageFromImage(img image.Image) *GrayImage {
	bounds := img.Bounds()
	gray := NewGrayImage(bounds.Dx(), bounds.Dy())
	draw.Draw(gray.Gray, gray.Bounds(), img, bounds.Min, draw.Src)
	return gray
}

// Width returns the image width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// GetGray returns the grayscale value at (x, y).
func (img *GrayImage) GetGray(x, y int) uint8 {
	return img.GrayAt(x, y).Y
}

// SetGrayValue sets the grayscale value at (x, y).
func (img *GrayImage) SetGrayValue(x, y int, v uint8) {
	img.Gray.SetGray(x, y, color.Gray{Y: v})
}

// Clone creates a deep copy of the image.
func (img *GrayImage) Clone() *GrayImage {
	clone := &GrayImage{Gray: image.NewGray(img.Bounds())}
	copy(clone.Pix, img.Pix)
	return clone
}

// Crop returns a copy of the top-left width x height region of img,
// re-anchored at the origin. Dimensions larger than the image are clamped.
func (img *GrayImage) Crop(width, height int) *GrayImage {
	width = min(width, img.Width())
	height = min(height, img.Height())
	out := NewGrayImage(width, height)
	origin := img.Bounds().Min
	for y := 0; y < height; y++ {
		src := img.PixOffset(origin.X, origin.Y+y)
		copy(out.Pix[y*out.Stride:y*out.Stride+width], img.Pix[src:src+width])
	}
	return out
}
