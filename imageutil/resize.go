package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	// This is the closest equivalent to OpenCV's INTER_AREA.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	// Equivalent to OpenCV's INTER_LINEAR, which is what cv2.resize uses
	// when no interpolation is given.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := &RGBAImage{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
	interp.scaler().Scale(dst.RGBA, dst.Bounds(), img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeGray resizes a grayscale image to the specified dimensions.
func ResizeGray(img *GrayImage, width, height int, interp Interpolation) *GrayImage {
	dst := NewGrayImage(width, height)
	interp.scaler().Scale(dst.Gray, dst.Bounds(), img.Gray, img.Bounds(), draw.Src, nil)
	return dst
}

// ScaleToMultiple scales img by factor and then truncates both dimensions
// down to the nearest multiple of unit, in one resampling pass. A scaled
// dimension smaller than unit yields an empty image along that axis.
func ScaleToMultiple(img *GrayImage, factor float64, unit int, interp Interpolation) *GrayImage {
	width := int(float64(img.Width())*factor) / unit * unit
	height := int(float64(img.Height())*factor) / unit * unit
	if width == img.Width() && height == img.Height() {
		return img.Clone()
	}
	if width == 0 || height == 0 {
		return NewGrayImage(width, height)
	}
	return ResizeGray(img, width, height, interp)
}
