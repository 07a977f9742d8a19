package imageutil

import (
	"github.com/disintegration/imaging"
)

// Adjustments describes optional tonal corrections applied to a photo
// before it is reduced to grayscale and dithered. The zero value leaves the
// image untouched.
//
//   - Gamma: 1.0 (or 0) is the original image, below 1.0 darkens, above lightens.
//   - Brightness: percentage in [-100, 100].
//   - Contrast: percentage in [-100, 100].
//   - Sharpen: gaussian sigma, 0 disables.
//   - SigmoidMidpoint/SigmoidFactor: sigmoidal contrast; a zero factor disables.
//   - Invert: negate the image.
type Adjustments struct {
	Gamma           float64
	Brightness      float64
	Contrast        float64
	Sharpen         float64
	SigmoidMidpoint float64
	SigmoidFactor   float64
	Invert          bool
}

// IsZero reports whether a leaves images unchanged.
func (a Adjustments) IsZero() bool {
	return (a.Gamma == 0 || a.Gamma == 1) &&
		a.Brightness == 0 &&
		a.Contrast == 0 &&
		a.Sharpen == 0 &&
		a.SigmoidFactor == 0 &&
		!a.Invert
}

// Adjust applies a to img and returns a new image. The order is gamma,
// brightness, sharpen, contrast, sigmoid, invert.
func Adjust(img *RGBAImage, a Adjustments) *RGBAImage {
	if a.IsZero() {
		return img.Clone()
	}

	adjusted := imaging.Clone(img.RGBA)
	if a.Gamma != 0 && a.Gamma != 1 {
		adjusted = imaging.AdjustGamma(adjusted, a.Gamma)
	}
	if a.Brightness != 0 {
		adjusted = imaging.AdjustBrightness(adjusted, a.Brightness)
	}
	if a.Sharpen != 0 {
		adjusted = imaging.Sharpen(adjusted, a.Sharpen)
	}
	if a.Contrast != 0 {
		adjusted = imaging.AdjustContrast(adjusted, a.Contrast)
	}
	if a.SigmoidFactor != 0 {
		midpoint := a.SigmoidMidpoint
		if midpoint == 0 {
			midpoint = 0.5
		}
		adjusted = imaging.AdjustSigmoid(adjusted, midpoint, a.SigmoidFactor)
	}
	if a.Invert {
		adjusted = imaging.Invert(adjusted)
	}
	return RGBAImageFromImage(adjusted)
}
