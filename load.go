package img2dice

import (
	"github.com/pkg/errors"

	"github.com/wbrown/img2dice/imageutil"
)

// PrepareGray reduces a photo to the grayscale buffer the mosaic needs:
// tonal adjustments, BT.601 grayscale, then a bilinear resample by scale
// with both sides truncated to multiples of DieSize.
func PrepareGray(img *imageutil.RGBAImage, scale float64, adj imageutil.Adjustments) (*imageutil.GrayImage, error) {
	if scale <= 0 {
		return nil, errors.Errorf("scale must be positive, got %g", scale)
	}
	gray := imageutil.ToGrayscale(imageutil.Adjust(img, adj))
	scaled := imageutil.ScaleToMultiple(gray, scale, DieSize, imageutil.InterpolationLinear)
	if scaled.Width() == 0 || scaled.Height() == 0 {
		return nil, errors.Errorf("%dx%d image scaled by %g is smaller than one %dpx die",
			img.Width(), img.Height(), scale, DieSize)
	}
	return scaled, nil
}

// LoadGray loads the image at path and prepares it with PrepareGray.
func LoadGray(path string, scale float64, adj imageutil.Adjustments) (*imageutil.GrayImage, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return PrepareGray(img, scale, adj)
}
