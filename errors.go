package img2dice

import (
	"image"

	"github.com/pkg/errors"

	"github.com/wbrown/img2dice/imageutil"
)

// Precondition violations. They are returned wrapped with context; use
// errors.Cause to classify them.
var (
	// ErrInvalidImageFormat is returned when an operation that needs a
	// single-channel grayscale buffer receives anything else.
	ErrInvalidImageFormat = errors.New("the image is not grayscaled or bad format")

	// ErrTileSizeMismatch is returned when a tile handed to the matcher is
	// not exactly DieSize x DieSize pixels.
	ErrTileSizeMismatch = errors.New("the reference image is not the same size as the die")

	// ErrShapeMismatch is returned when two images compared for distance
	// have different dimensions.
	ErrShapeMismatch = errors.New("images must be same shape")
)

// asGray returns the single-channel buffer behind img or
// ErrInvalidImageFormat.
func asGray(img image.Image) (*image.Gray, error) {
	switch g := img.(type) {
	case *image.Gray:
		if g == nil {
			return nil, errors.Wrap(ErrInvalidImageFormat, "nil image")
		}
		return g, nil
	case *imageutil.GrayImage:
		if g == nil || g.Gray == nil {
			return nil, errors.Wrap(ErrInvalidImageFormat, "nil image")
		}
		return g.Gray, nil
	case nil:
		return nil, errors.Wrap(ErrInvalidImageFormat, "nil image")
	default:
		return nil, errors.Wrapf(ErrInvalidImageFormat, "got %T", img)
	}
}
