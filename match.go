package img2dice

import (
	"image"

	"github.com/pkg/errors"
)

// QuantizationStep is the bucket width tiles are coarsened to before
// matching: each value v becomes v / QuantizationStep * QuantizationStep.
const QuantizationStep = 256 / 5

// Matcher finds the die face that best reproduces a tile of a dithered
// image. The twelve grayscale candidates are rendered once at
// construction. A Matcher is not safe for concurrent use because of its
// result cache.
type Matcher struct {
	candidates [6][2]tileKey
	useCache   bool

	// Cache (private)
	lookupTable  matchCache
	lookupHits   int
	lookupMisses int
}

// MatcherOption is a functional option for configuring a Matcher.
type MatcherOption func(*Matcher)

// WithMatchCache enables or disables caching of tile matches. Caching is
// on by default.
func WithMatchCache(enabled bool) MatcherOption {
	return func(m *Matcher) {
		m.useCache = enabled
	}
}

// NewMatcher creates a Matcher with the given options.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{
		useCache:    true,
		lookupTable: make(matchCache),
	}
	for _, face := range Faces {
		for _, rotation := range Rotations {
			m.candidates[face-1][rotation.index()] = keyOf(RenderGray(face, rotation).Gray, false)
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MatchTile returns the face and rotation whose grayscale rendering
// differs from the quantized tile in the fewest pixels. Candidates are
// tried in face order 1..6, rotation 0 before 90, and the first minimum
// wins, so symmetric faces always come back with rotation 0.
//
// The tile must be a single-channel image of exactly DieSize x DieSize
// pixels; otherwise ErrInvalidImageFormat or ErrTileSizeMismatch is
// returned.
func (m *Matcher) MatchTile(tile image.Image) (Match, error) {
	gray, err := asGray(tile)
	if err != nil {
		return Match{}, errors.Wrap(err, "match tile")
	}
	if size := gray.Bounds().Size(); size.X != DieSize || size.Y != DieSize {
		return Match{}, errors.Wrapf(ErrTileSizeMismatch,
			"%dx%d tile, want %dx%d px", size.X, size.Y, DieSize, DieSize)
	}

	key := keyOf(gray, true)
	if m.useCache {
		if match, found := m.getCacheEntry(key); found {
			return match, nil
		}
	}

	best := Match{Face: -1}
	minMismatch := len(key) + 1
	for _, face := range Faces {
		for _, rotation := range Rotations {
			mismatch := mismatches(&key, &m.candidates[face-1][rotation.index()])
			if mismatch < minMismatch {
				minMismatch = mismatch
				best = Match{Face: face, Rotation: rotation}
			}
		}
	}
	best.Distance = float64(minMismatch) / float64(len(key))

	if m.useCache {
		m.addCacheEntry(key, best)
	}
	return best, nil
}

// Distance returns the fraction of pixels that differ between two
// single-channel images of the same size: 0 for identical images, 1 when
// no pixel agrees.
func Distance(a, b image.Image) (float64, error) {
	ga, err := asGray(a)
	if err != nil {
		return 0, errors.Wrap(err, "distance")
	}
	gb, err := asGray(b)
	if err != nil {
		return 0, errors.Wrap(err, "distance")
	}
	sa, sb := ga.Bounds().Size(), gb.Bounds().Size()
	if sa != sb {
		return 0, errors.Wrapf(ErrShapeMismatch, "%v vs %v", sa, sb)
	}
	if sa.X == 0 || sa.Y == 0 {
		return 0, nil
	}

	var differ int
	for y := 0; y < sa.Y; y++ {
		rowA := ga.Pix[ga.PixOffset(ga.Rect.Min.X, ga.Rect.Min.Y+y):][:sa.X]
		rowB := gb.Pix[gb.PixOffset(gb.Rect.Min.X, gb.Rect.Min.Y+y):][:sa.X]
		for x := range rowA {
			if rowA[x] != rowB[x] {
				differ++
			}
		}
	}
	return float64(differ) / float64(sa.X*sa.Y), nil
}

// keyOf copies a DieSize x DieSize gray image into a tileKey, coarsening
// values into QuantizationStep buckets when quantize is set.
func keyOf(gray *image.Gray, quantize bool) tileKey {
	var key tileKey
	for y := 0; y < DieSize; y++ {
		row := gray.Pix[gray.PixOffset(gray.Rect.Min.X, gray.Rect.Min.Y+y):][:DieSize]
		for x, v := range row {
			if quantize {
				v = v / QuantizationStep * QuantizationStep
			}
			key[y*DieSize+x] = v
		}
	}
	return key
}

func mismatches(a, b *tileKey) int {
	var n int
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}
