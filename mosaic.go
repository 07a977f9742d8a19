// Package img2dice rebuilds grayscale images as mosaics of dice: the image
// is dithered to black and white, every 10x10 tile becomes the closest die
// face, and the dice can be animated rolling into place.
package img2dice

import (
	"image"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Default roll lengths for animated mosaics, inclusive.
const (
	DefaultMinSteps = 5
	DefaultMaxSteps = 50
)

// Mosaic is the set of dice covering a dithered image, one per whole
// DieSize x DieSize tile, in row-major order.
type Mosaic struct {
	// Width and Height are the pixel extent covered by whole tiles.
	Width, Height int
	// Dice holds one die per tile, row-major.
	Dice []*Die

	rng Rand
}

// NewMosaic assembles a mosaic from existing dice. rng drives Advance.
func NewMosaic(width, height int, dice []*Die, rng Rand) *Mosaic {
	return &Mosaic{Width: width, Height: height, Dice: dice, rng: rng}
}

// Builder turns dithered images into mosaics.
type Builder struct {
	// Animate gives every die a random roll length; otherwise dice start
	// settled.
	Animate bool
	// MinSteps and MaxSteps bound the roll length, inclusive.
	MinSteps int
	MaxSteps int

	rng     Rand
	matcher *Matcher
}

// BuilderOption is a functional option for configuring a Builder.
type BuilderOption func(*Builder)

// NewBuilder creates a Builder with the given options.
// Default values: Animate=false, MinSteps=5, MaxSteps=50, a time-seeded
// random source and a fresh caching Matcher.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		MinSteps: DefaultMinSteps,
		MaxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if b.matcher == nil {
		b.matcher = NewMatcher()
	}
	return b
}

// WithAnimation sets whether built dice roll before settling.
func WithAnimation(animate bool) BuilderOption {
	return func(b *Builder) {
		b.Animate = animate
	}
}

// WithStepRange sets the inclusive range roll lengths are drawn from.
// The bounds are swapped if given in the wrong order and clamped at 0.
func WithStepRange(minSteps, maxSteps int) BuilderOption {
	return func(b *Builder) {
		if minSteps > maxSteps {
			minSteps, maxSteps = maxSteps, minSteps
		}
		b.MinSteps = max(minSteps, 0)
		b.MaxSteps = max(maxSteps, 0)
	}
}

// WithRand sets the random source used for roll lengths and, through the
// built Mosaic, for rolling.
func WithRand(rng Rand) BuilderOption {
	return func(b *Builder) {
		b.rng = rng
	}
}

// WithMatcher shares a Matcher, and its cache, between builders.
func WithMatcher(m *Matcher) BuilderOption {
	return func(b *Builder) {
		b.matcher = m
	}
}

// Matcher returns the matcher the builder uses.
func (b *Builder) Matcher() *Matcher {
	return b.matcher
}

// Build partitions a dithered single-channel image into DieSize x DieSize
// tiles, row-major from the top-left corner, and creates one die per tile
// showing the closest face. Partial tiles along the right and bottom edges
// are dropped; callers scale images to multiples of DieSize beforehand.
func (b *Builder) Build(img image.Image) (*Mosaic, error) {
	gray, err := asGray(img)
	if err != nil {
		return nil, errors.Wrap(err, "build mosaic")
	}

	bounds := gray.Bounds()
	cols, rows := bounds.Dx()/DieSize, bounds.Dy()/DieSize
	m := &Mosaic{
		Width:  cols * DieSize,
		Height: rows * DieSize,
		Dice:   make([]*Die, 0, cols*rows),
		rng:    b.rng,
	}

	for row := 0; row+DieSize <= bounds.Dy(); row += DieSize {
		for col := 0; col+DieSize <= bounds.Dx(); col += DieSize {
			steps := 0
			if b.Animate {
				steps = b.MinSteps + b.rng.Intn(b.MaxSteps-b.MinSteps+1)
			}

			r := image.Rect(col, row, col+DieSize, row+DieSize).Add(bounds.Min)
			match, err := b.matcher.MatchTile(gray.SubImage(r))
			if err != nil {
				return nil, errors.Wrapf(err, "tile at (%d, %d)", col, row)
			}

			m.Dice = append(m.Dice, NewDie(match.Face, match.Rotation, image.Pt(col, row), steps))
		}
	}
	return m, nil
}

// Bounds returns the canvas rectangle the mosaic covers.
func (m *Mosaic) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// Advance rolls every die one step with the mosaic's random source and
// reports whether all of them have settled. Every die is advanced even
// after an earlier one reports it is still rolling.
func (m *Mosaic) Advance() bool {
	done := true
	for _, d := range m.Dice {
		if !d.Advance(m.rng) {
			done = false
		}
	}
	return done
}

// Settled reports whether every die shows its target.
func (m *Mosaic) Settled() bool {
	for _, d := range m.Dice {
		if !d.Settled() {
			return false
		}
	}
	return true
}

// Inventory counts the dice settling on each face; index 0 is face 1.
func (m *Mosaic) Inventory() [6]int {
	var counts [6]int
	for _, d := range m.Dice {
		counts[d.Target()-1]++
	}
	return counts
}

// MaxSteps returns the longest roll among the dice.
func (m *Mosaic) MaxSteps() int {
	longest := 0
	for _, d := range m.Dice {
		_, total := d.Steps()
		longest = max(longest, total)
	}
	return longest
}
