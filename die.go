package img2dice

import (
	"image"
)

// Rand is the source of randomness for building and rolling dice.
// *math/rand.Rand satisfies it; tests inject scripted sequences.
type Rand interface {
	// Intn returns a uniformly distributed int in [0, n). n > 0.
	Intn(n int) int
}

// StartFace and StartRotation are what a rolling die shows before its
// first step.
const (
	StartFace     Face     = 1
	StartRotation Rotation = Rotation0
)

// Die is one die of the mosaic. It shows Face/Rotation now and must end on
// Target/TargetRotation. While rolling it takes TotalSteps random
// intermediate faces, then settles on its target with one more Advance.
type Die struct {
	face     Face
	rotation Rotation

	target         Face
	targetRotation Rotation

	position image.Point

	stepIndex  int
	totalSteps int
	settled    bool
}

// NewDie creates a die at position whose final face is target/rotation
// after totalSteps rolls. A die with totalSteps == 0 starts settled on its
// target; any other die starts on StartFace/StartRotation. Negative
// totalSteps are treated as 0.
func NewDie(target Face, rotation Rotation, position image.Point, totalSteps int) *Die {
	// Validate through the pattern table so bad dice fail at creation.
	Pattern(target, rotation)

	d := &Die{
		face:           StartFace,
		rotation:       StartRotation,
		target:         target,
		targetRotation: rotation,
		position:       position,
		totalSteps:     max(totalSteps, 0),
	}
	if d.totalSteps == 0 {
		d.face, d.rotation = target, rotation
		d.settled = true
	}
	return d
}

// Face returns the face currently shown.
func (d *Die) Face() Face { return d.face }

// Rotation returns the rotation currently shown.
func (d *Die) Rotation() Rotation { return d.rotation }

// Target returns the face the die settles on.
func (d *Die) Target() Face { return d.target }

// TargetRotation returns the rotation the die settles on.
func (d *Die) TargetRotation() Rotation { return d.targetRotation }

// Position returns the top-left pixel of the die's tile.
func (d *Die) Position() image.Point { return d.position }

// Bounds returns the rectangle the die covers in the canvas.
func (d *Die) Bounds() image.Rectangle {
	return image.Rectangle{Min: d.position, Max: d.position.Add(image.Pt(DieSize, DieSize))}
}

// Steps returns how many rolling steps have been taken and how many there
// are in total.
func (d *Die) Steps() (index, total int) { return d.stepIndex, d.totalSteps }

// Settled reports whether the die has landed on its target.
func (d *Die) Settled() bool { return d.settled }

// Advance moves the roll one step and reports whether the die has
// settled.
//
// While stepIndex < totalSteps-1 the die shows a random face different
// from the current one. On the last rolling step the new face also
// differs from the target, so landing is always a visible change. Every
// rolling step picks a random rotation as well. Once all rolling steps
// are taken the next call shows the target and returns true, as does
// every later call.
func (d *Die) Advance(rng Rand) bool {
	switch {
	case d.settled:
		d.face, d.rotation = d.target, d.targetRotation
		return true
	case d.stepIndex < d.totalSteps-1:
		d.face = pickFace(rng, d.face)
	case d.stepIndex == d.totalSteps-1:
		d.face = pickFace(rng, d.face, d.target)
	default:
		d.face, d.rotation = d.target, d.targetRotation
		d.settled = true
		return true
	}
	d.rotation = Rotations[rng.Intn(len(Rotations))]
	d.stepIndex++
	return false
}

// pickFace draws uniformly among the faces not listed in exclude.
func pickFace(rng Rand, exclude ...Face) Face {
	choices := make([]Face, 0, len(Faces))
next:
	for _, f := range Faces {
		for _, e := range exclude {
			if f == e {
				continue next
			}
		}
		choices = append(choices, f)
	}
	return choices[rng.Intn(len(choices))]
}
