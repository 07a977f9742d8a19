package img2dice

import (
	"image"
	"math"
	"testing"

	"github.com/pkg/errors"

	"github.com/wbrown/img2dice/imageutil"
)

func TestMatchTileRecoversRenderedFace(t *testing.T) {
	t.Parallel()

	m := NewMatcher()
	for _, face := range Faces {
		for _, rotation := range Rotations {
			match, err := m.MatchTile(RenderGray(face, rotation))
			if err != nil {
				t.Fatalf("Face %d/%d: %v", face, rotation, err)
			}

			// Faces that look the same turned come back unturned.
			wantRotation := rotation
			if !RotationMatters(face) {
				wantRotation = Rotation0
			}
			if match.Face != face || match.Rotation != wantRotation {
				t.Errorf("Expected (%d, %d), got (%d, %d)",
					face, wantRotation, match.Face, match.Rotation)
			}
		}
	}
}

func TestMatchTileSelfDistance(t *testing.T) {
	t.Parallel()

	// The 200 border quantizes to 153, so every candidate loses its 36
	// border pixels and only the interior decides.
	match, err := NewMatcher().MatchTile(RenderGray(3, Rotation90))
	if err != nil {
		t.Fatal(err)
	}
	want := float64(4*(DieSize-1)) / float64(DieSize*DieSize)
	if math.Abs(match.Distance-want) > 1e-9 {
		t.Errorf("Expected distance %f, got %f", want, match.Distance)
	}
}

func TestMatchTileSolidTiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value uint8
		want  Face
	}{
		// Fewest dots is closest to white, most dots closest to black.
		{"white", 255, 1},
		{"black", 0, 6},
	}
	m := NewMatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := m.MatchTile(imageutil.CreateSolidGray(DieSize, DieSize, tt.value))
			if err != nil {
				t.Fatal(err)
			}
			if match.Face != tt.want || match.Rotation != Rotation0 {
				t.Errorf("Expected (%d, 0), got (%d, %d)", tt.want, match.Face, match.Rotation)
			}
		})
	}
}

func TestMatchTileErrors(t *testing.T) {
	t.Parallel()

	m := NewMatcher()
	tests := []struct {
		name string
		tile image.Image
		want error
	}{
		{"color tile", imageutil.CreateSolidImage(DieSize, DieSize, imageutil.Gray(255)), ErrInvalidImageFormat},
		{"nil tile", nil, ErrInvalidImageFormat},
		{"too narrow", imageutil.CreateSolidGray(DieSize-1, DieSize, 255), ErrTileSizeMismatch},
		{"too large", imageutil.CreateSolidGray(DieSize*2, DieSize*2, 255), ErrTileSizeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.MatchTile(tt.tile)
			if errors.Cause(err) != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMatchTileSubImage(t *testing.T) {
	t.Parallel()

	// A tile cut out of a larger image matches like a standalone one.
	canvas := imageutil.CreateSolidGray(3*DieSize, DieSize, 255)
	face := RenderGray(6, Rotation90)
	for y := 0; y < DieSize; y++ {
		for x := 0; x < DieSize; x++ {
			canvas.SetGrayValue(DieSize+x, y, face.GetGray(x, y))
		}
	}
	tile := canvas.SubImage(image.Rect(DieSize, 0, 2*DieSize, DieSize))

	match, err := NewMatcher().MatchTile(tile)
	if err != nil {
		t.Fatal(err)
	}
	if match.Face != 6 || match.Rotation != Rotation90 {
		t.Errorf("Expected (6, 90), got (%d, %d)", match.Face, match.Rotation)
	}
}

func TestMatcherCache(t *testing.T) {
	t.Parallel()

	m := NewMatcher()
	tile := RenderGray(2, Rotation0)
	first, err := m.MatchTile(tile)
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.MatchTile(tile)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Cached match %+v differs from computed %+v", second, first)
	}

	hits, misses, rate := m.CacheStats()
	if hits != 1 || misses != 1 {
		t.Errorf("Expected 1 hit and 1 miss, got %d and %d", hits, misses)
	}
	if rate != 0.5 {
		t.Errorf("Expected hit rate 0.5, got %f", rate)
	}

	m.ResetCache()
	if hits, misses, _ := m.CacheStats(); hits != 0 || misses != 0 {
		t.Errorf("Expected empty stats after reset, got %d hits, %d misses", hits, misses)
	}
}

func TestMatcherWithoutCache(t *testing.T) {
	t.Parallel()

	m := NewMatcher(WithMatchCache(false))
	for i := 0; i < 3; i++ {
		if _, err := m.MatchTile(RenderGray(5, Rotation0)); err != nil {
			t.Fatal(err)
		}
	}
	if hits, misses, _ := m.CacheStats(); hits != 0 || misses != 0 {
		t.Errorf("Expected no cache activity, got %d hits, %d misses", hits, misses)
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	one, six := RenderGray(1, Rotation0), RenderGray(6, Rotation0)

	d, err := Distance(one, one)
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("Expected 0 for identical images, got %f", d)
	}

	// Face 1's centre dot and face 6's six dots share no cell: 7 cells of
	// 4 pixels differ.
	d, err = Distance(one, six)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-0.28) > 1e-9 {
		t.Errorf("Expected 0.28, got %f", d)
	}

	black := imageutil.CreateSolidGray(4, 4, 0)
	white := imageutil.CreateSolidGray(4, 4, 255)
	if d, _ := Distance(black, white); d != 1 {
		t.Errorf("Expected 1 for disjoint images, got %f", d)
	}
}

func TestDistanceErrors(t *testing.T) {
	t.Parallel()

	_, err := Distance(imageutil.CreateSolidGray(10, 10, 0), imageutil.CreateSolidGray(10, 9, 0))
	if errors.Cause(err) != ErrShapeMismatch {
		t.Errorf("Expected ErrShapeMismatch, got %v", err)
	}

	_, err = Distance(imageutil.CreateSolidGray(10, 10, 0), imageutil.CreateGradientImage(10, 10))
	if errors.Cause(err) != ErrInvalidImageFormat {
		t.Errorf("Expected ErrInvalidImageFormat, got %v", err)
	}
}
