package dino

import (
	"testing"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

func TestHasCollision(t *testing.T) {
	player := core.Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}

	tests := []struct {
		name      string
		obstacles []core.Rect
		expected  bool
	}{
		{"no obstacles", nil, false},
		{"shared edge", []core.Rect{{Left: 10, Top: 0, Right: 20, Bottom: 10}}, false},
		{"overlap", []core.Rect{{Left: 5, Top: 5, Right: 15, Bottom: 15}}, true},
		{"second of many overlaps", []core.Rect{
			{Left: 30, Top: 0, Right: 40, Bottom: 10},
			{Left: 9, Top: 9, Right: 12, Bottom: 12},
		}, true},
		{"all far away", []core.Rect{
			{Left: 30, Top: 0, Right: 40, Bottom: 10},
			{Left: 0, Top: 10, Right: 10, Bottom: 20},
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasCollision(player, tc.obstacles); got != tc.expected {
				t.Errorf("HasCollision() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDetectorPixelRefinement(t *testing.T) {
	// Left half opaque, right half transparent.
	leftHalf := NewSprite("█ ", "█ ")
	// Right half opaque, left half transparent.
	rightHalf := NewSprite(" █", " █")

	pixel := NewDetector(config.CollisionConfig{PixelPerfect: true, Resolution: 2})
	boxes := NewDetector(config.CollisionConfig{PixelPerfect: false})

	// a's transparent right half overlaps b's transparent left half.
	a := Body{Rect: core.NewRect(0, 0, 10, 10), Sprite: leftHalf}
	b := Body{Rect: core.NewRect(6, 0, 10, 10), Sprite: rightHalf}

	if !boxes.Collides(a, []Body{b}) {
		t.Error("bounding boxes overlap, box-only detector should collide")
	}
	if pixel.Collides(a, []Body{b}) {
		t.Error("only transparent padding overlaps, pixel detector should not collide")
	}

	// Opaque halves overlap.
	c := Body{Rect: core.NewRect(2, 0, 10, 10), Sprite: leftHalf}
	if !pixel.Collides(a, []Body{c}) {
		t.Error("opaque cells overlap, pixel detector should collide")
	}
}

func TestDetectorSolidBodies(t *testing.T) {
	d := NewDetector(config.CollisionConfig{PixelPerfect: true, Resolution: 2})
	a := Body{Rect: core.NewRect(0, 0, 10, 10)}

	if !d.Collides(a, []Body{{Rect: core.NewRect(5, 5, 10, 10)}}) {
		t.Error("solid bodies overlapping should collide")
	}
	if d.Collides(a, []Body{{Rect: core.NewRect(10, 0, 10, 10)}}) {
		t.Error("solid bodies sharing an edge should not collide")
	}
	// 0.3 units at 2 samples per unit rounds down to zero samples.
	if d.Collides(a, []Body{{Rect: core.NewRect(9.7, 0, 10, 10)}}) {
		t.Error("overlap thinner than one sample should not collide")
	}
}

func TestSpriteSampling(t *testing.T) {
	s := NewSprite("ab", "c")

	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 2x2", s.Width(), s.Height())
	}
	if s.At(0.75, 0.25) != 'b' {
		t.Errorf("At(0.75, 0.25) = %q, expected 'b'", s.At(0.75, 0.25))
	}
	if s.Opaque(0.75, 0.75) {
		t.Error("padded cell should be transparent")
	}
	if s.Opaque(1.0, 0.5) || s.Opaque(-0.1, 0.5) {
		t.Error("samples outside the sprite should be transparent")
	}

	var solid *Sprite
	if !solid.Opaque(0.5, 0.5) {
		t.Error("nil sprite should be solid inside")
	}
	if solid.Opaque(1.5, 0.5) {
		t.Error("nil sprite should be transparent outside")
	}
}
