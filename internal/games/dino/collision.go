package dino

import (
	"math"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// Body is a collidable entity: its bounding rectangle and the sprite whose
// opaque cells make up its actual shape.
type Body struct {
	Rect   core.Rect
	Sprite *Sprite
}

// HasCollision reports whether the player rectangle overlaps any obstacle
// rectangle. Touching edges do not count.
func HasCollision(player core.Rect, obstacles []core.Rect) bool {
	for _, o := range obstacles {
		if player.Intersects(o) {
			return true
		}
	}
	return false
}

// Detector performs bounding-box collision tests, optionally refined by an
// opacity test over the overlapping region.
type Detector struct {
	pixelPerfect bool
	resolution   float64
}

// NewDetector creates a detector from collision config.
func NewDetector(cfg config.CollisionConfig) Detector {
	return Detector{
		pixelPerfect: cfg.PixelPerfect,
		resolution:   cfg.Resolution,
	}
}

// Collides reports whether the player body touches any obstacle body.
func (d Detector) Collides(player Body, obstacles []Body) bool {
	for _, o := range obstacles {
		if !player.Rect.Intersects(o.Rect) {
			continue
		}
		if !d.pixelPerfect || d.masksOverlap(player, o) {
			return true
		}
	}
	return false
}

// masksOverlap rasterises both sprites into the overlap region and reports
// whether any sample is opaque in both. An overlap narrower than one sample
// in either direction never collides.
func (d Detector) masksOverlap(a, b Body) bool {
	overlap, ok := a.Rect.Intersection(b.Rect)
	if !ok {
		return false
	}

	cols := int(math.Floor(overlap.Width() * d.resolution))
	rows := int(math.Floor(overlap.Height() * d.resolution))
	if cols == 0 || rows == 0 {
		return false
	}

	stepX := overlap.Width() / float64(cols)
	stepY := overlap.Height() / float64(rows)
	for j := 0; j < rows; j++ {
		y := overlap.Top + (float64(j)+0.5)*stepY
		for i := 0; i < cols; i++ {
			x := overlap.Left + (float64(i)+0.5)*stepX
			if opaqueAt(a, x, y) && opaqueAt(b, x, y) {
				return true
			}
		}
	}
	return false
}

// opaqueAt samples a body's sprite at world point (x, y).
func opaqueAt(b Body, x, y float64) bool {
	u := (x - b.Rect.Left) / b.Rect.Width()
	v := (y - b.Rect.Top) / b.Rect.Height()
	return b.Sprite.Opaque(u, v)
}
