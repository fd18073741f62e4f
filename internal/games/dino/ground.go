package dino

import (
	"github.com/vovakirdan/tui-dino/internal/config"
)

// Ground is the scrolling ground strip: identical segments laid end to end.
// A segment that scrolls fully past the left edge jumps behind the last one.
type Ground struct {
	lefts        []float64
	segmentWidth float64
	speed        float64
}

// NewGround lays out the segments starting at x = 0.
func NewGround(cfg config.GroundConfig) *Ground {
	g := &Ground{
		lefts:        make([]float64, cfg.Segments),
		segmentWidth: cfg.SegmentWidth,
		speed:        cfg.Speed,
	}
	for i := range g.lefts {
		g.lefts[i] = float64(i) * cfg.SegmentWidth
	}
	return g
}

// Advance scrolls the ground left by delta * speedScale * speed.
func (g *Ground) Advance(delta, speedScale float64) {
	shift := delta * speedScale * g.speed
	span := g.segmentWidth * float64(len(g.lefts))
	for i := range g.lefts {
		g.lefts[i] -= shift
		for g.lefts[i] <= -g.segmentWidth {
			g.lefts[i] += span
		}
	}
}

// SegmentLefts returns the left edge of each segment.
func (g *Ground) SegmentLefts() []float64 {
	return g.lefts
}

// SegmentWidth returns the width of one segment.
func (g *Ground) SegmentWidth() float64 {
	return g.segmentWidth
}

// Covers reports whether the segments leave no gap over [from, to].
func (g *Ground) Covers(from, to float64) bool {
	x := from
	for progressed := true; progressed && x < to; {
		progressed = false
		for _, l := range g.lefts {
			if l <= x && x < l+g.segmentWidth {
				x = l + g.segmentWidth
				progressed = true
			}
		}
	}
	return x >= to
}

// TextureAt returns a ground texture rune for world x. The pattern is tied to
// segment position, so it scrolls with the ground.
func (g *Ground) TextureAt(x float64) rune {
	for _, l := range g.lefts {
		if l <= x && x < l+g.segmentWidth {
			return groundTexture[int(x-l)%len(groundTexture)]
		}
	}
	return ' '
}

var groundTexture = []rune("  ·    ˙   _    ·  .     ˙    _  ·       ")
