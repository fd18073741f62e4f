package dino

import (
	"math/rand"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// Variant is one entry of the obstacle catalog.
type Variant struct {
	Name   string
	Width  float64
	Height float64
	Sprite *Sprite
}

// Obstacle is a ground obstacle the player must jump over.
type Obstacle struct {
	X       float64 // Left edge in world units
	Variant *Variant
}

// Rect returns the collision rectangle for this obstacle standing on groundY.
func (o Obstacle) Rect(groundY float64) core.Rect {
	return core.NewRect(o.X, groundY-o.Variant.Height, o.Variant.Width, o.Variant.Height)
}

// ObstacleSet handles spawning, movement, and removal of obstacles.
type ObstacleSet struct {
	obstacles   []Obstacle
	catalog     []Variant
	rng         *rand.Rand
	enabled     bool
	speed       float64
	intervalMin float64
	intervalMax float64
	nextSpawn   float64 // ms until the next spawn
	worldW      float64
	groundY     float64
}

// NewObstacleSet creates an empty obstacle set drawing from rng.
// The first obstacle appears after the minimum spawn interval.
func NewObstacleSet(cfg config.ObstacleConfig, world config.WorldConfig, rng *rand.Rand) *ObstacleSet {
	catalog := make([]Variant, len(cfg.Catalog))
	for i, v := range cfg.Catalog {
		catalog[i] = Variant{
			Name:   v.Name,
			Width:  v.Width,
			Height: v.Height,
			Sprite: obstacleSprites[v.Name],
		}
	}

	return &ObstacleSet{
		obstacles:   make([]Obstacle, 0, 8),
		catalog:     catalog,
		rng:         rng,
		enabled:     cfg.Enabled && len(catalog) > 0,
		speed:       cfg.Speed,
		intervalMin: cfg.IntervalMin,
		intervalMax: cfg.IntervalMax,
		nextSpawn:   cfg.IntervalMin,
		worldW:      world.Width,
		groundY:     world.GroundY,
	}
}

// Advance moves obstacles left, drops the ones that left the world and
// spawns a new one when the spawn timer runs out. Spawn intervals shrink as
// speedScale grows.
func (s *ObstacleSet) Advance(delta, speedScale float64) {
	shift := delta * speedScale * s.speed
	for i := range s.obstacles {
		s.obstacles[i].X -= shift
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X+o.Variant.Width > 0 {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	if !s.enabled {
		return
	}
	if s.nextSpawn <= 0 {
		s.spawn()
		s.nextSpawn = s.randomInterval() / speedScale
	}
	s.nextSpawn -= delta
}

// spawn appends a random catalog variant at the right edge of the world.
func (s *ObstacleSet) spawn() {
	v := &s.catalog[s.rng.Intn(len(s.catalog))]
	s.obstacles = append(s.obstacles, Obstacle{X: s.worldW, Variant: v})
}

func (s *ObstacleSet) randomInterval() float64 {
	return s.intervalMin + s.rng.Float64()*(s.intervalMax-s.intervalMin)
}

// Obstacles returns the live obstacles, oldest first.
func (s *ObstacleSet) Obstacles() []Obstacle {
	return s.obstacles
}

// Rects returns the bounding rectangle of every live obstacle.
func (s *ObstacleSet) Rects() []core.Rect {
	rects := make([]core.Rect, len(s.obstacles))
	for i, o := range s.obstacles {
		rects[i] = o.Rect(s.groundY)
	}
	return rects
}

// Bodies returns the collision body of every live obstacle.
func (s *ObstacleSet) Bodies() []Body {
	bodies := make([]Body, len(s.obstacles))
	for i, o := range s.obstacles {
		bodies[i] = Body{Rect: o.Rect(s.groundY), Sprite: o.Variant.Sprite}
	}
	return bodies
}
