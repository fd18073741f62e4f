package dino

import (
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// Pose is the player's current animation frame.
type Pose int

const (
	PoseStand Pose = iota // airborne or idle
	PoseRun0
	PoseRun1
	PoseLose
)

// Player is the runner. It stays at a fixed x while the world scrolls past
// and only moves vertically.
type Player struct {
	cfg       config.PlayerConfig
	groundY   float64
	altitude  float64 // height of the player's feet above ground, >= 0
	velocity  float64 // upward velocity, units per ms
	airborne  bool
	runFrame  int
	frameTime float64 // ms accumulated towards the next run frame
	lost      bool
}

// NewPlayer creates a player standing on the ground.
func NewPlayer(cfg config.PlayerConfig, groundY float64) *Player {
	return &Player{cfg: cfg, groundY: groundY}
}

// Advance integrates the run animation and the jump arc by delta ms.
// speedScale only affects the run cadence.
func (p *Player) Advance(delta, speedScale float64) {
	if p.lost {
		return
	}
	p.advanceRun(delta, speedScale)
	p.advanceJump(delta)
}

func (p *Player) advanceRun(delta, speedScale float64) {
	if p.airborne {
		return
	}
	if p.cfg.FrameTime > 0 && p.frameTime >= p.cfg.FrameTime {
		p.runFrame = (p.runFrame + 1) % 2
		p.frameTime -= p.cfg.FrameTime
	}
	p.frameTime += delta * speedScale
}

func (p *Player) advanceJump(delta float64) {
	if !p.airborne {
		return
	}
	p.altitude = core.ClampF(p.altitude+p.velocity*delta, 0, p.groundY)
	if p.altitude == 0 && p.velocity <= 0 {
		p.altitude = 0
		p.velocity = 0
		p.airborne = false
		return
	}
	p.velocity -= p.cfg.Gravity * delta
}

// Jump launches the player. It is ignored while airborne and reports
// whether the jump started.
func (p *Player) Jump() bool {
	if p.airborne || p.lost {
		return false
	}
	p.velocity = p.cfg.JumpSpeed
	p.airborne = true
	return true
}

// Lose freezes the player in the lose pose.
func (p *Player) Lose() {
	p.lost = true
}

// Airborne reports whether the player is in the air.
func (p *Player) Airborne() bool {
	return p.airborne
}

// Altitude returns the height of the player's feet above the ground.
func (p *Player) Altitude() float64 {
	return p.altitude
}

// Velocity returns the current upward velocity.
func (p *Player) Velocity() float64 {
	return p.velocity
}

// Pose returns the current animation pose.
func (p *Player) Pose() Pose {
	switch {
	case p.lost:
		return PoseLose
	case p.airborne:
		return PoseStand
	case p.runFrame == 0:
		return PoseRun0
	default:
		return PoseRun1
	}
}

// Rect returns the player's bounding rectangle in world coordinates.
func (p *Player) Rect() core.Rect {
	top := p.groundY - p.altitude - p.cfg.Height
	return core.NewRect(p.cfg.X, top, p.cfg.Width, p.cfg.Height)
}

// Body returns the player's collision body for the current pose.
func (p *Player) Body() Body {
	return Body{Rect: p.Rect(), Sprite: poseSprite(p.Pose())}
}
