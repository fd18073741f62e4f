package core

// Color is a semantic foreground color for a screen cell.
// The platform layer maps it to concrete terminal colors per theme.
type Color uint8

// Semantic colors used by the runner.
const (
	ColorDefault Color = iota
	ColorPlayer
	ColorObstacle
	ColorGround
	ColorHUD
	ColorAccent
	ColorDanger
)
