package dino

// Sprite is a small rune bitmap. Spaces are transparent; every other rune is
// opaque. Sprites are sampled proportionally, so their size in runes is
// independent of the world size of the entity that uses them.
type Sprite struct {
	width  int
	height int
	rows   [][]rune
}

// NewSprite builds a sprite from text rows. Short rows are padded with
// transparent cells.
func NewSprite(rows ...string) *Sprite {
	s := &Sprite{height: len(rows)}
	s.rows = make([][]rune, len(rows))
	for i, row := range rows {
		s.rows[i] = []rune(row)
		if len(s.rows[i]) > s.width {
			s.width = len(s.rows[i])
		}
	}
	for i := range s.rows {
		for len(s.rows[i]) < s.width {
			s.rows[i] = append(s.rows[i], ' ')
		}
	}
	return s
}

// Width returns the sprite width in runes.
func (s *Sprite) Width() int { return s.width }

// Height returns the sprite height in runes.
func (s *Sprite) Height() int { return s.height }

// At returns the rune at fractional coordinates u, v in [0, 1).
// Coordinates outside the sprite are transparent.
func (s *Sprite) At(u, v float64) rune {
	if s == nil || s.width == 0 || s.height == 0 {
		return ' '
	}
	if u < 0 || u >= 1 || v < 0 || v >= 1 {
		return ' '
	}
	return s.rows[int(v*float64(s.height))][int(u*float64(s.width))]
}

// Opaque reports whether the sprite is solid at fractional coordinates u, v.
// A nil sprite is a solid block.
func (s *Sprite) Opaque(u, v float64) bool {
	if s == nil {
		return u >= 0 && u < 1 && v >= 0 && v < 1
	}
	return s.At(u, v) != ' '
}

// Player sprites, one per pose.
var (
	spriteStand = NewSprite(
		"    ▟██▙",
		"    █▀██",
		"█  ▟██▀ ",
		"▜████▛  ",
		" ▐▌ ▐▌  ",
	)
	spriteRun0 = NewSprite(
		"    ▟██▙",
		"    █▀██",
		"█  ▟██▀ ",
		"▜████▛  ",
		" ▐▌  ▀  ",
	)
	spriteRun1 = NewSprite(
		"    ▟██▙",
		"    █▀██",
		"█  ▟██▀ ",
		"▜████▛  ",
		"  ▀ ▐▌  ",
	)
	spriteLose = NewSprite(
		"    ▟██▙",
		"    █x██",
		"█  ▟██▀ ",
		"▜████▛  ",
		" ▐▌ ▐▌  ",
	)
)

// obstacleSprites maps catalog variant names to art. Unknown names render
// and collide as solid blocks.
var obstacleSprites = map[string]*Sprite{
	"small": NewSprite(
		" ▐▌ ",
		"▙▐▌▟",
		"▝▜▛▘",
		" ▐▌ ",
	),
	"large": NewSprite(
		"  ▐▌  ",
		"▙ ▐▌  ",
		"▜▄▐▌ ▟",
		"  ▐▙▄▛",
		"  ▐▌  ",
	),
	"pair": NewSprite(
		" ▐▌   ▐▌ ",
		"▙▐▌▟ ▙▐▌▟",
		"▝▜▛▘ ▝▜▛▘",
		" ▐▌   ▐▌ ",
	),
}

func poseSprite(p Pose) *Sprite {
	switch p {
	case PoseRun0:
		return spriteRun0
	case PoseRun1:
		return spriteRun1
	case PoseLose:
		return spriteLose
	default:
		return spriteStand
	}
}
