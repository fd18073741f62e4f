package dino

import (
	"math"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// viewport maps world coordinates onto screen cells.
type viewport struct {
	originX, originY float64
	scale            float64
	box              core.Box
}

func newViewport(dst *core.Screen, worldW, worldH, scale float64) viewport {
	w := int(math.Round(worldW * scale))
	h := int(math.Round(worldH * scale))
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	return viewport{
		originX: float64(x),
		originY: float64(y),
		scale:   scale,
		box:     core.NewBox(x, y, w, h),
	}
}

// toWorld returns the world coordinates of a cell center.
func (v viewport) toWorld(col, row int) (float64, float64) {
	return (float64(col) + 0.5 - v.originX) / v.scale, (float64(row) + 0.5 - v.originY) / v.scale
}

func (v viewport) inside(col, row int) bool {
	return col >= v.box.X && col < v.box.Right() && row >= v.box.Y && row < v.box.Bottom()
}

// Render draws the world into dst at scale cells per world unit, centered,
// and returns the screen box the world occupies. HUD text is left to the
// platform's View.
func (d *Driver) Render(dst *core.Screen, scale float64) core.Box {
	if scale <= 0 {
		return core.Box{}
	}
	vp := newViewport(dst, d.cfg.World.Width, d.cfg.World.Height, scale)

	d.drawGround(dst, vp)
	for _, b := range d.obstacles.Bodies() {
		drawBody(dst, vp, b, core.ColorObstacle)
	}
	color := core.ColorPlayer
	if d.round.Phase == PhaseLost {
		color = core.ColorDanger
	}
	drawBody(dst, vp, d.player.Body(), color)

	return vp.box
}

func (d *Driver) drawGround(dst *core.Screen, vp viewport) {
	row := int(math.Floor(vp.originY + d.cfg.World.GroundY*vp.scale))
	if row >= vp.box.Bottom() {
		row = vp.box.Bottom() - 1
	}
	dst.DrawHLine(vp.box.X, row, vp.box.W, '─', core.ColorGround)

	if row+1 >= vp.box.Bottom() {
		return
	}
	for col := vp.box.X; col < vp.box.Right(); col++ {
		x, _ := vp.toWorld(col, row+1)
		if r := d.ground.TextureAt(x); r != ' ' {
			dst.SetColor(col, row+1, r, core.ColorGround)
		}
	}
}

// drawBody samples the body's sprite at every cell its rectangle covers.
func drawBody(dst *core.Screen, vp viewport, b Body, color core.Color) {
	if b.Rect.Empty() {
		return
	}
	col0 := int(math.Floor(vp.originX + b.Rect.Left*vp.scale))
	col1 := int(math.Ceil(vp.originX + b.Rect.Right*vp.scale))
	row0 := int(math.Floor(vp.originY + b.Rect.Top*vp.scale))
	row1 := int(math.Ceil(vp.originY + b.Rect.Bottom*vp.scale))

	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			if !vp.inside(col, row) {
				continue
			}
			x, y := vp.toWorld(col, row)
			u := (x - b.Rect.Left) / b.Rect.Width()
			v := (y - b.Rect.Top) / b.Rect.Height()
			if u < 0 || u >= 1 || v < 0 || v >= 1 {
				continue
			}

			r := '█'
			if b.Sprite != nil {
				r = b.Sprite.At(u, v)
			}
			if r != ' ' {
				dst.SetColor(col, row, r, color)
			}
		}
	}
}
