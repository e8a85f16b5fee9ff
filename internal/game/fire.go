package game

import (
	"math"

	"github.com/aevtikheev/starships-game/internal/canvas"
	"github.com/aevtikheev/starships-game/internal/task"
)

// NewFire creates a projectile task starting at (row, col) and travelling at
// a fixed velocity. It shows a one-tic spark, a one-tic shot glyph with an
// audible alert, then moves until it leaves the playfield or strikes a live
// obstacle. On a strike it records the obstacle's ID in the hit set and
// terminates without drawing again; the explosion belongs to the obstacle's
// own task.
func NewFire(c *canvas.Canvas, reg *Registry, row, col float64) *task.Task {
	return NewFireWithSpeed(c, reg, row, col, FireRowSpeed, FireColSpeed)
}

// NewFireWithSpeed is NewFire with an explicit velocity vector.
func NewFireWithSpeed(c *canvas.Canvas, reg *Registry, row, col, rowSpeed, colSpeed float64) *task.Task {
	return task.New(func(y *task.Yielder) {
		r := round(row)
		cl := round(col)

		c.SetChar(r, cl, '*', canvas.Normal)
		y.Yield()

		c.SetChar(r, cl, 'O', canvas.Normal)
		c.Bell()
		y.Yield()
		c.SetChar(r, cl, ' ', canvas.Normal)

		row += rowSpeed
		col += colSpeed

		symbol := '|'
		if colSpeed != 0 {
			symbol = '-'
		}

		rows, cols := c.Size()
		for {
			r, cl = round(row), round(col)
			if r < BorderWidth || r >= rows-BorderWidth || cl < BorderWidth || cl >= cols-BorderWidth {
				return
			}
			if o := reg.Collides(r, cl, 1, 1); o != nil {
				reg.MarkHit(o.ID)
				return
			}
			c.SetChar(r, cl, symbol, canvas.Normal)
			y.Yield()
			c.SetChar(r, cl, ' ', canvas.Normal)
			row += rowSpeed
			col += colSpeed
		}
	})
}

func round(v float64) int {
	return int(math.Round(v))
}
