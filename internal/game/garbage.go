package game

import (
	"github.com/aevtikheev/starships-game/internal/canvas"
	"github.com/aevtikheev/starships-game/internal/frames"
	"github.com/aevtikheev/starships-game/internal/task"
)

// NewGarbage creates a task that drops one piece of garbage straight down
// from the top of the playfield. The task registers an obstacle for its
// frame's bounding box and removes it on every exit path: struck by a
// projectile (explodes), fallen past the bottom, or never, if the process
// dies first.
func NewGarbage(c *canvas.Canvas, reg *Registry, column int, frame frames.Frame) *task.Task {
	return task.New(func(y *task.Yielder) {
		rows, cols := c.Size()
		height, width := frame.Size()

		if column < BorderWidth {
			column = BorderWidth
		}
		if column > cols-BorderWidth-width {
			column = cols - BorderWidth - width
		}

		row := float64(BorderWidth)
		obstacle := reg.Add(round(row), column, height, width)
		defer reg.Remove(obstacle.ID)

		for row < float64(rows-BorderWidth) {
			if reg.ConsumeHit(obstacle.ID) {
				explode(y, c, row+float64(height)/2, float64(column)+float64(width)/2)
				return
			}
			frame.Draw(c, round(row), column)
			y.Yield()
			frame.Erase(c, round(row), column)
			row += GarbageSpeed
			obstacle.Row = round(row)
		}
	})
}
