package game

import (
	"github.com/aevtikheev/starships-game/internal/canvas"
	"github.com/aevtikheev/starships-game/internal/frames"
	"github.com/aevtikheev/starships-game/internal/task"
)

// NewGameOver creates the task that redraws the game-over banner centered on
// the canvas forever. Ending the game means a frozen ship plus this banner,
// not a scheduler shutdown.
func NewGameOver(c *canvas.Canvas, banner frames.Frame) *task.Task {
	return task.New(func(y *task.Yielder) {
		rows, cols := c.Size()
		height, width := banner.Size()
		row := rows/2 - height/2
		col := cols/2 - width/2
		for {
			banner.Draw(c, row, col)
			y.Yield()
		}
	})
}
