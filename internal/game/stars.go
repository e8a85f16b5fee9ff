package game

import (
	"github.com/aevtikheev/starships-game/internal/canvas"
	"github.com/aevtikheev/starships-game/internal/task"
)

// Brightness phase durations of a blinking star, in tics.
const (
	starDimTics        = 20
	starBoldTics       = 5
	starBeforeBoldTics = 3
	starAfterBoldTics  = 3
)

// NewStar creates a task that blinks a single star forever. offset delays the
// first cycle so that stars sharing the same phase table desynchronize.
func NewStar(c *canvas.Canvas, row, col int, symbol rune, offset int) *task.Task {
	return task.New(func(y *task.Yielder) {
		for i := 0; i < offset; i++ {
			c.SetChar(row, col, symbol, canvas.Dim)
			y.Yield()
		}
		for {
			for i := 0; i < starBeforeBoldTics; i++ {
				c.SetChar(row, col, symbol, canvas.Normal)
				y.Yield()
			}
			for i := 0; i < starBoldTics; i++ {
				c.SetChar(row, col, symbol, canvas.Bold)
				y.Yield()
			}
			for i := 0; i < starAfterBoldTics; i++ {
				c.SetChar(row, col, symbol, canvas.Normal)
				y.Yield()
			}
			for i := 0; i < starDimTics; i++ {
				c.SetChar(row, col, symbol, canvas.Dim)
				y.Yield()
			}
		}
	})
}
