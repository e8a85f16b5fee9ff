package game

import (
	"fmt"

	"github.com/aevtikheev/starships-game/internal/canvas"
	"github.com/aevtikheev/starships-game/internal/task"
)

// Clock is the in-game calendar. The year-clock task is its sole writer;
// everything else only reads.
type Clock struct {
	Year int
}

// NewClock starts the calendar at the scenario's first year.
func NewClock() *Clock {
	return &Clock{Year: StartYear}
}

// NewYearClock creates the task that advances the year by one every
// TicsPerYear tics, forever.
func NewYearClock(clock *Clock) *task.Task {
	return task.New(func(y *task.Yielder) {
		for {
			y.Sleep(TicsPerYear)
			clock.Year++
		}
	})
}

// Caption position, inside the border in the top-left corner.
const (
	captionRow = BorderWidth
	captionCol = BorderWidth + 1
)

// NewCaption creates the task that redraws the year display each tick,
// with flavor text for notable years.
func NewCaption(c *canvas.Canvas, clock *Clock) *task.Task {
	return task.New(func(y *task.Yielder) {
		prevLen := 0
		for {
			text := fmt.Sprintf("Year %d", clock.Year)
			if phrase, ok := Phrase(clock.Year); ok {
				text += ": " + phrase
			}
			c.WriteText(captionRow, captionCol, text, canvas.Bold)
			// Blank the tail left over from a longer caption.
			for i := len(text); i < prevLen; i++ {
				c.SetChar(captionRow, captionCol+i, ' ', canvas.Normal)
			}
			prevLen = len(text)
			y.Yield()
		}
	})
}
