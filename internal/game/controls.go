package game

import (
	"github.com/aevtikheev/starships-game/internal/input"
	"github.com/aevtikheev/starships-game/internal/task"
)

// NewControlsPoller creates the task that drains the input stream once per
// tick, and a read function returning the controls from the latest drain.
// Draining lives in its own task so a quit key works even when every consumer
// has stopped polling, like the frozen ship after a collision. quit is called
// on each tick the player requested to leave.
func NewControlsPoller(stream *input.Stream, quit func()) (*task.Task, func() input.Controls) {
	var current input.Controls
	tk := task.New(func(y *task.Yielder) {
		for {
			current = input.ReadControls(stream)
			if current.Quit && quit != nil {
				quit()
			}
			y.Yield()
		}
	})
	return tk, func() input.Controls { return current }
}
