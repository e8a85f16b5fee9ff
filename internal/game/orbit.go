package game

import (
	"math/rand"

	"github.com/aevtikheev/starships-game/internal/canvas"
	"github.com/aevtikheev/starships-game/internal/frames"
	"github.com/aevtikheev/starships-game/internal/task"
)

// NewOrbitSpawner creates the task that fills the orbit with garbage at the
// cadence the scenario dictates for the current year. Before the first
// threshold year it idles, re-checking every tic.
func NewOrbitSpawner(c *canvas.Canvas, reg *Registry, sched *task.Scheduler, clock *Clock, garbage []frames.Frame, rng *rand.Rand) *task.Task {
	return task.New(func(y *task.Yielder) {
		_, cols := c.Size()
		for {
			delay, ok := GarbageDelay(clock.Year)
			if !ok {
				y.Yield()
				continue
			}
			frame := garbage[rng.Intn(len(garbage))]
			column := BorderWidth + rng.Intn(cols-2*BorderWidth)
			sched.Spawn(NewGarbage(c, reg, column, frame))
			y.Sleep(delay)
		}
	})
}
