// Package game implements the simulation: the shared spatial model and the
// gameplay tasks driven by the cooperative scheduler.
package game

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/aevtikheev/starships-game/internal/canvas"
	"github.com/aevtikheev/starships-game/internal/frames"
	"github.com/aevtikheev/starships-game/internal/input"
	"github.com/aevtikheev/starships-game/internal/task"
)

// Assets is the glyph art a game needs. Loading it is the only fallible step
// of startup; the simulation itself cannot fail.
type Assets struct {
	Rocket   []frames.Frame
	Garbage  []frames.Frame
	GameOver frames.Frame
}

// LoadAssets loads every embedded frame the game uses.
func LoadAssets() (Assets, error) {
	var a Assets
	for _, name := range []string{"rocket_frame_1", "rocket_frame_2"} {
		f, err := frames.Load(name)
		if err != nil {
			return Assets{}, err
		}
		a.Rocket = append(a.Rocket, f)
	}
	for _, name := range frames.GarbageNames {
		f, err := frames.Load(name)
		if err != nil {
			return Assets{}, err
		}
		a.Garbage = append(a.Garbage, f)
	}
	f, err := frames.Load("game_over")
	if err != nil {
		return Assets{}, err
	}
	a.GameOver = f
	return a, nil
}

// Run drives a complete game on the canvas, flushing to w every tic, until
// the context is cancelled or the player quits.
func Run(ctx context.Context, w io.Writer, c *canvas.Canvas, stream *input.Stream) error {
	assets, err := LoadAssets()
	if err != nil {
		return err
	}

	rows, cols := c.Size()
	if rows < minRows || cols < minCols {
		return fmt.Errorf("terminal too small: %dx%d, need at least %dx%d", cols, rows, minCols, minRows)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	canvas.HideCursor(w)
	defer canvas.ShowCursor(w)
	canvas.ClearScreen(w)

	c.DrawBorder()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sched := task.NewScheduler()
	reg := NewRegistry()
	clock := NewClock()

	// Spawned first so every other task sees this tick's input.
	controls, readControls := NewControlsPoller(stream, cancel)
	sched.Spawn(controls)

	for i := 0; i < StarCount; i++ {
		row := BorderWidth + rng.Intn(rows-2*BorderWidth)
		col := BorderWidth + rng.Intn(cols-2*BorderWidth)
		symbol := rune(StarSymbols[rng.Intn(len(StarSymbols))])
		sched.Spawn(NewStar(c, row, col, symbol, 1+rng.Intn(MaxBlinkOffset)))
	}

	shipHeight, shipWidth := assets.Rocket[0].Size()
	ship := NewSpaceship(SpaceshipConfig{
		Canvas:        c,
		Frames:        assets.Rocket,
		Poll:          readControls,
		Scheduler:     sched,
		Registry:      reg,
		Clock:         clock,
		GameOverFrame: assets.GameOver,
		StartRow:      float64(rows/2 - shipHeight/2),
		StartCol:      float64(cols/2 - shipWidth/2),
	})
	sched.Spawn(ship.Task)

	sched.Spawn(NewYearClock(clock))
	sched.Spawn(NewCaption(c, clock))
	sched.Spawn(NewOrbitSpawner(c, reg, sched, clock, assets.Garbage, rng))

	sched.Run(ctx, func() {
		_ = c.Flush(w)
	})
	sched.Stop()

	canvas.ClearScreen(w)
	return nil
}
