package game

import (
	"github.com/aevtikheev/starships-game/internal/canvas"
	"github.com/aevtikheev/starships-game/internal/frames"
	"github.com/aevtikheev/starships-game/internal/input"
	"github.com/aevtikheev/starships-game/internal/task"
)

// Spaceship is the player-controlled ship. Position is the top-left corner of
// the current frame, real-valued so sub-cell velocity accumulates between
// ticks. Once GameOver is set the ship is frozen and its task yields forever.
type Spaceship struct {
	Row, Col float64
	GameOver bool
	Task     *task.Task
}

// SpaceshipConfig carries the shared state handles a spaceship task needs.
type SpaceshipConfig struct {
	Canvas        *canvas.Canvas
	Frames        []frames.Frame // animation cycle; all frames share one size
	Poll          func() input.Controls
	Scheduler     *task.Scheduler
	Registry      *Registry
	Clock         *Clock
	GameOverFrame frames.Frame
	StartRow      float64
	StartCol      float64
}

// NewSpaceship creates the spaceship and its controller task. The task is not
// registered with the scheduler; the caller spawns it.
func NewSpaceship(cfg SpaceshipConfig) *Spaceship {
	s := &Spaceship{Row: cfg.StartRow, Col: cfg.StartCol}
	s.Task = task.New(func(y *task.Yielder) {
		s.run(cfg, y)
	})
	return s
}

func (s *Spaceship) run(cfg SpaceshipConfig, y *task.Yielder) {
	var rowSpeed, colSpeed float64
	frameIdx, hold := 0, 0
	rows, cols := cfg.Canvas.Size()

	for {
		ctl := cfg.Poll()
		rowSpeed, colSpeed = UpdateSpeed(rowSpeed, colSpeed, ctl.Rows, ctl.Cols)
		s.Row += rowSpeed
		s.Col += colSpeed

		frame := cfg.Frames[frameIdx]
		height, width := frame.Size()
		s.Row = clampPos(s.Row, BorderWidth, rows-BorderWidth-height)
		s.Col = clampPos(s.Col, BorderWidth, cols-BorderWidth-width)

		if ctl.Fire && cfg.Clock.Year >= PlasmaGunYear {
			cfg.Scheduler.Spawn(NewFire(cfg.Canvas, cfg.Registry, s.Row-1, s.Col+float64(width)/2))
		}

		row, col := round(s.Row), round(s.Col)
		frame.Draw(cfg.Canvas, row, col)

		if o := cfg.Registry.Collides(row, col, height, width); o != nil {
			cfg.Registry.MarkHit(o.ID)
			cfg.Scheduler.Spawn(NewGameOver(cfg.Canvas, cfg.GameOverFrame))
			s.GameOver = true
			// The ship stays drawn and never responds again.
			for {
				y.Yield()
			}
		}

		y.Yield()
		frame.Erase(cfg.Canvas, row, col)

		hold++
		if hold >= ShipFrameHoldTics {
			hold = 0
			frameIdx = (frameIdx + 1) % len(cfg.Frames)
		}
	}
}

func clampPos(v float64, lo, hi int) float64 {
	if v < float64(lo) {
		return float64(lo)
	}
	if v > float64(hi) {
		return float64(hi)
	}
	return v
}
