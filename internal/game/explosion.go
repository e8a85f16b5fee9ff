package game

import (
	"github.com/aevtikheev/starships-game/internal/canvas"
	"github.com/aevtikheev/starships-game/internal/frames"
	"github.com/aevtikheev/starships-game/internal/task"
)

var explosionFrames = []frames.Frame{
	frames.New("   (_)\n" +
		"  (   (\n" +
		"   (  (\n" +
		"    ( )"),
	frames.New("  (  ( (\n" +
		" ( )   (\n" +
		"  ( ) (\n" +
		"   ( )"),
	frames.New("   ( )\n" +
		"  (  .\n" +
		"   . :\n" +
		"    ."),
	frames.New("    .\n" +
		"   . :\n" +
		"    :\n" +
		"    ."),
}

// explode plays the timed explosion animation centered on (centerRow,
// centerCol), one tic per frame, with an audible alert on the first one.
// Runs inline within the calling task.
func explode(y *task.Yielder, c *canvas.Canvas, centerRow, centerCol float64) {
	c.Bell()
	for _, fr := range explosionFrames {
		h, w := fr.Size()
		row := round(centerRow) - h/2
		col := round(centerCol) - w/2
		fr.Draw(c, row, col)
		y.Yield()
		fr.Erase(c, row, col)
	}
}
