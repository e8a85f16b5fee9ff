// Package frames provides glyph-art blocks: multi-line text fragments that
// can be measured, drawn onto a canvas and erased again.
package frames

import (
	"strings"

	"github.com/aevtikheev/starships-game/internal/canvas"
)

// Frame is an immutable glyph-art block. Every non-space character is one
// drawable cell; spaces are transparent.
type Frame struct {
	lines [][]rune
	rows  int
	cols  int
}

// New builds a frame from '\n'-delimited text. A single trailing newline is
// ignored so that file assets and string literals measure the same.
func New(text string) Frame {
	text = strings.TrimSuffix(text, "\n")
	var f Frame
	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		if len(runes) > f.cols {
			f.cols = len(runes)
		}
		f.lines = append(f.lines, runes)
	}
	f.rows = len(f.lines)
	return f
}

// Size returns the frame dimensions: (line count, longest line length).
func (f Frame) Size() (rows, cols int) {
	return f.rows, f.cols
}

// Draw places the frame with its top-left corner at (row, col). Cells outside
// the canvas are clipped; space characters never overwrite existing content.
func (f Frame) Draw(c *canvas.Canvas, row, col int) {
	f.put(c, row, col, false)
}

// Erase redraws the same non-space cells as spaces, removing the frame
// without touching cells it never drew.
func (f Frame) Erase(c *canvas.Canvas, row, col int) {
	f.put(c, row, col, true)
}

func (f Frame) put(c *canvas.Canvas, row, col int, negative bool) {
	for dr, line := range f.lines {
		for dc, ch := range line {
			if ch == ' ' {
				continue
			}
			if negative {
				ch = ' '
			}
			c.SetChar(row+dr, col+dc, ch, canvas.Normal)
		}
	}
}
