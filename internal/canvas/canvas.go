// Package canvas provides the shared drawing surface: a cell grid of glyphs
// rendered to a terminal as ANSI escape sequences.
package canvas

import "io"

// Emphasis selects the rendering intensity of a cell.
type Emphasis int

const (
	Normal Emphasis = iota
	Bold
	Dim
)

// Cell is one drawable position on the canvas.
type Cell struct {
	Ch   rune
	Emph Emphasis
}

var blank = Cell{Ch: ' ', Emph: Normal}

// Canvas is an in-memory cell grid. Flush renders only the cells that changed
// since the previous flush, so callers can redraw freely every tick.
type Canvas struct {
	rows, cols int
	cells      []Cell // flat: [row*cols + col]
	prev       []Cell // state as of the last Flush
	bell       bool
}

// New creates a blank canvas of the given dimensions.
func New(rows, cols int) *Canvas {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	c := &Canvas{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
		prev:  make([]Cell, rows*cols),
	}
	for i := range c.cells {
		c.cells[i] = blank
		c.prev[i] = blank
	}
	return c
}

// Size returns the canvas dimensions as (rows, cols).
func (c *Canvas) Size() (rows, cols int) {
	return c.rows, c.cols
}

// SetChar places a glyph at (row, col). Positions outside the canvas are
// ignored.
func (c *Canvas) SetChar(row, col int, ch rune, emph Emphasis) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return
	}
	c.cells[row*c.cols+col] = Cell{Ch: ch, Emph: emph}
}

// CharAt returns the glyph at (row, col), or a space outside the canvas.
func (c *Canvas) CharAt(row, col int) rune {
	return c.CellAt(row, col).Ch
}

// CellAt returns the cell at (row, col), or a blank cell outside the canvas.
func (c *Canvas) CellAt(row, col int) Cell {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return blank
	}
	return c.cells[row*c.cols+col]
}

// WriteText places a string left to right starting at (row, col), clipping
// at the canvas edge.
func (c *Canvas) WriteText(row, col int, text string, emph Emphasis) {
	for _, ch := range text {
		c.SetChar(row, col, ch, emph)
		col++
	}
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blank
	}
}

// DrawBorder draws a box frame on the outermost cells.
func (c *Canvas) DrawBorder() {
	top, bottom := 0, c.rows-1
	left, right := 0, c.cols-1
	for col := left + 1; col < right; col++ {
		c.SetChar(top, col, '─', Normal)
		c.SetChar(bottom, col, '─', Normal)
	}
	for row := top + 1; row < bottom; row++ {
		c.SetChar(row, left, '│', Normal)
		c.SetChar(row, right, '│', Normal)
	}
	c.SetChar(top, left, '┌', Normal)
	c.SetChar(top, right, '┐', Normal)
	c.SetChar(bottom, left, '└', Normal)
	c.SetChar(bottom, right, '┘', Normal)
}

// Bell queues an audible alert for the next Flush.
func (c *Canvas) Bell() {
	c.bell = true
}

// Flush writes every cell changed since the previous flush to w as ANSI
// cursor moves plus the glyph, with bold/dim rendered as SGR attributes.
func (c *Canvas) Flush(w io.Writer) error {
	cw := NewChunkWriter(w)
	for i, cell := range c.cells {
		if cell == c.prev[i] {
			continue
		}
		cw.MoveCursor(i%c.cols+1, i/c.cols+1)
		switch cell.Emph {
		case Bold:
			cw.WriteString("\033[1m")
			cw.WriteRune(cell.Ch)
			cw.WriteString("\033[0m")
		case Dim:
			cw.WriteString("\033[2m")
			cw.WriteRune(cell.Ch)
			cw.WriteString("\033[0m")
		default:
			cw.WriteRune(cell.Ch)
		}
		c.prev[i] = cell
	}
	if c.bell {
		cw.WriteString("\a")
		c.bell = false
	}
	return cw.Flush()
}
