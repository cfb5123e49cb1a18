package draw

import (
	"io"
	"strconv"
	"strings"
)

// maxChunkSize bounds single writes so frames flow smoothly over slow
// transports like SSH.
const maxChunkSize = 4096

// Canvas is a rune framebuffer for one terminal frame. Cleared, drawn into
// and rendered once per tick; rendering moves the cursor home and repaints
// every row, which avoids flicker-prone full clears.
type Canvas struct {
	width  int
	height int
	cells  []rune
	buf    strings.Builder
	numBuf [20]byte
}

// NewCanvas creates a canvas with the given dimensions in terminal cells.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize adjusts the canvas to new terminal dimensions.
func (c *Canvas) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == c.width && height == c.height && c.cells != nil {
		return
	}
	c.width = width
	c.height = height
	c.cells = make([]rune, width*height)
	c.Clear()
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = ' '
	}
}

// Set writes a rune at (col, row). Out-of-bounds writes are dropped.
func (c *Canvas) Set(col, row int, r rune) {
	if col < 0 || col >= c.width || row < 0 || row >= c.height {
		return
	}
	c.cells[row*c.width+col] = r
}

// SetString writes a string starting at (col, row), clipped to the row.
func (c *Canvas) SetString(col, row int, s string) {
	for _, r := range s {
		c.Set(col, row, r)
		col++
	}
}

// SetStringCentered writes a string centered on the given row.
func (c *Canvas) SetStringCentered(row int, s string) {
	c.SetString((c.width-len([]rune(s)))/2, row, s)
}

// Render writes the whole frame to w in bounded chunks.
func (c *Canvas) Render(w io.Writer) error {
	c.buf.Reset()
	for row := 0; row < c.height; row++ {
		c.moveCursor(1, row+1)
		start := row * c.width
		for col := 0; col < c.width; col++ {
			c.buf.WriteRune(c.cells[start+col])
		}
	}

	data := c.buf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// moveCursor appends an ANSI cursor position sequence (1-based) without
// allocating.
func (c *Canvas) moveCursor(col, row int) {
	c.buf.WriteString("\033[")
	c.buf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.buf.WriteByte(';')
	c.buf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.buf.WriteByte('H')
}
