package core

import (
	"math"
	"unicode/utf8"
)

// Align controls horizontal text placement relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the drawing collaborator a game renders into.
// All coordinates are world units.
type Surface interface {
	// Clear resets the region to the host's default background.
	Clear(region Box)
	// FillRect paints a rectangle.
	FillRect(r Box, c Color)
	// FillCircle paints a disc centered at (cx, cy).
	FillCircle(cx, cy, radius float64, c Color)
	// FillText writes text anchored at (x, y). Size is a font size hint.
	FillText(text string, x, y, size float64, align Align, c Color)
}

// Canvas adapts a Screen to the Surface interface by scaling world
// coordinates into cells. A canvas always maps the whole world onto the
// whole screen, so resizing the screen rescales the picture.
type Canvas struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewCanvas creates a canvas that maps a worldW x worldH playfield onto screen.
func NewCanvas(screen *Screen, worldW, worldH float64) *Canvas {
	return &Canvas{screen: screen, worldW: worldW, worldH: worldH}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// cellX converts a world x-coordinate to a fractional column.
func (c *Canvas) cellX(x float64) float64 {
	return x * float64(c.screen.Width()) / c.worldW
}

// cellY converts a world y-coordinate to a fractional row.
func (c *Canvas) cellY(y float64) float64 {
	return y * float64(c.screen.Height()) / c.worldH
}

// usable reports whether both the world and the screen have area.
func (c *Canvas) usable() bool {
	return c.worldW > 0 && c.worldH > 0 && c.screen.Width() > 0 && c.screen.Height() > 0
}

// CellsToWorldY converts a vertical distance in cells to world units.
func (c *Canvas) CellsToWorldY(cells float64) float64 {
	if !c.usable() {
		return 0
	}
	return cells * c.worldH / float64(c.screen.Height())
}

// cellRect returns the cells touched by b. Any box with positive area
// covers at least one cell so small details stay visible.
func (c *Canvas) cellRect(b Box) Rect {
	if b.W <= 0 || b.H <= 0 || !c.usable() {
		return Rect{}
	}
	x0 := int(math.Floor(c.cellX(b.X)))
	y0 := int(math.Floor(c.cellY(b.Y)))
	x1 := max(int(math.Ceil(c.cellX(b.Right()))), x0+1)
	y1 := max(int(math.Ceil(c.cellY(b.Bottom()))), y0+1)
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Clear implements Surface.
func (c *Canvas) Clear(region Box) {
	r := c.cellRect(region)
	if r.Empty() {
		return
	}
	c.screen.ClearRect(r)
}

// FillRect implements Surface.
func (c *Canvas) FillRect(r Box, col Color) {
	cells := c.cellRect(r)
	if cells.Empty() {
		return
	}
	c.screen.Paint(cells, col)
}

// FillCircle implements Surface. A cell is painted when its center lies
// inside the circle.
func (c *Canvas) FillCircle(cx, cy, radius float64, col Color) {
	if radius <= 0 {
		return
	}
	bounds := c.cellRect(NewBox(cx-radius, cy-radius, radius*2, radius*2))
	if bounds.Empty() {
		return
	}
	r2 := radius * radius
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			wx := (float64(x) + 0.5) * c.worldW / float64(c.screen.Width())
			wy := (float64(y) + 0.5) * c.worldH / float64(c.screen.Height())
			dx, dy := wx-cx, wy-cy
			if dx*dx+dy*dy <= r2 {
				c.screen.PaintCell(x, y, col)
			}
		}
	}
}

// FillText implements Surface. Terminal cells have a single font size,
// so size is ignored.
func (c *Canvas) FillText(text string, x, y, _ float64, align Align, col Color) {
	if !c.usable() {
		return
	}
	n := utf8.RuneCountInString(text)
	col0 := int(math.Round(c.cellX(x)))
	switch align {
	case AlignCenter:
		col0 -= n / 2
	case AlignRight:
		col0 -= n
	}
	row := int(math.Floor(c.cellY(y)))
	c.screen.DrawText(col0, row, text, col)
}
