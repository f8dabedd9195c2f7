package core

import "testing"

func TestCanvasFillRectScales(t *testing.T) {
	// 80x40 cells for an 800x400 world: 10 world units per cell.
	s := NewScreen(80, 40)
	c := NewCanvas(s, 800, 400)
	red := MustHex("#ff0000")

	c.FillRect(NewBox(100, 50, 30, 20), red)

	if s.GetCell(10, 5).Bg != red {
		t.Error("top-left cell of the box should be painted")
	}
	if s.GetCell(12, 6).Bg != red {
		t.Error("bottom-right cell of the box should be painted")
	}
	if !s.GetCell(13, 5).Bg.IsZero() {
		t.Error("cell right of the box should stay clear")
	}
	if !s.GetCell(9, 5).Bg.IsZero() {
		t.Error("cell left of the box should stay clear")
	}
}

func TestCanvasTinyBoxCoversOneCell(t *testing.T) {
	s := NewScreen(80, 40)
	c := NewCanvas(s, 800, 400)

	c.FillRect(NewBox(401, 201, 2, 2), ColorWhite)
	if s.GetCell(40, 20).Bg != ColorWhite {
		t.Error("a box smaller than a cell should still paint its cell")
	}
}

func TestCanvasOffscreenIsClipped(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCanvas(s, 100, 100)

	// Must not panic
	c.FillRect(NewBox(120, 10, 48, 48), ColorWhite)
	c.FillRect(NewBox(-60, -10, 48, 48), ColorWhite)
	c.FillCircle(-100, -100, 5, ColorWhite)
	c.FillText("far away", 500, 500, 20, AlignCenter, ColorWhite)
}

func TestCanvasFillCircle(t *testing.T) {
	s := NewScreen(20, 20)
	c := NewCanvas(s, 20, 20)

	c.FillCircle(10, 10, 3, ColorWhite)

	if s.GetCell(10, 10).Bg != ColorWhite {
		t.Error("circle center should be painted")
	}
	if !s.GetCell(13, 13).Bg.IsZero() {
		t.Error("corner of the bounding square should stay clear")
	}
}

func TestCanvasFillTextAlign(t *testing.T) {
	s := NewScreen(20, 3)
	c := NewCanvas(s, 20, 3)

	c.FillText("Game", 10, 1, 32, AlignCenter, ColorWhite)
	if got := s.Row(1)[8:12]; got != "Game" {
		t.Errorf("centered text = %q at columns 8-11, row %q", got, s.Row(1))
	}

	c.FillText("End", 20, 2, 20, AlignRight, ColorWhite)
	if got := s.Row(2)[17:]; got != "End" {
		t.Errorf("right-aligned text = %q, row %q", got, s.Row(2))
	}
}

func TestCanvasClear(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCanvas(s, 10, 10)

	c.FillRect(NewBox(0, 0, 10, 10), ColorWhite)
	c.Clear(NewBox(0, 0, 10, 10))

	if !s.GetCell(5, 5).Bg.IsZero() {
		t.Error("Clear should reset painted cells")
	}
}

func TestCanvasCellsToWorldY(t *testing.T) {
	s := NewScreen(80, 20)
	c := NewCanvas(s, 800, 400)

	if got := c.CellsToWorldY(2); got != 40 {
		t.Errorf("CellsToWorldY(2) = %v, expected 40", got)
	}
}
