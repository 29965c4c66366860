package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width() = %d, want 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, want 5", s.Height())
	}

	// All cells should be spaces
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("Get(%d, %d) = %q, want space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, want 'X'", s.Get(3, 2))
	}

	// Out of bounds set should be ignored
	s.Set(-1, 0, 'A')
	s.Set(0, -1, 'B')
	s.Set(10, 0, 'C')
	s.Set(0, 5, 'D')

	// Out of bounds get returns space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 100) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(4, 1, 'F', ColorBrightRed)

	cell := s.GetCell(4, 1)
	if cell.Rune != 'F' {
		t.Errorf("GetCell rune = %q, want 'F'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("GetCell color = %d, want ColorBrightRed", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(4, 1, 'G')
	if s.GetCell(4, 1).Color != ColorDefault {
		t.Error("Set should reset the color to default")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, 'X', ColorGreen)
	s.Clear()

	if s.Get(2, 2) != ' ' {
		t.Error("Clear should reset cells to space")
	}
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("Clear should reset cell colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if s.Row(1) != "  hello   " {
		t.Errorf("Row(1) = %q, want %q", s.Row(1), "  hello   ")
	}

	// Clipped text
	s.DrawText(8, 0, "world")
	if s.Get(8, 0) != 'w' || s.Get(9, 0) != 'o' {
		t.Error("DrawText should clip at screen edge")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(0, 0, "cat", ColorBrightYellow)

	for i := range "cat" {
		if s.GetCell(i, 0).Color != ColorBrightYellow {
			t.Errorf("cell %d should be colored", i)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextCentered(1, "ab")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' {
		t.Errorf("Row(1) = %q, centered text misplaced", s.Row(1))
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(6, 6)

	s.DrawHLine(1, 0, 4, '-')
	if s.Row(0) != " ---- " {
		t.Errorf("Row(0) = %q after DrawHLine", s.Row(0))
	}

	s.DrawVLine(0, 1, 3, '|')
	for y := 1; y <= 3; y++ {
		if s.Get(0, y) != '|' {
			t.Errorf("Get(0, %d) = %q, want '|'", y, s.Get(0, y))
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("After resize: %dx%d, want 20x10", s.Width(), s.Height())
	}

	// Content should be preserved
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	// Shrink below the content
	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("Shrunk screen should not expose old content out of bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if strings.Count(got, "\n") != 1 {
		t.Error("String() should join rows with newlines")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Row(-1) != "    " {
		t.Error("Out of bounds Row should return spaces")
	}
	if s.Row(5) != "    " {
		t.Error("Out of bounds Row should return spaces")
	}
}
