package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x')
	if got := s.Get(3, 2); got != 'x' {
		t.Errorf("Get(3, 2) = %q, want 'x'", got)
	}

	// Out of bounds is silently ignored
	s.Set(-1, 0, 'y')
	s.Set(10, 0, 'y')
	s.Set(0, 5, 'y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetCell(1, 1, '#', ColorGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '#' {
		t.Errorf("GetCell rune = %q, want '#'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell color = %v, want ColorGreen", cell.Color)
	}

	// Plain Set resets the color
	s.Set(1, 1, '#')
	if got := s.GetCell(1, 1).Color; got != ColorDefault {
		t.Errorf("color after Set = %v, want ColorDefault", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(8, 3)
	s.FillRect(0, 0, 8, 3, '#', ColorRed)

	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 8; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) = %+v after Clear", x, y, cell)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'a')
	s.Set(9, 4, 'b')

	s.Resize(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	// Content within the new bounds survives
	if got := s.Get(2, 2); got != 'a' {
		t.Errorf("Get(2, 2) = %q after resize, want 'a'", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)

	s.DrawText(7, 0, "hello") // Clipped at the right edge
	if got := s.Row(0); got != "       hel" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(s.String(), "\n") != 1 {
		t.Errorf("String() should contain exactly one newline")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(5, 5)

	s.DrawHLine(0, 2, 5, '-', ColorDefault)
	if got := s.Row(2); got != "-----" {
		t.Errorf("Row(2) = %q", got)
	}

	s.DrawVLine(1, 0, 5, '|', ColorDefault)
	for y := 0; y < 5; y++ {
		want := '|'
		if y == 2 {
			want = '|' // VLine drawn after HLine overwrites the crossing
		}
		if got := s.Get(1, y); got != want {
			t.Errorf("Get(1, %d) = %q, want %q", y, got, want)
		}
	}
}
