package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Errorf("dimensions = %dx%d, expected 10x5", s.Width(), s.Height())
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("cell (%d,%d) = %+v, expected blank default", x, y, cell)
			}
		}
	}
}

func TestSetAndGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '█')
	if s.Get(3, 2) != '█' {
		t.Errorf("Get(3,2) = %q, expected '█'", s.Get(3, 2))
	}

	s.SetCell(4, 1, '●', ColorBrightCyan)
	cell := s.GetCell(4, 1)
	if cell.Rune != '●' || cell.Color != ColorBrightCyan {
		t.Errorf("GetCell(4,1) = %+v, expected '●' bright cyan", cell)
	}
}

func TestOutOfBoundsIsIgnored(t *testing.T) {
	s := NewScreen(10, 5)

	// These should not panic
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	// And reads should return a blank cell
	if s.Get(-1, 0) != ' ' {
		t.Errorf("Get(-1,0) = %q, expected space", s.Get(-1, 0))
	}
	if s.Get(10, 5) != ' ' {
		t.Errorf("Get(10,5) = %q, expected space", s.Get(10, 5))
	}
}

func TestClearResetsColor(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, '●', ColorOrange)

	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v, expected blank default", cell)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText did not place text: got %q%q", s.Get(2, 1), s.Get(3, 1))
	}
}

func TestDrawTextClipsAtEdge(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(3, 0, "long") // Only "lo" fits

	if s.Get(3, 0) != 'l' || s.Get(4, 0) != 'o' {
		t.Errorf("clipped text wrong: got %q%q", s.Get(3, 0), s.Get(4, 0))
	}
}

func TestDrawTextColored(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", ColorGray)

	for x := 0; x < 2; x++ {
		if s.GetCell(x, 0).Color != ColorGray {
			t.Errorf("cell (%d,0) color = %v, expected gray", x, s.GetCell(x, 0).Color)
		}
	}
}

func TestDrawTextMultibyteAdvancesOneCellPerRune(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(0, 0, "▸ a ✦", ColorBrightWhite)

	expected := []rune{'▸', ' ', 'a', ' ', '✦'}
	for i, r := range expected {
		if s.Get(i, 0) != r {
			t.Errorf("cell (%d,0) = %q, expected %q", i, s.Get(i, 0), r)
		}
	}
	// Nothing should spill past the last rune
	if s.Get(len(expected), 0) != ' ' {
		t.Errorf("cell (%d,0) = %q, expected blank", len(expected), s.Get(len(expected), 0))
	}
}

func TestDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "▸▸") // Two runes, six bytes; should start at x=4

	if s.Get(4, 0) != '▸' || s.Get(5, 0) != '▸' {
		t.Errorf("centered multibyte text misplaced: row = %q", s.String())
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextCentered(1, "ab") // Should start at x=4

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' {
		t.Errorf("centered text misplaced: row = %q", strings.Split(s.String(), "\n")[1])
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4)

	corners := []struct {
		x, y     int
		expected rune
	}{
		{0, 0, '┌'},
		{5, 0, '┐'},
		{0, 3, '└'},
		{5, 3, '┘'},
	}
	for _, c := range corners {
		if s.Get(c.x, c.y) != c.expected {
			t.Errorf("corner (%d,%d) = %q, expected %q", c.x, c.y, s.Get(c.x, c.y), c.expected)
		}
	}

	if s.Get(2, 0) != '─' || s.Get(2, 3) != '─' {
		t.Error("horizontal edges not drawn")
	}
	if s.Get(0, 1) != '│' || s.Get(5, 2) != '│' {
		t.Error("vertical edges not drawn")
	}
}

func TestFillRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(1, 1, 3, 2, '#')

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("cell (%d,%d) = %q, expected '#'", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(0, 0) != ' ' || s.Get(4, 1) != ' ' {
		t.Error("FillRect drew outside the rect")
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.SetCell(2, 1, '●', ColorOrange)

	s.Resize(10, 8)

	if s.Width() != 10 || s.Height() != 8 {
		t.Errorf("dimensions = %dx%d, expected 10x8", s.Width(), s.Height())
	}
	cell := s.GetCell(2, 1)
	if cell.Rune != '●' || cell.Color != ColorOrange {
		t.Errorf("cell after grow = %+v, expected preserved", cell)
	}
	if s.Get(8, 6) != ' ' {
		t.Error("new area not blank after grow")
	}
}

func TestResizeShrinkClips(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(5, 3, 'X')
	s.Set(1, 1, 'Y')

	s.Resize(3, 2)

	if s.Get(1, 1) != 'Y' {
		t.Errorf("surviving cell = %q, expected 'Y'", s.Get(1, 1))
	}
	// Out-of-bounds read after shrink
	if s.Get(5, 3) != ' ' {
		t.Errorf("clipped cell = %q, expected space", s.Get(5, 3))
	}
}

func TestString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}
