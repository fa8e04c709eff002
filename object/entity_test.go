package object

import (
	"encoding/json"
	"image/color"
	"testing"
)

type fillCall struct {
	x, y, w, h float64
	c          color.Color
}

type recordingSurface struct {
	fills []fillCall
}

func (s *recordingSurface) Clear() {}

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.fills = append(s.fills, fillCall{x, y, w, h, c})
}

func TestDrawFillsSquareAtPosition(t *testing.T) {
	s := &recordingSurface{}
	New(12, 34, "a", false).Draw(s)

	if len(s.fills) != 1 {
		t.Fatalf("got %d fills, want 1", len(s.fills))
	}
	want := fillCall{12, 34, Size, Size, Color}
	if s.fills[0] != want {
		t.Fatalf("fill = %+v, want %+v", s.fills[0], want)
	}
}

func TestIDDecodesStringsAndNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{`"a"`, "a"},
		{`7`, "7"},
		{`"7"`, "7"},
	}
	for _, tt := range tests {
		var id ID
		if err := json.Unmarshal([]byte(tt.in), &id); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.in, err)
		}
		if id != tt.want {
			t.Fatalf("Unmarshal(%s) = %q, want %q", tt.in, id, tt.want)
		}
	}

	var id ID
	if err := json.Unmarshal([]byte(`true`), &id); err == nil {
		t.Fatalf("Unmarshal(true) succeeded, want error")
	}
}
