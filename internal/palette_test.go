package internal

import (
	"image/color"
	"regexp"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestPaletteEntriesAreHexTriplets(t *testing.T) {
	for i, c := range Palette() {
		if !hexColor.MatchString(c) {
			t.Errorf("Palette()[%d] = %q, want #RRGGBB", i, c)
		}
	}
}

func TestPaletteSize(t *testing.T) {
	if got := len(Palette()); got != PaletteSize {
		t.Errorf("len(Palette()) = %d, want %d", got, PaletteSize)
	}
	if PaletteSize < 40 {
		t.Errorf("PaletteSize = %d, want a few dozen colors", PaletteSize)
	}
}

func TestPaletteIsACopy(t *testing.T) {
	p := Palette()
	p[0] = "#000000"
	if got := PaletteColor(0); got != "#00538A" {
		t.Errorf("PaletteColor(0) = %s after modifying a copy, want #00538A", got)
	}
}

func TestPaletteHasNoDuplicates(t *testing.T) {
	seen := map[string]int{}
	for i, c := range Palette() {
		if j, ok := seen[c]; ok {
			t.Errorf("Palette()[%d] duplicates Palette()[%d] (%s)", i, j, c)
		}
		seen[c] = i
	}
}

func TestPaletteExcludesPureRedAndGreen(t *testing.T) {
	reserved := map[string]colorful.Color{
		"red":   {R: 1, G: 0, B: 0},
		"green": {R: 0, G: 1, B: 0},
	}
	for i, c := range Palette() {
		parsed, err := colorful.Hex(c)
		if err != nil {
			t.Fatalf("colorful.Hex(%q) error = %v", c, err)
		}
		for name, r := range reserved {
			if strings.EqualFold(parsed.Hex(), r.Hex()) {
				t.Errorf("Palette()[%d] is pure %s", i, name)
			}
		}
	}
}

func TestNeighbouringColorsAreDistinct(t *testing.T) {
	p := Palette()
	for i := 1; i < len(p); i++ {
		a, _ := colorful.Hex(p[i-1])
		b, _ := colorful.Hex(p[i])
		if d := a.DistanceCIEDE2000(b); d < 0.02 {
			t.Errorf("Palette()[%d] and Palette()[%d] are too close (%s, %s, distance %.3f)", i-1, i, p[i-1], p[i], d)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "#00538A"},
		{1, "#F4C800"},
		{PaletteSize - 1, "#B37347"},
		{PaletteSize, "#00538A"},
		{PaletteSize + 2, "#F13A13"},
		{-1, "#B37347"},
	}
	for _, tt := range tests {
		if got := PaletteColor(tt.i); got != tt.want {
			t.Errorf("PaletteColor(%d) = %s, want %s", tt.i, got, tt.want)
		}
	}
}

func TestPaletteRGBA(t *testing.T) {
	want := color.RGBA{R: 0x00, G: 0x53, B: 0x8A, A: 0xFF}
	if got := PaletteRGBA(0); got != want {
		t.Errorf("PaletteRGBA(0) = %v, want %v", got, want)
	}
	if got := PaletteRGBA(PaletteSize); got != want {
		t.Errorf("PaletteRGBA(%d) = %v, want %v", PaletteSize, got, want)
	}
}
