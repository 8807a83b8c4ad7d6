package simplot

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	got, err := ParseColor("red")
	if err != nil {
		t.Fatal(err)
	}
	if got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("got %v, wanted opaque red\n", got)
	}
	got, err = ParseColor("#00ff00")
	if err != nil {
		t.Fatal(err)
	}
	if got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("got %v, wanted opaque green\n", got)
	}
	if _, err := ParseColor("chartreuse-ish"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, wanted ErrBadFormat\n", err)
	}
}

func TestColormap(t *testing.T) {
	colors, err := Colormap("kindlmann", 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 4 {
		t.Errorf("got %d colors, wanted 4\n", len(colors))
	}
	if _, err := Colormap("not_a_colormap", 3); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, wanted ErrBadFormat\n", err)
	}
}

func TestDefaultColors(t *testing.T) {
	colors := DefaultColors(3)
	if len(colors) != 3 {
		t.Fatalf("got %d colors, wanted 3\n", len(colors))
	}
	if colors[0] == colors[1] {
		t.Error("wanted distinct colors from the default cycle")
	}
}

func TestSeriesColors(t *testing.T) {
	colors, err := SeriesColors(SeriesOpts{Colors: []string{"black", "#102030"}}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if colors[1] != (color.RGBA{0x10, 0x20, 0x30, 255}) {
		t.Errorf("got %v, wanted #102030\n", colors[1])
	}
	if _, err := SeriesColors(SeriesOpts{Cmap: "bogus"}, 2); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, wanted ErrBadFormat\n", err)
	}
	colors, err = SeriesColors(SeriesOpts{}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 4 {
		t.Errorf("got %d colors, wanted 4\n", len(colors))
	}
}
