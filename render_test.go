package simplot

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDashes(t *testing.T) {
	for _, style := range []string{"solid", "dotted", "dashed", "dashdot"} {
		if _, err := Dashes(style); err != nil {
			t.Errorf("%s: %v\n", style, err)
		}
	}
	if _, err := Dashes("wavy"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, wanted ErrBadFormat\n", err)
	}
}

func TestSavePNG(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlot(cfg)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 4}
	if err := AddLine(p, cfg, xs, ys, color.Black, "dashed", "series"); err != nil {
		t.Fatal(err)
	}
	if err := AddScatter(p, xs, ys, color.Black); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "figures", "out.png")
	if err := SavePNG(p, cfg, path, 4, 3); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("got an empty PNG")
	}
}
