package simplot

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestParseNEB(t *testing.T) {
	f, err := os.Open("testfiles/neb.dat")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	positions, energies, err := ParseNEB(f)
	if err != nil {
		t.Fatal(err)
	}
	wantPos := []float64{0.0, 0.5, 1.0}
	if !approxEqual(positions, wantPos) {
		t.Errorf("got %v, wanted %v\n", positions, wantPos)
	}
	wantE := []float64{0.0, 0.5, 0.1}
	if !approxEqual(energies, wantE) {
		t.Errorf("got %v, wanted %v\n", energies, wantE)
	}
}

func TestParseNEBShortRow(t *testing.T) {
	neb := "0 0.0\n"
	if _, _, err := ParseNEB(strings.NewReader(neb)); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, wanted ErrBadFormat\n", err)
	}
}

func TestParseNEBEmpty(t *testing.T) {
	if _, _, err := ParseNEB(strings.NewReader("")); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, wanted ErrBadFormat\n", err)
	}
}
