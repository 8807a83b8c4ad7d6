package simplot

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestParseLog(t *testing.T) {
	f, err := os.Open("testfiles/log.lammps")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	steps, props, err := ParseLog(f, []string{"Temp", "Press"})
	if err != nil {
		t.Fatal(err)
	}
	wantSteps := []int{0, 100, 200}
	if !reflect.DeepEqual(steps, wantSteps) {
		t.Errorf("got %v, wanted %v\n", steps, wantSteps)
	}
	wantTemp := []float64{300.0, 310.0, 305.0}
	if !approxEqual(props["Temp"], wantTemp) {
		t.Errorf("got %v, wanted %v\n", props["Temp"], wantTemp)
	}
	for name, series := range props {
		if len(series) != len(steps) {
			t.Errorf("%s: got %d values for %d steps\n", name, len(series), len(steps))
		}
	}
}

func TestParseLogMissingStep(t *testing.T) {
	log := "Temp Press\n300.0 1.0\n"
	_, _, err := ParseLog(strings.NewReader(log), []string{"Temp"})
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("got %v, wanted ErrMissingColumn\n", err)
	}
}

// LAMMPS logs routinely carry short non-tabular lines around the thermo
// table; a row that ends before the Step column is an error, not a panic.
func TestParseLogShortRow(t *testing.T) {
	log := "Temp Step\n300.0 0\n310.0\n"
	_, _, err := ParseLog(strings.NewReader(log), []string{"Temp"})
	if !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, wanted ErrBadFormat\n", err)
	}
}

func TestParseLogUnknownProperty(t *testing.T) {
	log := "Step Temp\n0 300.0\n"
	_, _, err := ParseLog(strings.NewReader(log), []string{"Volume"})
	if !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("got %v, wanted ErrUnknownProperty\n", err)
	}
}
