package simplot

import (
	"errors"
	"math"
	"os"
	"strings"
	"testing"
)

func TestParseRunData(t *testing.T) {
	f, err := os.Open("testfiles/run_data")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rd, err := ParseRunData(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(rd.Endpoints) != 2 {
		t.Fatalf("got %d endpoints, wanted 2\n", len(rd.Endpoints))
	}
	wantRefs := map[string]float64{"B": -6.0, "N": -8.0}
	for form, want := range wantRefs {
		if got := rd.References[form]; got != want {
			t.Errorf("reference %s: got %v, wanted %v\n", form, got, want)
		}
	}
	wantEform := []float64{0.0, 0.0, -2.0, -2.0}
	if len(rd.Entries) != len(wantEform) {
		t.Fatalf("got %d entries, wanted %d\n", len(rd.Entries), len(wantEform))
	}
	for i, want := range wantEform {
		got := rd.Entries[i].FormationEnergy
		if math.Abs(got-want) > eps {
			t.Errorf("entry %d: got %v, wanted %v\n", i, got, want)
		}
	}
}

// An endpoint that never occurs among the rows keeps a zero reference
// instead of failing; the formation energies then simply omit that term.
func TestParseRunDataMissingEndpoint(t *testing.T) {
	data := `Composition space endpoints: B C
	 id	 composition	 total energy	 epa	 num calcs	 best value
1 B2 -12.0 -6.0 1 -6.0
`
	rd, err := ParseRunData(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if got := rd.References["C"]; got != 0 {
		t.Errorf("got %v, wanted 0 reference for an absent endpoint\n", got)
	}
	if got := rd.Entries[0].FormationEnergy; got != 0 {
		t.Errorf("got %v, wanted 0\n", got)
	}
}

// Compound endpoints have no per-element atomic fraction to weight
// their reference energies with, so they are rejected up front instead
// of silently contributing nothing.
func TestParseRunDataCompoundEndpoint(t *testing.T) {
	data := `Composition space endpoints: GaN AlN
	 id	 composition	 total energy	 epa	 num calcs	 best value
1 Ga2N2 -24.0 -6.0 1 -6.0
`
	_, err := ParseRunData(strings.NewReader(data))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v, wanted ErrUnsupported\n", err)
	}
}

func TestParseRunDataTooShort(t *testing.T) {
	_, err := ParseRunData(strings.NewReader("Composition space endpoints: B N\n"))
	if err == nil {
		t.Error("wanted an error for a run_data file without a header")
	}
}
