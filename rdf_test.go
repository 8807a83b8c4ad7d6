package simplot

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestParseRDF(t *testing.T) {
	f, err := os.Open("testfiles/rdf.dat")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	distances, data, err := ParseRDF(f, []int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	wantDist := []float64{0.5, 1.5}
	if !approxEqual(distances, wantDist) {
		t.Errorf("got %v, wanted %v\n", distances, wantDist)
	}
	rows, cols := data[0].Dims()
	if rows != 2 || cols != len(distances) {
		t.Errorf("got a %dx%d block matrix, wanted 2x%d\n", rows, cols, len(distances))
	}
	// blocks [1 2] and [3 4] average to [2 3]
	want0 := []float64{2.0, 3.0}
	if got := AverageRDF(data[0]); !approxEqual(got, want0) {
		t.Errorf("got %v, wanted %v\n", got, want0)
	}
	want1 := []float64{4.0, 6.0}
	if got := AverageRDF(data[1]); !approxEqual(got, want1) {
		t.Errorf("got %v, wanted %v\n", got, want1)
	}
}

func TestParseRDFTruncatedBlock(t *testing.T) {
	rdf := `# comment
# comment
100 3
1 0.5 1.0
2 1.5 2.0
`
	_, _, err := ParseRDF(strings.NewReader(rdf), []int{0})
	if !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, wanted ErrBadFormat\n", err)
	}
}

func TestParseRDFMissingColumn(t *testing.T) {
	rdf := `# comment
# comment
100 1
1 0.5 1.0
`
	_, _, err := ParseRDF(strings.NewReader(rdf), []int{3})
	if !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, wanted ErrBadFormat\n", err)
	}
}

func TestParseRDFRaggedBlocks(t *testing.T) {
	rdf := `# comment
# comment
100 2
1 0.5 1.0
2 1.5 2.0
200 1
1 0.5 3.0
`
	_, _, err := ParseRDF(strings.NewReader(rdf), []int{0})
	if !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, wanted ErrBadFormat\n", err)
	}
}
