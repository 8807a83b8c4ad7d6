package simplot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ParseRDF reads a multi-block LAMMPS RDF dump. The first two lines are
// comments. Each block starts with a two-token header line whose second
// token is the number of rows in the block; the body rows are
// (bin id, distance, g(r) columns...). The requested column indices count
// g(r) columns only, so column 0 is the third token of a body row.
//
// The distance axis is captured from the first block and assumed to be
// identical for every later block, as LAMMPS writes it. Block row counts
// are checked against the first block so the stacked matrices stay
// rectangular; the distance values themselves are not re-validated.
//
// The result maps each requested column to an (n_blocks x n_bins) matrix
// with one row per block.
func ParseRDF(r io.Reader, columns []int) (distances []float64, data map[int]*mat.Dense, err error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(lines) < 2 {
		return nil, nil, fmt.Errorf("%w: RDF file is missing its comment header", ErrBadFormat)
	}
	lines = lines[2:]
	raw := make(map[int][]float64, len(columns))
	var nblocks int
	for i := 0; i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) != 2 {
			continue
		}
		nrows, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: block header %q", ErrBadFormat, lines[i])
		}
		if i+nrows >= len(lines) {
			return nil, nil, fmt.Errorf("%w: block at line %d wants %d rows past the end of the file",
				ErrBadFormat, i+3, nrows)
		}
		if distances != nil && nrows != len(distances) {
			return nil, nil, fmt.Errorf("%w: block of %d rows after a first block of %d",
				ErrBadFormat, nrows, len(distances))
		}
		first := distances == nil
		for _, row := range lines[i+1 : i+1+nrows] {
			fields := strings.Fields(row)
			if first {
				if len(fields) < 2 {
					return nil, nil, fmt.Errorf("%w: RDF row %q", ErrBadFormat, row)
				}
				d, err := strconv.ParseFloat(fields[1], 64)
				if err != nil {
					return nil, nil, fmt.Errorf("%w: distance %q", ErrBadFormat, fields[1])
				}
				distances = append(distances, d)
			}
			for _, col := range columns {
				// skip the bin id and distance columns
				off := col + 2
				if off >= len(fields) {
					return nil, nil, fmt.Errorf("%w: RDF row %q has no column %d",
						ErrBadFormat, row, col)
				}
				v, err := strconv.ParseFloat(fields[off], 64)
				if err != nil {
					return nil, nil, fmt.Errorf("%w: g(r) value %q", ErrBadFormat, fields[off])
				}
				raw[col] = append(raw[col], v)
			}
		}
		nblocks++
		i += nrows
	}
	if nblocks == 0 {
		return nil, nil, fmt.Errorf("%w: no timestep blocks found", ErrBadFormat)
	}
	data = make(map[int]*mat.Dense, len(columns))
	for _, col := range columns {
		data[col] = mat.NewDense(nblocks, len(distances), raw[col])
	}
	return distances, data, nil
}

// AverageRDF collapses a stacked (n_blocks x n_bins) column matrix into
// the time-averaged g(r) curve, the mean over the block axis.
func AverageRDF(m *mat.Dense) []float64 {
	_, cols := m.Dims()
	avg := make([]float64, cols)
	for j := 0; j < cols; j++ {
		avg[j] = stat.Mean(mat.Col(nil, j, m), nil)
	}
	return avg
}
