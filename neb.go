package simplot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ParseNEB reads a VTST neb.dat file: the second token of each line is
// the raw position of an image along the reaction path and the third is
// its energy. Positions are normalized by the largest in the set so the
// path spans [0, 1].
func ParseNEB(r io.Reader) (positions, energies []float64, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, nil, fmt.Errorf("%w: neb.dat row %q", ErrBadFormat, line)
		}
		pos, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: image position %q", ErrBadFormat, fields[1])
		}
		e, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: image energy %q", ErrBadFormat, fields[2])
		}
		positions = append(positions, pos)
		energies = append(energies, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(positions) == 0 {
		return nil, nil, fmt.Errorf("%w: neb.dat has no images", ErrBadFormat)
	}
	max := floats.Max(positions)
	if max <= 0 {
		return nil, nil, fmt.Errorf("%w: reaction path has no extent", ErrBadFormat)
	}
	for i := range positions {
		positions[i] /= max
	}
	return positions, energies, nil
}
