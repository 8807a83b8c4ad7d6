package simplot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrMissingColumn   = errors.New("missing required column")
	ErrUnknownProperty = errors.New("unknown property")
)

// ParseLog extracts the requested thermo properties from a LAMMPS log.
// The first line is the column headings; it must contain "Step". Every
// following line is one whitespace-delimited row per timestep. The
// returned series all have the same length as steps.
func ParseLog(r io.Reader, properties []string) (steps []int, props map[string][]float64, err error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, nil, fmt.Errorf("%w: empty log file", ErrBadFormat)
	}
	headings := strings.Fields(scanner.Text())
	// heading -> column position, built once instead of searching the
	// headings for every row
	index := make(map[string]int, len(headings))
	for i, h := range headings {
		index[h] = i
	}
	if _, ok := index["Step"]; !ok {
		return nil, nil, fmt.Errorf("%w: log file has no %q column", ErrMissingColumn, "Step")
	}
	for _, p := range properties {
		if _, ok := index[p]; !ok {
			return nil, nil, fmt.Errorf("%w: %q is not in the log header", ErrUnknownProperty, p)
		}
	}
	props = make(map[string][]float64, len(properties))
	si := index["Step"]
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if si >= len(fields) {
			return nil, nil, fmt.Errorf("%w: row %q is missing column %q",
				ErrBadFormat, scanner.Text(), "Step")
		}
		step, err := strconv.Atoi(fields[si])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: step %q", ErrBadFormat, fields[si])
		}
		steps = append(steps, step)
		for _, p := range properties {
			i := index[p]
			if i >= len(fields) {
				return nil, nil, fmt.Errorf("%w: row %q is missing column %q",
					ErrBadFormat, scanner.Text(), p)
			}
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %s value %q", ErrBadFormat, p, fields[i])
			}
			props[p] = append(props[p], v)
		}
	}
	return steps, props, scanner.Err()
}
