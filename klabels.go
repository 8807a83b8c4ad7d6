package simplot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// KLabel is one high-symmetry point on the k-path: its display label and
// its position along the path.
type KLabel struct {
	Label string
	K     float64
}

// ParseKLabels reads a VASPKIT KLABELS file. The header line is
// discarded and (label, position) rows are read up to the first blank
// line, which VASPKIT always writes before its closing remarks. The
// literal label GAMMA is rewritten to the Γ symbol for display.
func ParseKLabels(r io.Reader) ([]KLabel, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	end := -1
	for i, line := range lines {
		if line == "" {
			end = i
			break
		}
	}
	if end < 1 {
		return nil, fmt.Errorf("%w: KLABELS file has no blank-line terminator", ErrBadFormat)
	}
	var labels []KLabel
	for _, line := range lines[1:end] {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: KLABELS row %q", ErrBadFormat, line)
		}
		label := fields[0]
		if label == "GAMMA" {
			label = "Γ"
		}
		k, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: k position %q", ErrBadFormat, fields[1])
		}
		labels = append(labels, KLabel{Label: label, K: k})
	}
	return labels, nil
}
