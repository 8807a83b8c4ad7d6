package simplot

import (
	"errors"
	"fmt"
)

// ErrCountMismatch reports a per-series option list whose length does not
// match the number of data series.
var ErrCountMismatch = errors.New("count mismatch")

// SeriesOpts holds the optional per-series cosmetic arguments shared by
// the plotting commands. Empty lists mean "not supplied" and are filled
// with neutral defaults.
type SeriesOpts struct {
	Labels     []string
	Colors     []string
	Linestyles []string
	Cmap       string
}

// Check verifies that every supplied option list has exactly n entries.
func (s SeriesOpts) Check(n int) error {
	if len(s.Labels) > 0 && len(s.Labels) != n {
		return fmt.Errorf("%w: %d labels for %d data series", ErrCountMismatch, len(s.Labels), n)
	}
	if len(s.Colors) > 0 && len(s.Colors) != n {
		return fmt.Errorf("%w: %d colors for %d data series", ErrCountMismatch, len(s.Colors), n)
	}
	if len(s.Linestyles) > 0 && len(s.Linestyles) != n {
		return fmt.Errorf("%w: %d linestyles for %d data series", ErrCountMismatch, len(s.Linestyles), n)
	}
	return nil
}

// FillLabels pads an absent label list to n empty strings. The second
// return reports whether a legend should be rendered at all.
func FillLabels(labels []string, n int) ([]string, bool) {
	if len(labels) == 0 {
		return make([]string, n), false
	}
	return labels, true
}

// FillLinestyles pads an absent linestyle list to n solid lines.
func FillLinestyles(styles []string, n int) []string {
	if len(styles) == 0 {
		styles = make([]string, n)
		for i := range styles {
			styles[i] = "solid"
		}
	}
	return styles
}
