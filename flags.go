package simplot

import (
	"fmt"
	"strconv"
	"strings"
)

// ListFlag collects the values of a repeatable string flag. A single
// flag value may also carry several entries separated by whitespace.
type ListFlag []string

func (l *ListFlag) String() string {
	return strings.Join(*l, " ")
}

func (l *ListFlag) Set(s string) error {
	*l = append(*l, strings.Fields(s)...)
	return nil
}

// IntListFlag is ListFlag for integer values, used for RDF column
// indices.
type IntListFlag []int

func (l *IntListFlag) String() string {
	fields := make([]string, len(*l))
	for i, v := range *l {
		fields[i] = strconv.Itoa(v)
	}
	return strings.Join(fields, " ")
}

func (l *IntListFlag) Set(s string) error {
	for _, field := range strings.Fields(s) {
		v, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("%w: column index %q", ErrBadFormat, field)
		}
		*l = append(*l, v)
	}
	return nil
}
