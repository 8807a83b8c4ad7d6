package simplot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is one structure from a GASP run: its composition and the
// formation energy computed relative to the composition-space endpoints.
type Entry struct {
	Composition     Composition
	FormationEnergy float64
}

// RunData is the parsed contents of a GASP run_data file.
type RunData struct {
	// Endpoints are the composition-space endpoints from the first
	// line. Only elemental endpoints are accepted: formation energies
	// weight each reference by the endpoint's atomic fraction in a row,
	// which is only defined per element.
	Endpoints []Composition
	// References maps each endpoint's reduced formula to its reference
	// energy per atom, the minimum epa among rows reducing to that
	// formula. An endpoint never seen among the rows keeps a zero
	// reference; GASP data sets are not supposed to trigger this.
	References map[string]float64
	Entries    []Entry
}

type runDataRow struct {
	comp   Composition
	etotal float64
	epa    float64
}

// ParseRunData reads a GASP run_data file. The first non-blank line lists
// the composition-space endpoints, the second is a column header, and the
// remaining lines are rows of
// (id, composition, total energy, epa, num calcs, best value).
func ParseRunData(r io.Reader) (*RunData, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.ReplaceAll(scanner.Text(), "\t", ""))
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: run_data needs an endpoint line and a header", ErrBadFormat)
	}
	first := strings.TrimSpace(strings.TrimPrefix(lines[0], "Composition space endpoints:"))
	var endpoints []Composition
	for _, field := range strings.Fields(first) {
		comp, err := ParseComposition(field)
		if err != nil {
			return nil, fmt.Errorf("endpoint %q: %w", field, err)
		}
		if len(comp) != 1 {
			return nil, fmt.Errorf("%w: endpoint %q, only elemental endpoints are supported",
				ErrUnsupported, field)
		}
		endpoints = append(endpoints, comp)
	}
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("%w: no composition space endpoints", ErrBadFormat)
	}
	// lines[1] is the column header
	var rows []runDataRow
	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		if len(fields) < 6 {
			return nil, fmt.Errorf("%w: run_data row %q", ErrBadFormat, line)
		}
		comp, err := ParseComposition(fields[1])
		if err != nil {
			return nil, err
		}
		etotal, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: total energy %q", ErrBadFormat, fields[2])
		}
		epa, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: energy per atom %q", ErrBadFormat, fields[3])
		}
		rows = append(rows, runDataRow{comp, etotal, epa})
	}
	refs := make(map[string]float64, len(endpoints))
	for _, ep := range endpoints {
		form := ep.ReducedFormula()
		var min float64
		var found bool
		for _, row := range rows {
			if row.comp.ReducedFormula() != form {
				continue
			}
			if !found || row.epa < min {
				min, found = row.epa, true
			}
		}
		refs[form] = 0
		if found {
			refs[form] = min
		}
	}
	entries := make([]Entry, len(rows))
	for i, row := range rows {
		eform := row.etotal
		for _, ep := range endpoints {
			form := ep.ReducedFormula()
			natoms := row.comp.NumAtoms() * row.comp.AtomicFraction(form)
			eform -= refs[form] * natoms
		}
		entries[i] = Entry{row.comp, eform}
	}
	return &RunData{Endpoints: endpoints, References: refs, Entries: entries}, nil
}
