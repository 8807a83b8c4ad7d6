package simplot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PoscarElements reads the element symbols from the species line of a
// VASP 5 POSCAR (the sixth line). VASP 4 files put the atom counts there
// instead, which is reported as an error.
func PoscarElements(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() && len(lines) < 6 {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) < 6 {
		return nil, fmt.Errorf("%w: POSCAR has fewer than 6 lines", ErrBadFormat)
	}
	elements := strings.Fields(lines[5])
	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: no elements found in POSCAR", ErrBadFormat)
	}
	for _, el := range elements {
		if el[0] < 'A' || el[0] > 'Z' {
			return nil, fmt.Errorf("%w: POSCAR species line %q, VASP 4 files carry no element symbols",
				ErrBadFormat, lines[5])
		}
	}
	return elements, nil
}

// LocateBandFiles finds the VASPKIT band data files for dir's structure.
// A plain band structure needs only BAND.dat; an elemental projection
// needs PBAND_{el}.dat for every element in the POSCAR, or the _UP and
// _DW pair per element when spin is set.
func LocateBandFiles(dir string, elemental, spin bool) ([]string, error) {
	f, err := os.Open(filepath.Join(dir, "POSCAR"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	elements, err := PoscarElements(f)
	if err != nil {
		return nil, err
	}
	if !elemental {
		path := filepath.Join(dir, "BAND.dat")
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}
	patterns := []string{"PBAND_%s.dat"}
	if spin {
		patterns = []string{"PBAND_%s_UP.dat", "PBAND_%s_DW.dat"}
	}
	var paths []string
	for _, pattern := range patterns {
		for _, el := range elements {
			path := filepath.Join(dir, fmt.Sprintf(pattern, el))
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	want := len(elements) * len(patterns)
	if len(paths) != want {
		return nil, fmt.Errorf("%w: found %d projected band files, want %d",
			ErrBadFormat, len(paths), want)
	}
	return paths, nil
}
