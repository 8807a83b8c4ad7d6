package simplot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrUnsupported reports a request for a feature that is recognized but
// not implemented, like orbital-projected band structures.
var ErrUnsupported = errors.New("not implemented")

// Band holds one band's data, column label -> values at each k-point.
// The first label of the owning BandFile is the k-path position axis.
type Band map[string][]float64

// BandFile is the parsed contents of a VASPKIT BAND.dat or PBAND_*.dat
// file: NBands bands of NKpts rows each.
type BandFile struct {
	Labels []string
	NKpts  int
	NBands int
	Bands  []Band
}

// bandStart is the line index of the first data row: the rows follow the
// header, the metadata line, and the band-index marker.
const bandStart = 3

// ParseBand reads a VASPKIT band structure file. The first line carries
// the column labels, the second is a metadata line whose trailing two
// fields after the ":" are NKPTS and NBANDS, and band i occupies the
// NKPTS lines starting at bandStart + i*NKPTS.
func ParseBand(r io.Reader) (*BandFile, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: band file has no metadata line", ErrBadFormat)
	}
	labels := strings.Fields(lines[0])
	parts := strings.Split(lines[1], ":")
	counts := strings.Fields(parts[len(parts)-1])
	if len(counts) < 2 {
		return nil, fmt.Errorf("%w: band metadata %q", ErrBadFormat, lines[1])
	}
	nkpts, err := strconv.Atoi(counts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: NKPTS %q", ErrBadFormat, counts[0])
	}
	nbands, err := strconv.Atoi(counts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: NBANDS %q", ErrBadFormat, counts[1])
	}
	if len(lines) < bandStart+nkpts*nbands {
		return nil, fmt.Errorf("%w: band file ends before band %d", ErrBadFormat, nbands)
	}
	bands := make([]Band, 0, nbands)
	for i := 0; i < nbands; i++ {
		band := make(Band, len(labels))
		for j := 0; j < nkpts; j++ {
			line := lines[bandStart+i*nkpts+j]
			fields := strings.Fields(line)
			if len(fields) < len(labels) {
				return nil, fmt.Errorf("%w: band row %q has %d columns, want %d",
					ErrBadFormat, line, len(fields), len(labels))
			}
			for k, label := range labels {
				v, err := strconv.ParseFloat(fields[k], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: band value %q", ErrBadFormat, fields[k])
				}
				band[label] = append(band[label], v)
			}
		}
		bands = append(bands, band)
	}
	return &BandFile{Labels: labels, NKpts: nkpts, NBands: nbands, Bands: bands}, nil
}
