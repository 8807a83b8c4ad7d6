package simplot

import (
	"fmt"
	"sort"
)

// HullPoint is one entry placed in hull coordinates: the atomic fraction
// of the second composition-space endpoint and the formation energy per
// atom.
type HullPoint struct {
	X     float64
	EForm float64
}

// Hull places every entry of a binary GASP run in hull coordinates and
// returns the points together with the lower convex hull over them. The
// hull vertices are the stable phases. Composition spaces with more than
// two endpoints are not supported.
func Hull(rd *RunData) (points, hull []HullPoint, err error) {
	if len(rd.Endpoints) != 2 {
		return nil, nil, fmt.Errorf("%w: %d composition space endpoints, only binary spaces are supported",
			ErrUnsupported, len(rd.Endpoints))
	}
	el := rd.Endpoints[1].ReducedFormula()
	points = make([]HullPoint, len(rd.Entries))
	for i, e := range rd.Entries {
		points[i] = HullPoint{
			X:     e.Composition.AtomicFraction(el),
			EForm: e.FormationEnergy / e.Composition.NumAtoms(),
		}
	}
	return points, lowerHull(points), nil
}

// lowerHull is the lower half of an Andrew monotone chain scan.
func lowerHull(points []HullPoint) []HullPoint {
	pts := make([]HullPoint, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].EForm < pts[j].EForm
	})
	var hull []HullPoint
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}

// cross is the z component of (b-a) x (c-a); positive for a left turn.
func cross(a, b, c HullPoint) float64 {
	return (b.X-a.X)*(c.EForm-a.EForm) - (b.EForm-a.EForm)*(c.X-a.X)
}
