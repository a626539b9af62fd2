// Package pareto selects the best fidelity/complexity trade-off from a
// parsimony sweep: given one (mean complexity, mean test RMSE) point per
// parsimony coefficient, it finds the elbow of the frontier.
package pareto

import "sort"

// Point is one parsimony sweep value on the complexity/error plane.
// Points built from unknown-complexity records must be excluded by the
// caller before selection.
type Point struct {
	Parsimony  float64
	Complexity float64
	RMSE       float64
}

// Extremes returns the hull extreme points: the lowest-RMSE point (lower
// right of the frontier) and the highest-RMSE point (upper left). RMSE
// generally decreases as complexity grows, so sorting by RMSE locates both
// ends. Ties resolve by complexity, keeping the selection deterministic.
func Extremes(points []Point) (lowerRight, upperLeft Point, ok bool) {
	if len(points) == 0 {
		return Point{}, Point{}, false
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].RMSE != sorted[j].RMSE {
			return sorted[i].RMSE < sorted[j].RMSE
		}
		return sorted[i].Complexity < sorted[j].Complexity
	})
	return sorted[0], sorted[len(sorted)-1], true
}

// HullLine returns the line through the hull extremes as a slope and one
// point on it (the lower-right extreme). ok is false for an empty set or
// when the extremes share one complexity, leaving the slope undefined.
func HullLine(points []Point) (slope, x0, y0 float64, ok bool) {
	lowerRight, upperLeft, ok := Extremes(points)
	if !ok || lowerRight.Complexity == upperLeft.Complexity {
		return 0, 0, 0, false
	}
	slope = (lowerRight.RMSE - upperLeft.RMSE) / (lowerRight.Complexity - upperLeft.Complexity)
	return slope, lowerRight.Complexity, lowerRight.RMSE, true
}

// SelectElbow picks the sweep point offering the best trade-off: the first
// point, in ascending parsimony order, such that no other point lies
// strictly below the line through it with the hull-extreme slope. The
// extreme points always qualify against themselves, so a non-empty,
// non-degenerate set yields a selection.
//
// A degenerate set whose extremes share one complexity has no defined
// slope; the minimum-RMSE point is returned, being trivially non-dominated.
func SelectElbow(points []Point) (Point, bool) {
	lowerRight, _, ok := Extremes(points)
	if !ok {
		return Point{}, false
	}
	slope, _, _, ok := HullLine(points)
	if !ok {
		return lowerRight, true
	}

	// Fixed total order over candidates: ascending parsimony coefficient.
	candidates := make([]Point, len(points))
	copy(candidates, points)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Parsimony < candidates[j].Parsimony
	})

	for _, p := range candidates {
		dominated := false
		for _, q := range points {
			lineY := slope*(q.Complexity-p.Complexity) + p.RMSE
			if q.RMSE < lineY {
				dominated = true
				break
			}
		}
		if !dominated {
			return p, true
		}
	}
	return Point{}, false
}
