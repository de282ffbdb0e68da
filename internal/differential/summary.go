package differential

import (
	"errors"
	"fmt"
	"sort"

	"github.com/freegit9527/infer/internal/costs"
)

// ErrInvariantViolation marks a cost item whose top/zero/degree flags are
// mutually inconsistent. Such an item would silently miscount the summary,
// so the whole computation fails instead.
var ErrInvariantViolation = errors.New("inconsistent cost classification")

// PairCount is one summary counter measured in both snapshots.
type PairCount struct {
	Current  int `json:"current"`
	Previous int `json:"previous"`
}

// DegreeCount is the number of cost items of one polynomial degree in both
// snapshots.
type DegreeCount struct {
	Degree   int `json:"degree"`
	Current  int `json:"current"`
	Previous int `json:"previous"`
}

// CostsSummary pairs the cost-category histograms of the two snapshots.
// Degrees are sorted ascending; a degree present in only one snapshot
// contributes zero to the other.
type CostsSummary struct {
	Top     PairCount     `json:"top"`
	Zero    PairCount     `json:"zero"`
	Degrees []DegreeCount `json:"degrees"`
}

// histogram counts the cost categories of one snapshot.
type histogram struct {
	top     int
	zero    int
	degrees map[int]int
}

// BuildCostsSummary computes the paired histogram of cost categories for the
// two cost-report snapshots.
func BuildCostsSummary(current, previous []costs.Item) (*CostsSummary, error) {
	currentHist, err := buildHistogram(current)
	if err != nil {
		return nil, err
	}
	previousHist, err := buildHistogram(previous)
	if err != nil {
		return nil, err
	}

	allDegrees := make(map[int]struct{}, len(currentHist.degrees)+len(previousHist.degrees))
	for degree := range currentHist.degrees {
		allDegrees[degree] = struct{}{}
	}
	for degree := range previousHist.degrees {
		allDegrees[degree] = struct{}{}
	}

	degrees := make([]DegreeCount, 0, len(allDegrees))
	for degree := range allDegrees {
		degrees = append(degrees, DegreeCount{
			Degree:   degree,
			Current:  currentHist.degrees[degree],
			Previous: previousHist.degrees[degree],
		})
	}
	sort.Slice(degrees, func(i, j int) bool { return degrees[i].Degree < degrees[j].Degree })

	return &CostsSummary{
		Top:     PairCount{Current: currentHist.top, Previous: previousHist.top},
		Zero:    PairCount{Current: currentHist.zero, Previous: previousHist.zero},
		Degrees: degrees,
	}, nil
}

// buildHistogram classifies every item of one snapshot as top, zero, or its
// polynomial degree. Top and zero are mutually exclusive, and a defined
// degree of 0 must coincide with the zero cost; anything else is a logic
// error upstream and raises.
func buildHistogram(items []costs.Item) (histogram, error) {
	hist := histogram{degrees: make(map[int]int)}
	for _, item := range items {
		poly, err := costs.Decode(item.Polynomial)
		if err != nil {
			return histogram{}, fmt.Errorf("cost item %q: %w", item.Hash, err)
		}

		switch {
		case poly.IsTop():
			if poly.IsZero() {
				return histogram{}, fmt.Errorf("%w: item %q is both top and zero", ErrInvariantViolation, item.Hash)
			}
			hist.top++
		case poly.IsZero():
			if degree, ok := poly.Degree(); ok && degree != 0 {
				return histogram{}, fmt.Errorf("%w: item %q is zero with degree %d", ErrInvariantViolation, item.Hash, degree)
			}
			hist.zero++
		default:
			degree, ok := poly.Degree()
			if !ok {
				return histogram{}, fmt.Errorf("%w: item %q has no degree and is not top", ErrInvariantViolation, item.Hash)
			}
			if degree == 0 {
				return histogram{}, fmt.Errorf("%w: item %q has degree 0 but is not the zero cost", ErrInvariantViolation, item.Hash)
			}
			hist.degrees[degree]++
		}
	}
	return hist, nil
}
