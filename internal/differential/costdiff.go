package differential

import (
	"fmt"

	"github.com/freegit9527/infer/internal/costs"
	"github.com/freegit9527/infer/internal/report"
)

// decodedItem pairs a cost item with its decoded polynomial so that every
// polynomial is decoded exactly once.
type decodedItem struct {
	item costs.Item
	poly costs.Polynomial
}

// ReconcileCosts compares per-procedure cost estimates between the two runs
// and synthesizes one finding per degree-class transition: an introduced
// regression when the current degree exceeds the previous one, a fixed
// regression for the opposite direction, and nothing when the degrees are
// equal. Hashes present on only one side have no valid before/after
// comparison and are silently skipped.
//
// When a hash carries several estimates on one side, the worst (maximum
// degree) estimate represents that side; the first such estimate in input
// order wins ties, keeping the result deterministic.
func ReconcileCosts(current, previous []costs.Item, developerMode bool) (Buckets, error) {
	currentByHash, currentOrder, err := groupCosts(current)
	if err != nil {
		return Buckets{}, err
	}
	previousByHash, _, err := groupCosts(previous)
	if err != nil {
		return Buckets{}, err
	}

	var buckets Buckets
	for _, hash := range currentOrder {
		previousItems, ok := previousByHash[hash]
		if !ok {
			continue
		}
		currentWorst := maxByDegree(currentByHash[hash])
		previousWorst := maxByDegree(previousItems)

		switch cmp := costs.CompareByDegree(currentWorst.poly, previousWorst.poly); {
		case cmp > 0:
			buckets.Introduced = append(buckets.Introduced,
				costRegressionFinding(currentWorst, previousWorst, "increased", developerMode))
		case cmp < 0:
			buckets.Fixed = append(buckets.Fixed,
				costRegressionFinding(currentWorst, previousWorst, "decreased", developerMode))
		}
	}
	return buckets, nil
}

// groupCosts decodes every item's polynomial once and groups the pairs by
// hash, remembering first-appearance key order for deterministic iteration.
func groupCosts(items []costs.Item) (map[string][]decodedItem, []string, error) {
	byHash := make(map[string][]decodedItem, len(items))
	var order []string
	for _, item := range items {
		poly, err := costs.Decode(item.Polynomial)
		if err != nil {
			return nil, nil, fmt.Errorf("cost item %q: %w", item.Hash, err)
		}
		if _, ok := byHash[item.Hash]; !ok {
			order = append(order, item.Hash)
		}
		byHash[item.Hash] = append(byHash[item.Hash], decodedItem{item: item, poly: poly})
	}
	return byHash, order, nil
}

// maxByDegree returns the worst estimate of the group. Only a strictly
// greater degree replaces the running maximum, so the first of equals wins.
func maxByDegree(group []decodedItem) decodedItem {
	worst := group[0]
	for _, candidate := range group[1:] {
		if costs.CompareByDegree(candidate.poly, worst.poly) > 0 {
			worst = candidate
		}
	}
	return worst
}

// costRegressionFinding synthesizes the finding reported for one
// degree-class transition. Identity fields come from the current-side item;
// the single-step trace points at the procedure's declared location.
func costRegressionFinding(current, previous decodedItem, direction string, developerMode bool) report.Finding {
	qualifier := fmt.Sprintf("Complexity %s from %s to %s.",
		direction, previous.poly.DegreeString(), current.poly.DegreeString())
	if developerMode {
		qualifier += fmt.Sprintf(" Previous cost: %s. Current cost: %s.",
			previous.poly.String(), current.poly.String())
	}

	bugType := report.BugTypePerformanceVariation
	if current.poly.IsTop() {
		bugType = report.BugTypeInfiniteExecutionTime
	} else if current.poly.IsZero() {
		bugType = report.BugTypeZeroExecutionTime
	}

	location := current.item.Location
	return report.Finding{
		BugType:   bugType,
		Qualifier: qualifier,
		File:      location.File,
		Line:      location.Line,
		Column:    location.Column,
		Procedure: current.item.ProcedureID,
		Hash:      current.item.Hash,
		BugTrace: []report.TraceItem{
			{
				Level:       0,
				File:        location.File,
				Line:        location.Line,
				Column:      location.Column,
				Description: qualifier,
			},
		},
	}
}
