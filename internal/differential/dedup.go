package differential

import (
	"fmt"
	"sort"

	"github.com/freegit9527/infer/internal/report"
)

// Deduplicator drops findings whose trace endpoints match an already-accepted
// finding. Filtering mirrors the process-wide configuration flag: when false,
// nothing is ever judged a duplicate and every finding survives.
type Deduplicator struct {
	Filtering bool
}

// Dedup removes duplicate findings from the list and strips auxData from the
// survivors. The canonical representative kept for a group of duplicates is
// the one preferred by preferenceLess: shortest trace first, so the most
// actionable finding wins. Survivors come back sorted by (file, line, column).
//
// A malformed auxData blob aborts the whole computation: the encoding is
// internally produced and corruption indicates an upstream programming error.
func (d Deduplicator) Dedup(findings []report.Finding) ([]report.Finding, error) {
	ordered := make([]report.Finding, len(findings))
	copy(ordered, findings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return preferenceLess(ordered[i], ordered[j])
	})

	seen := NewEndLocationSet()
	survivors := make([]report.Finding, 0, len(ordered))
	for _, finding := range ordered {
		if finding.AuxData != "" {
			endLocations, err := report.DecodeAuxData(finding.AuxData)
			if err != nil {
				return nil, fmt.Errorf("finding %q: %w", finding.Hash, err)
			}
			if d.isDuplicate(endLocations, seen) {
				continue
			}
			seen.Insert(endLocations)
		}
		finding.AuxData = ""
		survivors = append(survivors, finding)
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].Location().Compare(survivors[j].Location()) < 0
	})
	return survivors, nil
}

// isDuplicate reports whether a finding with the given trace endpoints
// duplicates an already-accepted one. Always false when filtering is
// disabled or the endpoint list is empty.
func (d Deduplicator) isDuplicate(endLocations []report.Location, seen *EndLocationSet) bool {
	return d.Filtering && seen.Contains(endLocations)
}

// preferenceLess is the order in which findings are considered for the
// canonical-representative slot: ascending trace length, then hash, then a
// deterministic total order over the remaining fields so that output never
// depends on input permutation.
func preferenceLess(a, b report.Finding) bool {
	if len(a.BugTrace) != len(b.BugTrace) {
		return len(a.BugTrace) < len(b.BugTrace)
	}
	if a.Hash != b.Hash {
		return a.Hash < b.Hash
	}
	if c := a.Location().Compare(b.Location()); c != 0 {
		return c < 0
	}
	if a.BugType != b.BugType {
		return a.BugType < b.BugType
	}
	if a.Qualifier != b.Qualifier {
		return a.Qualifier < b.Qualifier
	}
	return a.Procedure < b.Procedure
}
