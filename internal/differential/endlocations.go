// Package differential reconciles two snapshots of a static-analysis run:
// it classifies findings into introduced, fixed, and preexisting buckets,
// detects cost-complexity regressions between the two per-procedure cost
// reports, and packages everything into the differential artifacts.
package differential

import (
	"fmt"
	"sort"
	"strings"

	"github.com/freegit9527/infer/internal/report"
)

// EndLocationSet is an order-independent set of trace-endpoint location
// lists. Membership uses the canonical (sorted) form of each list, so two
// findings whose error paths terminate at the same locations compare equal
// regardless of trace ordering. An empty list is never inserted and is
// never contained.
type EndLocationSet struct {
	members map[string]struct{}
}

// NewEndLocationSet returns an empty set.
func NewEndLocationSet() *EndLocationSet {
	return &EndLocationSet{members: make(map[string]struct{})}
}

// Insert adds the canonical form of endLocations to the set. Inserting an
// empty list is a no-op.
func (s *EndLocationSet) Insert(endLocations []report.Location) {
	if len(endLocations) == 0 {
		return
	}
	s.members[canonicalKey(endLocations)] = struct{}{}
}

// Contains reports whether the canonical form of endLocations is already in
// the set. The empty list is never considered contained, so an empty trace
// can never be judged a duplicate of anything.
func (s *EndLocationSet) Contains(endLocations []report.Location) bool {
	if len(endLocations) == 0 {
		return false
	}
	_, ok := s.members[canonicalKey(endLocations)]
	return ok
}

// canonicalKey sorts a copy of the locations and joins them into a stable
// membership key. Sorting first makes the comparison order-independent.
func canonicalKey(endLocations []report.Location) string {
	sorted := make([]report.Location, len(endLocations))
	copy(sorted, endLocations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	parts := make([]string, len(sorted))
	for i, loc := range sorted {
		parts[i] = fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Column)
	}
	return strings.Join(parts, "|")
}
