package differential

import (
	"github.com/freegit9527/infer/internal/report"
)

// Buckets is the three-way classification of findings between two runs.
type Buckets struct {
	Introduced  []report.Finding
	Fixed       []report.Finding
	Preexisting []report.Finding
}

// Reconcile classifies findings by stable hash across the two reports.
// A hash only in the current report is introduced, only in the previous
// report is fixed, and present in both is preexisting. Duplicate hashes are
// preserved verbatim: a hash that legitimately recurs N times in one run
// recurs N times here. For preexisting hashes the current-side findings are
// kept and the previous-side occurrences are discarded; the current run's
// metadata is authoritative.
func Reconcile(current, previous []report.Finding) Buckets {
	currentHashes := hashSet(current)
	previousHashes := hashSet(previous)

	var buckets Buckets
	for _, finding := range current {
		if _, ok := previousHashes[finding.Hash]; ok {
			buckets.Preexisting = append(buckets.Preexisting, finding)
		} else {
			buckets.Introduced = append(buckets.Introduced, finding)
		}
	}
	for _, finding := range previous {
		if _, ok := currentHashes[finding.Hash]; !ok {
			buckets.Fixed = append(buckets.Fixed, finding)
		}
	}
	return buckets
}

func hashSet(findings []report.Finding) map[string]struct{} {
	hashes := make(map[string]struct{}, len(findings))
	for _, finding := range findings {
		hashes[finding.Hash] = struct{}{}
	}
	return hashes
}
