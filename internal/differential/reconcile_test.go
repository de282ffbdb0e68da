package differential

import (
	"testing"

	"github.com/freegit9527/infer/internal/report"
)

func hashes(findings []report.Finding) []string {
	out := make([]string, len(findings))
	for i, finding := range findings {
		out[i] = finding.Hash
	}
	return out
}

func TestReconcilePartitionsByHashPresence(t *testing.T) {
	// h1 appears in both runs with different traces: presence of the hash,
	// not content equality, decides the bucket.
	previous := []report.Finding{
		{Hash: "h1", File: "a.c", Line: 1, BugTrace: traceOfLength(3)},
		{Hash: "h2", File: "b.c", Line: 2},
	}
	current := []report.Finding{
		{Hash: "h1", File: "a.c", Line: 5, BugTrace: traceOfLength(1)},
		{Hash: "h3", File: "c.c", Line: 3},
	}

	buckets := Reconcile(current, previous)

	if got := hashes(buckets.Introduced); len(got) != 1 || got[0] != "h3" {
		t.Fatalf("expected introduced [h3], got %v", got)
	}
	if got := hashes(buckets.Fixed); len(got) != 1 || got[0] != "h2" {
		t.Fatalf("expected fixed [h2], got %v", got)
	}
	if got := hashes(buckets.Preexisting); len(got) != 1 || got[0] != "h1" {
		t.Fatalf("expected preexisting [h1], got %v", got)
	}
}

func TestReconcilePreexistingKeepsCurrentSide(t *testing.T) {
	previous := []report.Finding{{Hash: "h1", File: "old.c", Line: 100}}
	current := []report.Finding{{Hash: "h1", File: "new.c", Line: 7}}

	buckets := Reconcile(current, previous)

	if len(buckets.Preexisting) != 1 {
		t.Fatalf("expected 1 preexisting finding, got %d", len(buckets.Preexisting))
	}
	if buckets.Preexisting[0].File != "new.c" {
		t.Fatalf("expected current-side metadata to win, got file %q", buckets.Preexisting[0].File)
	}
}

func TestReconcilePreservesDuplicateHashes(t *testing.T) {
	current := []report.Finding{
		{Hash: "h1", File: "a.c", Line: 1},
		{Hash: "h1", File: "a.c", Line: 9},
		{Hash: "h1", File: "a.c", Line: 20},
	}

	buckets := Reconcile(current, nil)

	if len(buckets.Introduced) != 3 {
		t.Fatalf("expected all 3 duplicate-hash findings preserved, got %d", len(buckets.Introduced))
	}
	if buckets.Introduced[0].Line != 1 || buckets.Introduced[1].Line != 9 || buckets.Introduced[2].Line != 20 {
		t.Fatalf("expected input order preserved, got %v", buckets.Introduced)
	}
}

func TestReconcilePartitionCompleteness(t *testing.T) {
	previous := []report.Finding{
		{Hash: "h1"}, {Hash: "h2"}, {Hash: "h2"}, {Hash: "h4"},
	}
	current := []report.Finding{
		{Hash: "h1"}, {Hash: "h3"}, {Hash: "h4"}, {Hash: "h4"},
	}

	buckets := Reconcile(current, previous)

	seen := map[string]string{}
	record := func(bucket string, findings []report.Finding) {
		for _, finding := range findings {
			if prev, ok := seen[finding.Hash]; ok && prev != bucket {
				t.Fatalf("hash %q appears in both %s and %s", finding.Hash, prev, bucket)
			}
			seen[finding.Hash] = bucket
		}
	}
	record("introduced", buckets.Introduced)
	record("fixed", buckets.Fixed)
	record("preexisting", buckets.Preexisting)

	for _, hash := range []string{"h1", "h2", "h3", "h4"} {
		if _, ok := seen[hash]; !ok {
			t.Fatalf("hash %q missing from every bucket", hash)
		}
	}
}

func TestReconcileEmptyInputs(t *testing.T) {
	buckets := Reconcile(nil, nil)
	if len(buckets.Introduced)+len(buckets.Fixed)+len(buckets.Preexisting) != 0 {
		t.Fatalf("expected all buckets empty, got %+v", buckets)
	}
}
