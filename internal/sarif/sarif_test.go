package sarif

import (
	"testing"

	"github.com/freegit9527/infer/internal/report"
)

func TestConvertFindings(t *testing.T) {
	findings := []report.Finding{
		{
			BugType:   report.BugTypePerformanceVariation,
			Qualifier: "Complexity increased from 1 to 2.",
			File:      "src/a.c",
			Line:      42,
			Column:    3,
			Hash:      "c1",
			BugTrace: []report.TraceItem{
				{Level: 0, File: "src/a.c", Line: 42, Column: 3, Description: "Complexity increased from 1 to 2."},
			},
		},
		{
			BugType:   report.BugTypeInfiniteExecutionTime,
			Qualifier: "Complexity increased from 2 to Top.",
			File:      "src/b.c",
			Line:      7,
			Column:    1,
			Hash:      "c2",
		},
	}

	sarifReport, err := ConvertFindings(findings)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if len(sarifReport.Runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(sarifReport.Runs))
	}
	run := sarifReport.Runs[0]
	if len(run.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(run.Results))
	}

	first := run.Results[0]
	if first.RuleID == nil || *first.RuleID != report.BugTypePerformanceVariation {
		t.Fatalf("expected rule id %q, got %v", report.BugTypePerformanceVariation, first.RuleID)
	}
	if first.Message.Text == nil || *first.Message.Text != "Complexity increased from 1 to 2." {
		t.Fatalf("unexpected result message: %v", first.Message.Text)
	}
	if first.Level == nil || *first.Level != "warning" {
		t.Fatalf("expected warning level, got %v", first.Level)
	}
	if len(first.CodeFlows) != 1 {
		t.Fatalf("expected a code flow for the traced finding, got %d", len(first.CodeFlows))
	}

	second := run.Results[1]
	if second.Level == nil || *second.Level != "error" {
		t.Fatalf("expected error level for unbounded execution time, got %v", second.Level)
	}
	if len(second.CodeFlows) != 0 {
		t.Fatalf("expected no code flow for a finding without a trace, got %d", len(second.CodeFlows))
	}
}

func TestConvertFindingsEmpty(t *testing.T) {
	sarifReport, err := ConvertFindings(nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(sarifReport.Runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(sarifReport.Runs))
	}
	if len(sarifReport.Runs[0].Results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(sarifReport.Runs[0].Results))
	}
}
