// Package sarif renders differential findings as a SARIF 2.1.0 report so
// the artifacts can feed code-scanning UIs and DefectDojo imports.
package sarif

import (
	"fmt"
	"os"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/freegit9527/infer/internal/report"
)

const toolName = "inferdiff"
const toolURI = "https://github.com/freegit9527/infer"

// ConvertFindings builds a single-run SARIF report from a differential
// bucket. Each distinct bugType becomes a rule; the finding's qualifier is
// the result message and its bug trace becomes one code flow.
func ConvertFindings(findings []report.Finding) (*sarif.Report, error) {
	sarifReport, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	for _, finding := range findings {
		rule := run.AddRule(finding.BugType).
			WithDescription(finding.BugType)

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(finding.File)).
				WithRegion(sarif.NewRegion().
					WithStartLine(finding.Line).
					WithStartColumn(finding.Column)),
		)

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(finding.Qualifier)).
			WithLevel(resultLevel(finding.BugType)).
			WithLocations([]*sarif.Location{location})

		if len(finding.BugTrace) > 0 {
			result.CodeFlows = append(result.CodeFlows, traceCodeFlow(finding.BugTrace))
		}
		run.AddResult(result)
	}
	sarifReport.AddRun(run)
	return sarifReport, nil
}

// WriteFindings converts the findings and pretty-prints the SARIF document
// to outputPath.
func WriteFindings(findings []report.Finding, outputPath string) error {
	sarifReport, err := ConvertFindings(findings)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error writing SARIF report: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := sarifReport.PrettyWrite(file); err != nil {
		return fmt.Errorf("error writing SARIF report: %w", err)
	}
	return nil
}

// traceCodeFlow maps a bug trace onto a SARIF code flow with one thread
// flow location per trace step.
func traceCodeFlow(trace []report.TraceItem) *sarif.CodeFlow {
	codeFlow := sarif.NewCodeFlow()
	threadFlow := sarif.NewThreadFlow()
	for _, step := range trace {
		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(step.File)).
				WithRegion(sarif.NewRegion().
					WithStartLine(step.Line).
					WithStartColumn(step.Column)),
		)
		location.Message = sarif.NewTextMessage(step.Description)
		threadFlow.Locations = append(threadFlow.Locations, &sarif.ThreadFlowLocation{
			Location: location,
		})
	}
	codeFlow.ThreadFlows = append(codeFlow.ThreadFlows, threadFlow)
	return codeFlow
}

// resultLevel maps bug types onto SARIF levels. Unbounded execution time is
// the only transition severe enough to block.
func resultLevel(bugType string) string {
	switch bugType {
	case report.BugTypeInfiniteExecutionTime:
		return "error"
	default:
		return "warning"
	}
}
