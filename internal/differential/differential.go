package differential

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/freegit9527/infer/internal/costs"
	"github.com/freegit9527/infer/internal/report"
	"github.com/freegit9527/infer/pkg/shared/files"
)

// Output artifact names.
const (
	IntroducedFile   = "introduced.json"
	FixedFile        = "fixed.json"
	PreexistingFile  = "preexisting.json"
	CostsSummaryFile = "costs_summary.json"
)

// Options controls the differential computation.
type Options struct {
	// Filtering gates trace-endpoint deduplication; when false every
	// finding survives dedup.
	Filtering bool
	// DeveloperMode appends exact polynomial renderings to cost-regression
	// qualifiers.
	DeveloperMode bool
}

// Differential is the reconciled result of two analysis snapshots. It is
// immutable after Compute and carries no auxData.
type Differential struct {
	RunID        string           `json:"-"`
	Introduced   []report.Finding `json:"introduced"`
	Fixed        []report.Finding `json:"fixed"`
	Preexisting  []report.Finding `json:"preexisting"`
	CostsSummary *CostsSummary    `json:"costsSummary"`
}

// Compute reconciles the two reports and the two costs reports. Report and
// cost reconciliation partition different entity types and never interact;
// each bucket's cost-regression findings are appended to its deduplicated
// issue findings. Cost findings skip dedup because they are already one per
// hash per direction by construction.
func Compute(currentReport, previousReport []report.Finding, currentCosts, previousCosts []costs.Item, opts Options) (*Differential, error) {
	buckets := Reconcile(currentReport, previousReport)

	dedup := Deduplicator{Filtering: opts.Filtering}
	introduced, err := dedup.Dedup(buckets.Introduced)
	if err != nil {
		return nil, fmt.Errorf("dedup introduced findings: %w", err)
	}
	fixed, err := dedup.Dedup(buckets.Fixed)
	if err != nil {
		return nil, fmt.Errorf("dedup fixed findings: %w", err)
	}
	preexisting, err := dedup.Dedup(buckets.Preexisting)
	if err != nil {
		return nil, fmt.Errorf("dedup preexisting findings: %w", err)
	}

	costBuckets, err := ReconcileCosts(currentCosts, previousCosts, opts.DeveloperMode)
	if err != nil {
		return nil, fmt.Errorf("reconcile costs: %w", err)
	}

	summary, err := BuildCostsSummary(currentCosts, previousCosts)
	if err != nil {
		return nil, fmt.Errorf("build costs summary: %w", err)
	}

	return &Differential{
		RunID:        uuid.NewString(),
		Introduced:   append(introduced, costBuckets.Introduced...),
		Fixed:        append(fixed, costBuckets.Fixed...),
		Preexisting:  append(preexisting, costBuckets.Preexisting...),
		CostsSummary: summary,
	}, nil
}

// Save writes the four differential artifacts into the destination folder,
// creating it if needed.
func (d *Differential) Save(destination string) error {
	if err := files.CreateFolderIfNotExists(destination); err != nil {
		return err
	}

	artifacts := []struct {
		name string
		data interface{}
	}{
		{IntroducedFile, emptyAsList(d.Introduced)},
		{FixedFile, emptyAsList(d.Fixed)},
		{PreexistingFile, emptyAsList(d.Preexisting)},
		{CostsSummaryFile, d.CostsSummary},
	}
	for _, artifact := range artifacts {
		data, err := json.MarshalIndent(artifact.data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", artifact.name, err)
		}
		if err := files.WriteJsonFile(filepath.Join(destination, artifact.name), data); err != nil {
			return fmt.Errorf("failed to write %s: %w", artifact.name, err)
		}
	}
	return nil
}

// emptyAsList keeps an empty bucket serialized as [] rather than null.
func emptyAsList(findings []report.Finding) []report.Finding {
	if findings == nil {
		return []report.Finding{}
	}
	return findings
}
