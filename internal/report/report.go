// Package report defines the findings model of a static-analysis run and
// loads report documents from disk.
package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// Bug types of synthesized cost-regression findings, keyed off the
// current-side cost estimate.
const (
	BugTypeInfiniteExecutionTime = "infiniteExecutionTime"
	BugTypeZeroExecutionTime     = "zeroExecutionTime"
	BugTypePerformanceVariation  = "performanceVariation"
)

// Location is a single source position. Locations are ordered by file,
// then line, then column.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Compare returns a negative number, zero, or a positive number when l is
// ordered before, equal to, or after other.
func (l Location) Compare(other Location) int {
	if l.File != other.File {
		if l.File < other.File {
			return -1
		}
		return 1
	}
	if l.Line != other.Line {
		return l.Line - other.Line
	}
	return l.Column - other.Column
}

// TraceItem is one step of a finding's explanatory trace.
type TraceItem struct {
	Level       int    `json:"level"`
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Description string `json:"description"`
}

// Finding is one reported defect instance. Hash identifies the same bug
// across runs even when line numbers shift. AuxData is a reporting-internal
// encoded blob carrying trace-endpoint locations; it never survives into
// output documents.
type Finding struct {
	BugType   string      `json:"bugType"`
	Qualifier string      `json:"qualifier"`
	File      string      `json:"file"`
	Line      int         `json:"line"`
	Column    int         `json:"column"`
	Procedure string      `json:"procedure,omitempty"`
	Hash      string      `json:"hash"`
	BugTrace  []TraceItem `json:"bugTrace"`
	AuxData   string      `json:"auxData,omitempty"`
}

// Location returns the finding's own source position.
func (f Finding) Location() Location {
	return Location{File: f.File, Line: f.Line, Column: f.Column}
}

// Load reads a report document: a JSON array of findings.
func Load(path string) ([]Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %q: %w", path, err)
	}

	var findings []Finding
	if err := json.Unmarshal(data, &findings); err != nil {
		return nil, fmt.Errorf("failed to parse report %q: %w", path, err)
	}
	return findings, nil
}
