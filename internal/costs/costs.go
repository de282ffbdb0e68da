// Package costs defines the per-procedure cost-estimate model of a
// static-analysis run and the comparison surface of its polynomial
// cost estimates.
package costs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/freegit9527/infer/internal/report"
)

// Item is an upper-bound execution-cost estimate for one procedure.
// Polynomial is the encoded cost estimate; see Decode.
type Item struct {
	Hash        string          `json:"hash"`
	ProcedureID string          `json:"procedureId"`
	Location    report.Location `json:"location"`
	Polynomial  string          `json:"polynomial"`
}

// Load reads a costs-report document: a JSON array of cost items.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read costs report %q: %w", path, err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse costs report %q: %w", path, err)
	}
	return items, nil
}
