package costs

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Polynomial is a decoded cost estimate. Only the classification surface is
// exposed: top/zero flags, the symbolic degree, and human-readable renderings.
// The polynomial arithmetic itself belongs to the analysis that produced the
// estimate.
type Polynomial struct {
	top    bool
	zero   bool
	degree *int
	hum    string
}

// polynomialWire is the encoded form carried in a cost item's polynomial field.
type polynomialWire struct {
	Top    bool   `json:"top"`
	Zero   bool   `json:"zero"`
	Degree *int   `json:"degree"`
	Hum    string `json:"hum"`
}

// Decode parses the wire-format string of a cost estimate.
func Decode(encoded string) (Polynomial, error) {
	var wire polynomialWire
	if err := json.Unmarshal([]byte(encoded), &wire); err != nil {
		return Polynomial{}, fmt.Errorf("failed to decode polynomial %q: %w", encoded, err)
	}
	return Polynomial{
		top:    wire.Top,
		zero:   wire.Zero,
		degree: wire.Degree,
		hum:    wire.Hum,
	}, nil
}

// IsTop reports whether the estimate is unbounded or unanalyzable.
func (p Polynomial) IsTop() bool { return p.top }

// IsZero reports whether the estimate is the zero cost.
func (p Polynomial) IsZero() bool { return p.zero }

// Degree returns the polynomial order of the estimate. The second return
// value is false when no finite degree is defined, which is the case for
// top estimates.
func (p Polynomial) Degree() (int, bool) {
	if p.top {
		return 0, false
	}
	if p.degree != nil {
		return *p.degree, true
	}
	if p.zero {
		return 0, true
	}
	return 0, false
}

// String returns the exact human-readable rendering of the polynomial.
func (p Polynomial) String() string {
	return p.hum
}

// DegreeString renders the degree class of the estimate: "Top" for unbounded
// costs, otherwise the decimal degree.
func (p Polynomial) DegreeString() string {
	degree, ok := p.Degree()
	if !ok {
		return "Top"
	}
	return strconv.Itoa(degree)
}

// CompareByDegree orders two estimates by degree class. Top sorts above any
// finite degree; finite degrees compare as integers, which places the zero
// cost below every positive-degree cost. The result is negative, zero, or
// positive when a is below, equal to, or above b.
func CompareByDegree(a, b Polynomial) int {
	degreeA, okA := a.Degree()
	degreeB, okB := b.Degree()

	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	default:
		return degreeA - degreeB
	}
}
