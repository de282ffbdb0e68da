package report

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedAuxData marks an auxData blob that is present but cannot be
// decoded. The encoding is internally produced, so corruption always means
// an upstream programming error and the whole differential must fail.
var ErrMalformedAuxData = errors.New("malformed aux data")

// DecodeAuxData decodes a finding's auxData blob and returns the trace-endpoint
// locations it carries. The wire form is base64 over a JSON array of exactly
// three elements; only the third element, an array of locations, is of
// interest here.
func DecodeAuxData(blob string) ([]Location, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAuxData, err)
	}

	var triple []json.RawMessage
	if err := json.Unmarshal(raw, &triple); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAuxData, err)
	}
	if len(triple) != 3 {
		return nil, fmt.Errorf("%w: expected 3 elements, got %d", ErrMalformedAuxData, len(triple))
	}

	var endLocations []Location
	if err := json.Unmarshal(triple[2], &endLocations); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAuxData, err)
	}
	return endLocations, nil
}

// EncodeAuxData builds an auxData blob carrying the given trace-endpoint
// locations. The first two slots of the triple are reserved by the producer
// and left null here.
func EncodeAuxData(endLocations []Location) (string, error) {
	triple := []interface{}{nil, nil, endLocations}
	raw, err := json.Marshal(triple)
	if err != nil {
		return "", fmt.Errorf("failed to marshal aux data: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
