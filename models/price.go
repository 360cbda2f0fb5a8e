package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarketPriceSentinel is what the exchange sends in place of a price when
// none applies, e.g. for an untriggered stop market order.
const MarketPriceSentinel = "market_price"

// OptionalFloat is a numeric field the exchange may replace with a string
// sentinel. A JSON number decodes to a present value; any JSON string
// decodes to an absent one and its text is dropped.
type OptionalFloat struct {
	Value float64
	Valid bool
}

// Some returns a present value.
func Some(v float64) OptionalFloat {
	return OptionalFloat{Value: v, Valid: true}
}

// None returns an absent value.
func None() OptionalFloat {
	return OptionalFloat{}
}

// Get returns the value and whether it is present.
func (f OptionalFloat) Get() (float64, bool) {
	return f.Value, f.Valid
}

func (f OptionalFloat) String() string {
	if !f.Valid {
		return "none"
	}
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// UnmarshalJSON accepts a JSON number or a JSON string and nothing else.
func (f *OptionalFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &TypeMismatchError{Value: "empty input", Expected: []string{"string", "number"}}
	}

	switch c := data[0]; {
	case c == '-' || (c >= '0' && c <= '9'):
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode number %s: %w", data, err)
		}
		*f = Some(v)
		return nil
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode string %s: %w", data, err)
		}
		*f = None()
		return nil
	default:
		return &TypeMismatchError{Value: string(data), Expected: []string{"string", "number"}}
	}
}

// MarshalJSON writes present values as numbers and absent values as the
// market price sentinel.
func (f OptionalFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return json.Marshal(MarketPriceSentinel)
	}
	return json.Marshal(f.Value)
}

// requireField fails unless the JSON object in data has a member named
// field. Payloads carrying an OptionalFloat use it so that an absent member
// is not mistaken for the sentinel.
func requireField(data []byte, field string) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	if _, ok := members[field]; !ok {
		return &MissingFieldError{Field: field}
	}
	return nil
}
