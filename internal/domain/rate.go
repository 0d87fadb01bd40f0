package domain

import (
	"encoding/json"
	"fmt"
)

// Rate is a ratio that may be undefined when its denominator is zero.
type Rate struct {
	Value   float64
	Defined bool
}

// NewRate divides part by whole. A zero whole yields an undefined rate instead of NaN.
func NewRate(part, whole int) Rate {
	if whole <= 0 {
		return Rate{}
	}
	return Rate{Value: float64(part) / float64(whole), Defined: true}
}

// Percent returns the rate scaled to 0..100, or 0 when undefined.
func (r Rate) Percent() float64 {
	if !r.Defined {
		return 0
	}
	return r.Value * 100
}

// String formats the rate with one decimal ("71.4%") or "N/A".
func (r Rate) String() string {
	if !r.Defined {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", r.Percent())
}

// MarshalJSON encodes an undefined rate as null.
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(r.Percent())
}
