package botapi

import "fmt"

// Range is an inclusive interval of allowed values which can be clamped to
// or checked against.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// NewRange creates a range with the given bounds.
func NewRange(min, max float64) Range { return Range{Min: min, Max: max} }

// Clamp forces val into the range.
func (r Range) Clamp(val float64) float64 {
	if val < r.Min {
		return r.Min
	}
	if val > r.Max {
		return r.Max
	}
	return val
}

// Contains reports whether val lies within the range, bounds included.
func (r Range) Contains(val float64) bool {
	return r.Min <= val && val <= r.Max
}

// Validate reports an error when the bounds are inverted.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("range min %v greater than max %v", r.Min, r.Max)
	}
	return nil
}
