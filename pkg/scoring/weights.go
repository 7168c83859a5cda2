package scoring

import (
	"errors"
	"fmt"
)

// ErrInvalidWeight rejects weight values outside [0, 1].
var ErrInvalidWeight = errors.New("weight must be between 0 and 1")

// Weights holds per-browser weighting for weighted scoring. Browsers
// without an explicit weight count as 1.0.
type Weights struct {
	byBrowser map[string]float64
}

// DefaultWeights returns the standard browser weights: the evergreen
// browsers at full weight, Opera and IE discounted.
func DefaultWeights() *Weights {
	return &Weights{byBrowser: map[string]float64{
		"chrome":  1.0,
		"firefox": 1.0,
		"safari":  1.0,
		"edge":    1.0,
		"opera":   0.7,
		"ie":      0.5,
	}}
}

// NewWeights creates an empty weight set (every browser at 1.0).
func NewWeights() *Weights {
	return &Weights{byBrowser: map[string]float64{}}
}

// Set assigns a browser weight. A value outside [0, 1] is rejected with
// ErrInvalidWeight and leaves existing weights untouched.
func (w *Weights) Set(browser string, weight float64) error {
	if weight < 0 || weight > 1 {
		return fmt.Errorf("%w: %s=%g", ErrInvalidWeight, browser, weight)
	}
	w.byBrowser[browser] = weight
	return nil
}

// Get returns the weight for a browser, defaulting to 1.0.
func (w *Weights) Get(browser string) float64 {
	if weight, ok := w.byBrowser[browser]; ok {
		return weight
	}
	return 1.0
}
