package nw

import (
	"fmt"

	"cloudeng.io/errors"
)

// Options configures one alignment.
//
// Fields:
//   - Banded           — explore only cells with |row−col| ≤ MaxIndels.
//   - MaxIndels        — band radius; the band is 2·MaxIndels+1 columns wide.
//     Ignored unless Banded is set. Must be ≥ 0.
//   - MaxCompareLength — each sequence is truncated to this many symbols
//     before anything else happens. Must be > 0.
type Options struct {
	Banded           bool
	MaxIndels        int
	MaxCompareLength int
}

// DefaultOptions returns full-mode options with MaxIndels=DefaultMaxIndels
// and MaxCompareLength=DefaultMaxCompareLength.
func DefaultOptions() Options {
	return Options{
		Banded:           false,
		MaxIndels:        DefaultMaxIndels,
		MaxCompareLength: DefaultMaxCompareLength,
	}
}

// Validate reports every invalid field at once. The returned error matches
// ErrBadLength and/or ErrBadBandwidth under errors.Is.
func (o Options) Validate() error {
	errs := &errors.M{}
	if o.MaxCompareLength <= 0 {
		errs.Append(fmt.Errorf("MaxCompareLength=%d: %w", o.MaxCompareLength, ErrBadLength))
	}
	if o.MaxIndels < 0 {
		errs.Append(fmt.Errorf("MaxIndels=%d: %w", o.MaxIndels, ErrBadBandwidth))
	}

	return errs.Err()
}

// truncate returns the first n symbols of s.
func truncate(s []rune, n int) []rune {
	if len(s) > n {
		return s[:n]
	}

	return s
}
