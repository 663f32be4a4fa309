package nw

import "errors"

// Sentinel errors. Callers match them with errors.Is; Options.Validate may
// wrap several of them into one error.
var (
	// ErrBadLength indicates a non-positive MaxCompareLength.
	ErrBadLength = errors.New("nw: max compare length must be > 0")

	// ErrBadBandwidth indicates a negative MaxIndels.
	ErrBadBandwidth = errors.New("nw: max indels must be >= 0")

	// ErrUnreachable indicates the last cell lies outside the band, so there
	// is no path to backtrack. Align reports this case as a +Inf Result instead.
	ErrUnreachable = errors.New("nw: no alignment possible within band")
)
