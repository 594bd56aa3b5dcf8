package sw

import "errors"

var (
	ErrInvalidInput  = errors.New("swalign: invalid input")
	ErrInvalidConfig = errors.New("swalign: invalid configuration")
	ErrAllocation    = errors.New("swalign: allocation failed")
	ErrInternal      = errors.New("swalign: internal inconsistency")
)

// Error kinds as reported across the C boundary.
const (
	KindNone = iota
	KindInvalidInput
	KindInvalidConfig
	KindAllocation
	KindInternal
)

// Kind maps err to its error kind. Unrecognised errors are internal.
func Kind(err error) int {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrInvalidConfig):
		return KindInvalidConfig
	case errors.Is(err, ErrAllocation):
		return KindAllocation
	default:
		return KindInternal
	}
}

var kindLabels = [...]string{
	KindNone:          "ok",
	KindInvalidInput:  "invalid_input",
	KindInvalidConfig: "invalid_config",
	KindAllocation:    "allocation",
	KindInternal:      "internal",
}

func kindLabel(err error) string {
	return kindLabels[Kind(err)]
}
