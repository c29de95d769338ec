package protocol

import "errors"

// ErrFrameTooLarge is returned for frames above Limits.MaxFrameSize.
var ErrFrameTooLarge = errors.New("protocol: frame too large")

// Limits bounds what a client frame may carry. Zero means unlimited.
type Limits struct {
	MaxFrameSize   int
	MaxValueLength int
}

// DefaultLimits allows a full message textarea plus generous headroom.
func DefaultLimits() Limits {
	return Limits{
		MaxFrameSize:   64 * 1024,
		MaxValueLength: 8 * 1024,
	}
}
