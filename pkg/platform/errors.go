package platform

import "errors"

// Sentinel errors for platform operations.
var (
	// ErrClosed is returned when operating on a closed run loop.
	ErrClosed = errors.New("platform: loop closed")

	// ErrDispatchRefused is reported when a callback could not be scheduled
	// on the UI thread.
	ErrDispatchRefused = errors.New("platform: dispatch refused")
)
