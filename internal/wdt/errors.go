// internal/wdt/errors.go
package wdt

import "errors"

var (
	// ErrAlreadyBound is returned by Bind when a controller already owns
	// the watchdog. Fatal at startup; never retried.
	ErrAlreadyBound = errors.New("wdt: watchdog already bound")

	// ErrTimeoutTooLong is returned by Configure when the requested
	// timeout exceeds the largest hardware range. The watchdog is left
	// disabled; the caller may retry with a shorter timeout.
	ErrTimeoutTooLong = errors.New("wdt: requested timeout exceeds hardware maximum")

	// ErrNotBound is returned by ForceReset before a successful Bind.
	// There is no hardware to reset, so nothing was done.
	ErrNotBound = errors.New("wdt: watchdog not bound")
)
