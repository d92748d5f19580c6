package domain

import "errors"

var (
	// ErrNoRelease means the remote catalog found no candidate release.
	ErrNoRelease = errors.New("no matching release")

	// ErrNoCover means the release exists but carries no cover art.
	ErrNoCover = errors.New("release has no cover art")

	// ErrUnknownDevice means a state referenced a device id outside the
	// configured slot range. Malformed input fails fast.
	ErrUnknownDevice = errors.New("unknown device id")
)
