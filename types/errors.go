package types

import "errors"

// Sentinel errors shared across extract-sos packages.
//
// Components use these for known error conditions and wrap external errors
// with context using fmt.Errorf("...: %w", err) so callers can match with
// errors.Is.
var (
	// ErrInvalidWorkerCount is returned when a plan is requested for fewer
	// than one worker.
	ErrInvalidWorkerCount = errors.New("worker count must be at least 1")

	// ErrRankOutOfRange is returned when a rank falls outside 0..Size()-1.
	ErrRankOutOfRange = errors.New("rank out of range")

	// ErrPlanChecksumMismatch is returned when a received plan's checksum
	// does not match the payload, indicating corruption or divergence.
	ErrPlanChecksumMismatch = errors.New("plan checksum mismatch")

	// ErrGroupSizeMismatch is returned when a transport is configured with
	// a group size that disagrees with its peers.
	ErrGroupSizeMismatch = errors.New("coordination group size mismatch")
)
