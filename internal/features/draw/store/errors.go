package store

import "errors"

// Sentinel errors reported by draw operations. Each one means the operation
// was a no-op; callers disable the matching control rather than retry.
var (
	ErrDrawRunning = errors.New("a draw is already in progress")
	ErrNoPrizes    = errors.New("no prizes remain")
	ErrNoEligible  = errors.New("no eligible participants")
	ErrPrizeIndex  = errors.New("no prize at wheel index")
)
