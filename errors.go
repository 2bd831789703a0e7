package chplacement

import "errors"

// Sentinel errors for every usage-error kind the façade can reject.
// Callers should compare against these with errors.Is rather than
// string-matching.
var (
	ErrUnknownAlgorithm      = errors.New("chplacement: unknown algorithm name")
	ErrInvalidServerCount    = errors.New("chplacement: server count must be nonzero")
	ErrInvalidVirtFactor     = errors.New("chplacement: virt_factor must be nonzero")
	ErrReplicationOutOfRange = errors.New("chplacement: replication factor out of range")
	ErrInvalidStripSize      = errors.New("chplacement: strip_size must be positive")
	ErrInvalidStripeWidth    = errors.New("chplacement: max_stripe_width must be at least 1")
	ErrFinalized             = errors.New("chplacement: instance already finalized")
)
