package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Key-value stores return these
// (optionally wrapped) so the registry and services can translate them into
// domain errors.
//
// These represent factual states about stored records, not contract
// violations: for those, use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
