package repository

import "errors"

var (
	// ErrUpdateConflict reports an update targeting an id/tenant pair
	// with no matching record. Distinct from a soft miss: update is a
	// targeted single-record operation, so "nothing happened" must be
	// visible to the caller. Retrying yields the same outcome.
	ErrUpdateConflict = errors.New("no matching record for update")

	// ErrNotImplemented reports a provider/entity combination that has
	// no implementation. It is surfaced per call rather than silently
	// delegating to another provider or returning an empty result.
	ErrNotImplemented = errors.New("operation not implemented for this storage provider")
)
