package orderstate

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// Outcome classifies a transition attempt.
type Outcome string

const (
	// OutcomeApplied means the transition was legal and durably persisted.
	OutcomeApplied Outcome = "applied"

	// OutcomeRejected means the current status does not allow the operation.
	// Nothing was mutated or persisted.
	OutcomeRejected Outcome = "rejected"

	// OutcomeConflict means somebody else committed a transition of the same
	// order first. The in-memory order is mutated but not persisted.
	OutcomeConflict Outcome = "conflict"

	// OutcomePersistFailed means the store failed for any other reason.
	// The in-memory order is mutated but not persisted.
	OutcomePersistFailed Outcome = "persist_failed"

	// OutcomeInvalid means the order could not be resolved to a behavior:
	// it is nil, not constructed, or carries an unknown status.
	OutcomeInvalid Outcome = "invalid"
)

// Outcomes lists every outcome.
func Outcomes() []Outcome {
	return []Outcome{OutcomeApplied, OutcomeRejected, OutcomeConflict, OutcomePersistFailed, OutcomeInvalid}
}

// Result describes one transition attempt.
type Result struct {
	// OrderID is the zero UUID when the order was nil.
	OrderID   kernel.UUID
	Operation order.Operation
	Outcome   Outcome

	// From is the status the attempt started at; To is the status the order
	// is in afterwards (equal to From unless the transition was applied in memory).
	From order.Status
	To   order.Status

	// Err holds the rejection or persistence error; nil when applied.
	Err error
}

// OK reports whether the transition was legal and persisted.
func (r Result) OK() bool {
	return r.Outcome == OutcomeApplied
}
