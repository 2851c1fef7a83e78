// Package usecase defines the application's use case interfaces and the
// data transfer types they exchange with the delivery layer.
package usecase

// Outcome reports what an idempotent engagement operation actually did.
// Callers that retry a request can distinguish "this write landed" from
// "the state was already there", while both map to a successful response.
type Outcome string

const (
	// OutcomeApplied means the operation changed state.
	OutcomeApplied Outcome = "applied"
	// OutcomeAlreadyExisted means the fact was already present and the
	// operation changed nothing.
	OutcomeAlreadyExisted Outcome = "already_existed"
	// OutcomeNoop means there was nothing to remove.
	OutcomeNoop Outcome = "noop"
)

// Changed reports whether the operation mutated any state.
func (o Outcome) Changed() bool {
	return o == OutcomeApplied
}
