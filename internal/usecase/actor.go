package usecase

import "github.com/google/uuid"

// Actor identifies the authenticated caller as handed in by the
// delivery layer. The core performs no credential checks; it trusts
// these values but re-checks the admin flag on every moderation
// transition, so a missing route guard cannot mutate state.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}
