package usecase

import (
	"context"

	"sukhan/internal/domain/entity"
	"sukhan/internal/domain/repository"

	"github.com/google/uuid"
)

// PoemInput carries a poem submission.
type PoemInput struct {
	GenreID      uuid.UUID `json:"genreId" validate:"required"`
	TitleUrdu    string    `json:"titleUrdu"`
	TitleRoman   string    `json:"titleRoman" validate:"required"`
	ContentUrdu  string    `json:"contentUrdu"`
	ContentRoman string    `json:"contentRoman" validate:"required"`
	AudioURL     string    `json:"audioUrl"`
}

// PoemUsecase covers submission, the public reading surface and the
// moderation state machine.
type PoemUsecase interface {
	// SubmitPoem creates a poem under the user's poet profile. It enters
	// the pending state unless auto-approval is switched on in settings.
	SubmitPoem(ctx context.Context, userID uuid.UUID, input PoemInput) (*entity.Poem, error)

	// GetPoem returns a poem by ID. Unpublished poems are only visible to
	// their author and admins; includeHidden conveys that right.
	GetPoem(ctx context.Context, id uuid.UUID, includeHidden bool) (*entity.Poem, error)

	// ListPoems returns published poems matching the filter.
	ListPoems(ctx context.Context, filter repository.PoemListFilter) ([]*entity.Poem, error)

	// ListAllPoems returns every poem for the admin back office.
	ListAllPoems(ctx context.Context) ([]*entity.Poem, error)

	// ApprovePoem moves a poem to published. Approving an already
	// published poem is a no-op; approval lifts a rejection. Non-admin
	// actors are refused without state change.
	ApprovePoem(ctx context.Context, actor Actor, poemID uuid.UUID) (*entity.Poem, error)

	// RejectPoem moves a poem to rejected. Rejecting an already rejected
	// poem is a no-op. Admin only.
	RejectPoem(ctx context.Context, actor Actor, poemID uuid.UUID) (*entity.Poem, error)

	// TogglePoemVisibility flips pending to published and published back
	// to pending. Rejected poems cannot be toggled; rejection must be
	// lifted through ApprovePoem first. Admin only.
	TogglePoemVisibility(ctx context.Context, actor Actor, poemID uuid.UUID) (*entity.Poem, error)

	// DeletePoem removes the poem and every engagement fact referencing
	// it, in one transaction. Admin only.
	DeletePoem(ctx context.Context, actor Actor, poemID uuid.UUID) error
}
