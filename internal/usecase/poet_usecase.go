package usecase

import (
	"context"
	"time"

	"sukhan/internal/domain/entity"
	"sukhan/internal/domain/repository"

	"github.com/google/uuid"
)

// PoetInput carries a poet profile registration or update.
type PoetInput struct {
	NameRoman   string     `json:"nameRoman" validate:"required"`
	NameUrdu    string     `json:"nameUrdu"`
	Takhallus   string     `json:"takhallus"`
	Bio         string     `json:"bio"`
	ImageURL    string     `json:"imageUrl"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
}

// PoetUsecase covers poet profile lifecycle and the public poet surface.
type PoetUsecase interface {
	// RegisterPoet creates a poet profile for the user. One profile per
	// user; the slug is derived from the roman name with numeric
	// suffixing on collision. Registration can be closed by settings.
	RegisterPoet(ctx context.Context, userID uuid.UUID, input PoetInput) (*entity.Poet, error)

	// GetPoet returns a poet by ID.
	GetPoet(ctx context.Context, id uuid.UUID) (*entity.Poet, error)

	// GetPoetBySlug returns a poet by slug.
	GetPoetBySlug(ctx context.Context, slug string) (*entity.Poet, error)

	// GetOwnPoet returns the poet profile owned by the user, if any.
	GetOwnPoet(ctx context.Context, userID uuid.UUID) (*entity.Poet, error)

	// ListPoets returns published poets.
	ListPoets(ctx context.Context, sort repository.PoetSort, limit int) ([]*entity.Poet, error)

	// ListAllPoets returns every poet for the admin back office.
	ListAllPoets(ctx context.Context) ([]*entity.Poet, error)

	// UpdatePoet applies profile changes. Only the owning user may edit.
	UpdatePoet(ctx context.Context, userID, poetID uuid.UUID, input PoetInput) (*entity.Poet, error)

	// SetPoetPublished toggles poet visibility. Admin only.
	SetPoetPublished(ctx context.Context, actor Actor, poetID uuid.UUID, published bool) error

	// DeletePoet removes the poet, its poems and every engagement fact
	// referencing them, in one transaction. Admin only.
	DeletePoet(ctx context.Context, actor Actor, poetID uuid.UUID) error

	// ShareQR renders a QR code pointing at the poet's public page.
	ShareQR(ctx context.Context, slug string) ([]byte, error)
}
