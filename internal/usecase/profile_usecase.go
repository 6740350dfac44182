package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"dynamic_shipping/internal/domain/entities"
	"dynamic_shipping/internal/usecase/interfaces"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrInvalidProfile       = errors.New("invalid profile")
)

// IProfileUseCase exposes the settings screen operations.

type IProfileUseCase interface {
	Get(ctx context.Context, userID string) (entities.Profile, error)
	Create(ctx context.Context, p entities.Profile) (entities.Profile, error)
	Update(ctx context.Context, userID string, upd entities.ProfileUpdate) (entities.Profile, error)
}

type ProfileUseCase struct {
	repo interfaces.IProfileRepository
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

func (u *ProfileUseCase) Get(ctx context.Context, userID string) (entities.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Profile{}, ErrInvalidUserID
	}

	p, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Profile{}, err
	}
	if p.ID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}
	return p, nil
}

// Create registers the profile row, typically right after sign-up. One
// profile per user.
func (u *ProfileUseCase) Create(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Profile{}, ErrInvalidUserID
	}
	if strings.TrimSpace(p.Email) == "" {
		return entities.Profile{}, ErrInvalidProfile
	}

	if existing, err := u.repo.GetByUserID(ctx, p.ID); err != nil {
		return entities.Profile{}, err
	} else if existing.ID != "" {
		return entities.Profile{}, ErrProfileAlreadyExists
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *ProfileUseCase) Update(ctx context.Context, userID string, upd entities.ProfileUpdate) (entities.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Profile{}, ErrInvalidUserID
	}

	updated, err := u.repo.Update(ctx, userID, upd)
	if err != nil {
		return entities.Profile{}, err
	}
	if updated.ID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}
	return updated, nil
}
