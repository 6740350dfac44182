package interfaces

import (
	"context"

	"dynamic_shipping/internal/domain/entities"
)

// IProfileRepository abstracts DynamoDB persistence for Profile. Lookup
// misses return a zero-value Profile and a nil error.

type IProfileRepository interface {
	Create(ctx context.Context, p entities.Profile) (entities.Profile, error)
	GetByUserID(ctx context.Context, userID string) (entities.Profile, error)
	Update(ctx context.Context, userID string, upd entities.ProfileUpdate) (entities.Profile, error)
}
