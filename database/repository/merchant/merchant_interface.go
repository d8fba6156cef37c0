package merchantRepo

import (
	"context"
	"errors"

	"lokapasar/models"
)

// ErrNotFound is returned when no merchant matches the query.
var ErrNotFound = errors.New("merchant not found")

// MerchantRepository defines persistence operations for merchant storefronts.
type MerchantRepository interface {
	GetByID(ctx context.Context, id string) (*models.Merchant, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]models.Merchant, error)
	GetAll(ctx context.Context) ([]models.Merchant, error)
	Create(ctx context.Context, merchant *models.Merchant) error
	Update(ctx context.Context, merchant *models.Merchant) error
	SetBlocked(ctx context.Context, id string, blocked bool) error
}
