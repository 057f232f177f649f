package pins

import (
	"context"

	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.PinCredential) error
	GetByContentID(ctx context.Context, contentID string) (*models.PinCredential, error)
	GetActiveByLookup(ctx context.Context, lookupKey string) (*models.PinCredential, error)
	Update(ctx context.Context, p *models.PinCredential) error
	DeleteByContentID(ctx context.Context, contentID string) error
}
