package sessions

import (
	"context"

	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.AccessSession) error
	GetByDevice(ctx context.Context, contentID, fingerprint string) (*models.AccessSession, error)
	GetByID(ctx context.Context, id string) (*models.AccessSession, error)
	Update(ctx context.Context, s *models.AccessSession) error
	DeleteByContentID(ctx context.Context, contentID string) error
}
