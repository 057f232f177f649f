package contents

import (
	"context"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Content) error
	Get(ctx context.Context, id string) (*models.Content, error)
	// GetForUpdate reads the item and locks it until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id string) (*models.Content, error)
	Update(ctx context.Context, c *models.Content) error
	Delete(ctx context.Context, id string) error
	// ListExpirable returns active items whose expiry lies before now.
	ListExpirable(ctx context.Context, now time.Time) ([]string, error)
	// ListTerminal returns items that left the active state at or before the
	// given time.
	ListTerminal(ctx context.Context, before time.Time) ([]string, error)
	Stats(ctx context.Context) (*models.Stats, error)
}
