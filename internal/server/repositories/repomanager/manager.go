package repomanager

import (
	"context"

	"github.com/dmitrijs2005/secureshare/internal/server/repositories/activities"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/certificates"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/contents"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/pins"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/sessions"
)

// Repositories is the set of repositories bound to one transaction.
type Repositories interface {
	Contents() contents.Repository
	Pins() pins.Repository
	Sessions() sessions.Repository
	Activities() activities.Repository
	Certificates() certificates.Repository
}

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	// WithTx runs fn in a single transaction: every write made through the
	// given Repositories is committed when fn returns nil and discarded
	// otherwise. Calls must not be nested.
	WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
	Close() error
}
