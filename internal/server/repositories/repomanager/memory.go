package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/secureshare/internal/server/repositories/memory"
)

// MemoryRepositoryManager serializes transactions with a single lock. Each
// transaction works on a clone of the store, which replaces the committed
// state only when fn succeeds.
type MemoryRepositoryManager struct {
	mu    sync.Mutex
	store *memory.Store
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{store: memory.NewStore()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Close() error { return nil }

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := m.store.Clone()
	if err := fn(ctx, work); err != nil {
		return err
	}
	m.store = work
	return nil
}
