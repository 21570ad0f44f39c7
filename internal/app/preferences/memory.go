package preferences

import (
	"context"

	"go.uber.org/zap"

	"github.com/FACorreiaa/cms-admin/internal/pkg/cache"
)

// MemoryStore keeps preferences for the lifetime of the process.
type MemoryStore struct {
	values *cache.UnifiedCache[bool]
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{values: cache.NewUnifiedCache[bool](0, "preferences", logger)}
}

func (m *MemoryStore) Get(_ context.Context, owner, key string) (bool, error) {
	v, _ := m.values.Get(cache.Key(owner, key))
	return v, nil
}

func (m *MemoryStore) Set(_ context.Context, owner, key string, value bool) error {
	m.values.Set(cache.Key(owner, key), value)
	return nil
}
