package navpanel

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/cms-admin/internal/pkg/cache"
)

var ErrMountNotFound = errors.New("navigation panel mount not found")

// Mounts tracks the UIState of every live panel. An entry lives from the page
// render that created it until Unmount or until it sits idle for the TTL.
type Mounts struct {
	states *cache.UnifiedCache[*UIState]
	logger *zap.Logger
}

func NewMounts(ttl time.Duration, logger *zap.Logger) *Mounts {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Mounts{
		states: cache.NewUnifiedCache[*UIState](ttl, "nav_mounts", logger),
		logger: logger,
	}
	m.states.OnEvicted(func(key string, _ *UIState) {
		m.logger.Debug("Navigation panel unmounted", zap.String("mount_id", key))
	})
	return m
}

// Mount creates a fresh UIState with the user menu closed.
func (m *Mounts) Mount() (uuid.UUID, *UIState) {
	id := uuid.New()
	state := &UIState{}
	m.states.Set(id.String(), state)
	return id, state
}

// Lookup returns the state of a live mount and restarts its idle timer.
func (m *Mounts) Lookup(id uuid.UUID) (*UIState, error) {
	state, ok := m.states.Get(id.String())
	if !ok || state == nil {
		return nil, ErrMountNotFound
	}
	m.states.Touch(id.String())
	return state, nil
}

func (m *Mounts) Unmount(id uuid.UUID) {
	m.states.Delete(id.String())
}

func (m *Mounts) Len() int {
	return m.states.Size()
}
