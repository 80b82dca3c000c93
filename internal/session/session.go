package session

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/relaxrp/storefront/internal/domain"
	"github.com/relaxrp/storefront/internal/storage"
)

// Manager persists the logged-in user record across runs. Absent or
// malformed state means "not logged in", never an error.
type Manager struct {
	store  storage.Store
	logger *zap.Logger
}

func NewManager(store storage.Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, logger: logger}
}

// Current returns the persisted user, or nil when nobody is logged in.
func (m *Manager) Current(ctx context.Context) *domain.User {
	data, err := m.store.Get(ctx, storage.KeyUser)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		m.logger.Warn("user record load failed", zap.Error(err))
		return nil
	}

	var user domain.User
	if errUnmarshal := json.Unmarshal(data, &user); errUnmarshal != nil {
		m.logger.Warn("stored user record is malformed", zap.Error(errUnmarshal))
		return nil
	}
	return &user
}

func (m *Manager) SetUser(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, storage.KeyUser, data)
}

func (m *Manager) ClearUser(ctx context.Context) error {
	return m.store.Delete(ctx, storage.KeyUser)
}
