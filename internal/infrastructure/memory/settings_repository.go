package memory

import (
	"sync"

	"github.com/vinpos/backend/internal/domain/shared"
)

// SettingsRepository holds the single process-wide settings value
type SettingsRepository struct {
	mu       sync.RWMutex
	settings shared.Settings
}

// NewSettingsRepository creates a settings repository with the given initial value
func NewSettingsRepository(initial shared.Settings) *SettingsRepository {
	return &SettingsRepository{settings: initial}
}

// Get returns the current settings snapshot
func (r *SettingsRepository) Get() shared.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

// Update replaces the settings wholesale
func (r *SettingsRepository) Update(settings shared.Settings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings
}
