// Package settings exposes the single global settings object.
package settings

import (
	"github.com/vinpos/backend/internal/domain/shared"
)

// Service reads and replaces the global settings
type Service struct {
	settings shared.SettingsRepository
}

// NewService creates a new settings Service
func NewService(settings shared.SettingsRepository) *Service {
	return &Service{settings: settings}
}

// Get returns the current settings
func (s *Service) Get() shared.Settings {
	return s.settings.Get()
}

// Update replaces the settings wholesale
func (s *Service) Update(next shared.Settings) shared.Settings {
	s.settings.Update(next)
	return s.settings.Get()
}
