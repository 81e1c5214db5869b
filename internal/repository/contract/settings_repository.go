package contract

import (
	"context"

	"modern-assistant-be/internal/entity"
)

// SettingsRepository manages the settings singleton row.
type SettingsRepository interface {
	// Find returns the settings row, or nil when none exists yet.
	Find(ctx context.Context) (*entity.Settings, error)
	Create(ctx context.Context, settings *entity.Settings) error
	Update(ctx context.Context, settings *entity.Settings) error
}
