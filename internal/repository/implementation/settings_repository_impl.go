package implementation

import (
	"context"
	"errors"

	"modern-assistant-be/internal/entity"
	"modern-assistant-be/internal/mapper"
	"modern-assistant-be/internal/model"
	"modern-assistant-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SettingsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BusinessMapper
}

func NewSettingsRepository(db *gorm.DB) contract.SettingsRepository {
	return &SettingsRepositoryImpl{
		db:     db,
		mapper: mapper.NewBusinessMapper(),
	}
}

func (r *SettingsRepositoryImpl) Find(ctx context.Context) (*entity.Settings, error) {
	var m model.Settings
	if err := r.db.WithContext(ctx).Order("updated_at asc").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SettingsToEntity(&m), nil
}

func (r *SettingsRepositoryImpl) Create(ctx context.Context, settings *entity.Settings) error {
	m := r.mapper.SettingsToModel(settings)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*settings = *r.mapper.SettingsToEntity(m)
	return nil
}

func (r *SettingsRepositoryImpl) Update(ctx context.Context, settings *entity.Settings) error {
	m := r.mapper.SettingsToModel(settings)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*settings = *r.mapper.SettingsToEntity(m)
	return nil
}
