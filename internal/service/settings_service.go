package service

import (
	"context"
	"time"

	"modern-assistant-be/internal/constant"
	"modern-assistant-be/internal/dto"
	"modern-assistant-be/internal/entity"
	"modern-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
	// GetOrCreate returns the settings row, seeding defaults on first use.
	GetOrCreate(ctx context.Context) (*entity.Settings, error)
}

type settingsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory) ISettingsService {
	return &settingsService{
		uowFactory: uowFactory,
	}
}

func (s *settingsService) GetOrCreate(ctx context.Context) (*entity.Settings, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	settings, err := uow.SettingsRepository().Find(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = &entity.Settings{
		Id:                 uuid.New(),
		AssistantName:      constant.DefaultAssistantName,
		SystemInstructions: constant.DefaultSystemInstructions,
		UpdatedAt:          time.Now(),
	}
	if err := uow.SettingsRepository().Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := s.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func (s *settingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := s.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.AssistantName != nil && *req.AssistantName != settings.AssistantName {
		settings.AssistantName = *req.AssistantName
		changed = true
	}
	if req.SystemInstructions != nil && *req.SystemInstructions != settings.SystemInstructions {
		settings.SystemInstructions = *req.SystemInstructions
		changed = true
	}

	if changed {
		settings.UpdatedAt = time.Now()
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.SettingsRepository().Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	return toSettingsResponse(settings), nil
}

func toSettingsResponse(settings *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		AssistantName:      settings.AssistantName,
		SystemInstructions: settings.SystemInstructions,
		UpdatedAt:          settings.UpdatedAt,
	}
}
