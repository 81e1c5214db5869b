package service

import (
	"context"
	"encoding/json"
	"time"

	"modern-assistant-be/internal/dto"
	"modern-assistant-be/internal/entity"
	"modern-assistant-be/internal/pkg/logger"
	"modern-assistant-be/internal/repository/specification"
	"modern-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IKnowledgeService interface {
	Create(ctx context.Context, req *dto.CreateKnowledgeRequest) (*dto.KnowledgeResponse, error)
	Update(ctx context.Context, req *dto.UpdateKnowledgeRequest) (*dto.KnowledgeResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.KnowledgeResponse, error)
	GetAll(ctx context.Context, category string) ([]*dto.KnowledgeResponse, error)
}

type knowledgeService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *knowledgeService) Create(ctx context.Context, req *dto.CreateKnowledgeRequest) (*dto.KnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry := entity.KnowledgeEntry{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Content:     req.Content,
		Tags:        req.Tags,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uow.KnowledgeRepository().Create(ctx, &entry); err != nil {
		return nil, err
	}

	s.publishEmbedJob(ctx, entry.Id)

	return toKnowledgeResponse(&entry), nil
}

func (s *knowledgeService) Update(ctx context.Context, req *dto.UpdateKnowledgeRequest) (*dto.KnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.KnowledgeRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrKnowledgeNotFound
	}

	contentChanged := false
	if req.Title != nil {
		entry.Title = *req.Title
		contentChanged = true
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Category != nil {
		entry.Category = *req.Category
	}
	if req.Content != nil {
		entry.Content = *req.Content
		contentChanged = true
	}
	if req.Tags != nil {
		entry.Tags = req.Tags
	}
	entry.UpdatedAt = time.Now()

	if err := uow.KnowledgeRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	if contentChanged {
		s.publishEmbedJob(ctx, entry.Id)
	}

	return toKnowledgeResponse(entry), nil
}

func (s *knowledgeService) Show(ctx context.Context, id uuid.UUID) (*dto.KnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.KnowledgeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrKnowledgeNotFound
	}

	return toKnowledgeResponse(entry), nil
}

func (s *knowledgeService) GetAll(ctx context.Context, category string) ([]*dto.KnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "updated_at", Desc: true},
	}
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}

	entries, err := uow.KnowledgeRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.KnowledgeResponse, len(entries))
	for i, e := range entries {
		res[i] = toKnowledgeResponse(e)
	}
	return res, nil
}

// publishEmbedJob queues the entry for async chunking and embedding.
// Failure to queue is logged, never surfaced: the entry itself is saved.
func (s *knowledgeService) publishEmbedJob(ctx context.Context, entryId uuid.UUID) {
	if s.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.PublishEmbedKnowledgeMessage{KnowledgeEntryId: entryId})
	if err != nil {
		s.logger.Error("knowledge", "failed to marshal embed job", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("knowledge", "failed to queue embed job", map[string]interface{}{
			"knowledge_entry_id": entryId,
			"error":              err.Error(),
		})
	}
}

func toKnowledgeResponse(entry *entity.KnowledgeEntry) *dto.KnowledgeResponse {
	return &dto.KnowledgeResponse{
		Id:          entry.Id,
		Title:       entry.Title,
		Description: entry.Description,
		Category:    entry.Category,
		Content:     entry.Content,
		Tags:        entry.Tags,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}
