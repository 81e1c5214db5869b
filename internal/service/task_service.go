package service

import (
	"context"
	"time"

	"modern-assistant-be/internal/constant"
	"modern-assistant-be/internal/dto"
	"modern-assistant-be/internal/entity"
	"modern-assistant-be/internal/repository/specification"
	"modern-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITaskService interface {
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	Update(ctx context.Context, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, error)
	GetAll(ctx context.Context, status string) ([]*dto.TaskResponse, error)
}

type taskService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTaskService(uowFactory unitofwork.RepositoryFactory) ITaskService {
	return &taskService{
		uowFactory: uowFactory,
	}
}

func (s *taskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.ConversationId != nil {
		conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: *req.ConversationId})
		if err != nil {
			return nil, err
		}
		if conversation == nil {
			return nil, ErrConversationNotFound
		}
	}

	task := entity.Task{
		Id:             uuid.New(),
		ConversationId: req.ConversationId,
		Title:          req.Title,
		Description:    req.Description,
		Status:         constant.TaskStatusPending,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := uow.TaskRepository().Create(ctx, &task); err != nil {
		return nil, err
	}

	return toTaskResponse(&task), nil
}

func (s *taskService) Update(ctx context.Context, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := uow.TaskRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	task.UpdatedAt = time.Now()

	if err := uow.TaskRepository().Update(ctx, task); err != nil {
		return nil, err
	}

	return toTaskResponse(task), nil
}

func (s *taskService) Show(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := uow.TaskRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	return toTaskResponse(task), nil
}

func (s *taskService) GetAll(ctx context.Context, status string) ([]*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	tasks, err := uow.TaskRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TaskResponse, len(tasks))
	for i, t := range tasks {
		res[i] = toTaskResponse(t)
	}
	return res, nil
}

func toTaskResponse(task *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		Id:             task.Id,
		ConversationId: task.ConversationId,
		Title:          task.Title,
		Description:    task.Description,
		Status:         task.Status,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}
