package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	ConversationId *uuid.UUID `json:"conversation_id,omitempty"`
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description,omitempty"`
}

type UpdateTaskRequest struct {
	Id          uuid.UUID `json:"id" validate:"required"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *string   `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
}

type TaskResponse struct {
	Id             uuid.UUID  `json:"id"`
	ConversationId *uuid.UUID `json:"conversation_id,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
