package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateKnowledgeRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Content     string   `json:"content" validate:"required"`
	Tags        []string `json:"tags,omitempty"`
}

type UpdateKnowledgeRequest struct {
	Id          uuid.UUID `json:"id" validate:"required"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

type KnowledgeResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PublishEmbedKnowledgeMessage is the payload of the async embedding job.
type PublishEmbedKnowledgeMessage struct {
	KnowledgeEntryId uuid.UUID `json:"knowledge_entry_id"`
}
