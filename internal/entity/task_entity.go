package entity

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Id             uuid.UUID
	ConversationId *uuid.UUID // back-reference, not ownership
	Title          string
	Description    string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
