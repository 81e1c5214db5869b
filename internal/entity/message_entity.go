package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutable once created. Ordering within a conversation is by
// CreatedAt ascending.
type Message struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Role           string
	Content        string
	CreatedAt      time.Time
}
