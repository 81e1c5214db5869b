package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeEntry describes a business process in the knowledge base.
type KnowledgeEntry struct {
	Id          uuid.UUID
	Title       string
	Description string
	Category    string
	Content     string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// KnowledgeEmbedding is one embedded chunk of a knowledge entry's content.
type KnowledgeEmbedding struct {
	Id               uuid.UUID
	KnowledgeEntryId uuid.UUID
	Document         string
	EmbeddingValue   []float32
	ChunkIndex       int
	CreatedAt        time.Time
}
