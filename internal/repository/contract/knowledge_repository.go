package contract

import (
	"context"

	"modern-assistant-be/internal/entity"
	"modern-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeRepository interface {
	Create(ctx context.Context, entry *entity.KnowledgeEntry) error
	Update(ctx context.Context, entry *entity.KnowledgeEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error)
}

type KnowledgeEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.KnowledgeEmbedding) error
	DeleteByEntryId(ctx context.Context, entryId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
