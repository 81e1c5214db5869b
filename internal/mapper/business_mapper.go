package mapper

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"

	"modern-assistant-be/internal/entity"
	"modern-assistant-be/internal/model"
)

// BusinessMapper converts the task / knowledge-base / settings models.
type BusinessMapper struct{}

func NewBusinessMapper() *BusinessMapper {
	return &BusinessMapper{}
}

func (m *BusinessMapper) TaskToEntity(t *model.Task) *entity.Task {
	if t == nil {
		return nil
	}
	return &entity.Task{
		Id:             t.Id,
		ConversationId: t.ConversationId,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (m *BusinessMapper) TaskToModel(t *entity.Task) *model.Task {
	if t == nil {
		return nil
	}
	return &model.Task{
		Id:             t.Id,
		ConversationId: t.ConversationId,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (m *BusinessMapper) KnowledgeEntryToEntity(k *model.KnowledgeEntry) *entity.KnowledgeEntry {
	if k == nil {
		return nil
	}
	return &entity.KnowledgeEntry{
		Id:          k.Id,
		Title:       k.Title,
		Description: k.Description,
		Category:    k.Category,
		Content:     k.Content,
		Tags:        []string(k.Tags),
		CreatedAt:   k.CreatedAt,
		UpdatedAt:   k.UpdatedAt,
	}
}

func (m *BusinessMapper) KnowledgeEntryToModel(k *entity.KnowledgeEntry) *model.KnowledgeEntry {
	if k == nil {
		return nil
	}
	return &model.KnowledgeEntry{
		Id:          k.Id,
		Title:       k.Title,
		Description: k.Description,
		Category:    k.Category,
		Content:     k.Content,
		Tags:        datatypes.JSONSlice[string](k.Tags),
		CreatedAt:   k.CreatedAt,
		UpdatedAt:   k.UpdatedAt,
	}
}

func (m *BusinessMapper) KnowledgeEmbeddingToModel(e *entity.KnowledgeEmbedding) *model.KnowledgeEmbedding {
	if e == nil {
		return nil
	}
	return &model.KnowledgeEmbedding{
		Id:               e.Id,
		KnowledgeEntryId: e.KnowledgeEntryId,
		Document:         e.Document,
		EmbeddingValue:   pgvector.NewVector(e.EmbeddingValue),
		ChunkIndex:       e.ChunkIndex,
		CreatedAt:        e.CreatedAt,
	}
}

func (m *BusinessMapper) SettingsToEntity(s *model.Settings) *entity.Settings {
	if s == nil {
		return nil
	}
	return &entity.Settings{
		Id:                 s.Id,
		AssistantName:      s.AssistantName,
		SystemInstructions: s.SystemInstructions,
		UpdatedAt:          s.UpdatedAt,
	}
}

func (m *BusinessMapper) SettingsToModel(s *entity.Settings) *model.Settings {
	if s == nil {
		return nil
	}
	return &model.Settings{
		Id:                 s.Id,
		AssistantName:      s.AssistantName,
		SystemInstructions: s.SystemInstructions,
		UpdatedAt:          s.UpdatedAt,
	}
}
