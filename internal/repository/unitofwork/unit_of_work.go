package unitofwork

import (
	"context"

	"modern-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	TaskRepository() contract.TaskRepository
	KnowledgeRepository() contract.KnowledgeRepository
	KnowledgeEmbeddingRepository() contract.KnowledgeEmbeddingRepository
	SettingsRepository() contract.SettingsRepository
}
