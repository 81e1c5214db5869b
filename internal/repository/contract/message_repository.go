package contract

import (
	"context"

	"modern-assistant-be/internal/entity"
	"modern-assistant-be/internal/repository/specification"
)

type MessageRepository interface {
	// Create inserts the message and bumps the parent conversation's
	// updated_at as a side effect.
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
