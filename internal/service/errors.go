package service

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrKnowledgeNotFound    = errors.New("knowledge entry not found")
	ErrEmptyMessage         = errors.New("message must not be empty")
)
