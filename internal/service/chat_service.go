package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"modern-assistant-be/internal/constant"
	"modern-assistant-be/internal/dto"
	"modern-assistant-be/internal/entity"
	"modern-assistant-be/internal/pkg/logger"
	"modern-assistant-be/internal/repository/specification"
	"modern-assistant-be/internal/repository/unitofwork"
	"modern-assistant-be/pkg/assistant/enrich"
	"modern-assistant-be/pkg/assistant/lang"
	"modern-assistant-be/pkg/assistant/prompt"
	"modern-assistant-be/pkg/events"
	"modern-assistant-be/pkg/llm"
	pktNats "modern-assistant-be/pkg/nats"

	"github.com/google/uuid"
)

type IChatService interface {
	SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetConversations(ctx context.Context) ([]*dto.GetConversationsResponse, error)
	GetChatHistory(ctx context.Context, conversationId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
}

type chatService struct {
	uowFactory      unitofwork.RepositoryFactory
	llmProvider     llm.LLMProvider
	enricher        *enrich.Enricher
	settingsService ISettingsService
	eventPublisher  *pktNats.Publisher
	logger          logger.ILogger
	maxOutputTokens int
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	enricher *enrich.Enricher,
	settingsService ISettingsService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	maxOutputTokens int,
) IChatService {
	return &chatService{
		uowFactory:      uowFactory,
		llmProvider:     llmProvider,
		enricher:        enricher,
		settingsService: settingsService,
		eventPublisher:  eventPublisher,
		logger:          log,
		maxOutputTokens: maxOutputTokens,
	}
}

// SendChat runs one full turn: persist the user message, build the
// enriched prompt, call the model and persist the reply. A completion
// failure still produces a persisted fallback reply; only persistence
// failures propagate as errors.
func (s *chatService) SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	userText := req.Message
	if strings.TrimSpace(userText) == "" {
		return nil, ErrEmptyMessage
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := s.resolveConversation(ctx, uow, req.ConversationId, userText)
	if err != nil {
		return nil, err
	}

	userMessage := entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.MessageRoleUser,
		Content:        userText,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}
	s.notifyMessageCreated(ctx, &userMessage)

	history, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	contextBlock, _ := s.enricher.Build(ctx, userText)

	settings, err := s.settingsService.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	arabic := lang.ContainsArabic(userText)
	systemPrompt := prompt.Compose(prompt.Input{
		AssistantName: settings.AssistantName,
		Instructions:  settings.SystemInstructions,
		Arabic:        arabic,
		ContextBlock:  contextBlock,
		Override:      req.SystemPrompt,
	})

	replyText := s.complete(ctx, systemPrompt, history)

	assistantMessage := entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.MessageRoleAssistant,
		Content:        replyText,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, &assistantMessage); err != nil {
		return nil, err
	}
	s.notifyMessageCreated(ctx, &assistantMessage)

	return &dto.SendChatResponse{
		ConversationId: conversation.Id,
		Title:          conversation.Title,
		Language:       lang.Tag(userText),
		Sent:           toChatMessageDTO(&userMessage),
		Reply:          toChatMessageDTO(&assistantMessage),
	}, nil
}

func (s *chatService) GetConversations(ctx context.Context) ([]*dto.GetConversationsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.GetConversationsResponse, len(conversations))
	for i, c := range conversations {
		res[i] = &dto.GetConversationsResponse{
			Id:        c.Id,
			Title:     c.Title,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	}
	return res, nil
}

func (s *chatService) GetChatHistory(ctx context.Context, conversationId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: conversationId})
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.GetChatHistoryResponse, len(messages))
	for i, m := range messages {
		res[i] = &dto.GetChatHistoryResponse{
			Id:        m.Id,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}
	return res, nil
}

// resolveConversation loads the target conversation or creates a new one
// titled from the first user message.
func (s *chatService) resolveConversation(ctx context.Context, uow unitofwork.UnitOfWork, id *uuid.UUID, userText string) (*entity.Conversation, error) {
	if id != nil {
		conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: *id})
		if err != nil {
			return nil, err
		}
		if conversation == nil {
			return nil, ErrConversationNotFound
		}
		return conversation, nil
	}

	conversation := entity.Conversation{
		Id:        uuid.New(),
		Title:     deriveTitle(userText),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

// complete calls the model and maps failures onto deterministic bilingual
// fallbacks. It never returns an empty string.
func (s *chatService) complete(ctx context.Context, systemPrompt string, history []*entity.Message) string {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{
		Role:    constant.MessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		messages = append(messages, llm.Message{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	opts := []llm.Option{}
	if s.maxOutputTokens > 0 {
		opts = append(opts, llm.WithMaxTokens(s.maxOutputTokens))
	}

	reply, err := s.llmProvider.Chat(ctx, messages, opts...)
	if err != nil {
		s.logger.Error("chat", "completion call failed", map[string]interface{}{
			"error": err.Error(),
		})
		switch {
		case errors.Is(err, llm.ErrRateLimited):
			return constant.FallbackRateLimited
		case errors.Is(err, llm.ErrUnavailable):
			return constant.FallbackUnavailable
		default:
			return constant.FallbackUnknown
		}
	}

	if strings.TrimSpace(reply) == "" {
		return constant.FallbackEmptyReply
	}
	return reply
}

// notifyMessageCreated is fire-and-forget: notification failure never
// fails the turn.
func (s *chatService) notifyMessageCreated(ctx context.Context, message *entity.Message) {
	if s.eventPublisher == nil {
		return
	}

	evt := events.BaseEvent{
		Type: "MESSAGE_CREATED",
		Data: map[string]interface{}{
			"conversation_id": message.ConversationId,
			"message_id":      message.Id,
			"role":            message.Role,
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("chat", "failed to publish MESSAGE_CREATED event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func deriveTitle(userText string) string {
	runes := []rune(userText)
	if len(runes) <= constant.ConversationTitleMaxLen {
		return userText
	}
	return string(runes[:constant.ConversationTitleMaxLen]) + "..."
}

func toChatMessageDTO(m *entity.Message) *dto.ChatMessageDTO {
	return &dto.ChatMessageDTO{
		Id:        m.Id,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
