package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"modern-assistant-be/internal/dto"
	"modern-assistant-be/internal/entity"
	"modern-assistant-be/internal/repository/specification"
	"modern-assistant-be/internal/repository/unitofwork"
	"modern-assistant-be/pkg/embedding"
	"modern-assistant-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedKnowledgeMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing embedding for knowledge entry: %s", payload.KnowledgeEntryId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.KnowledgeRepository().FindOne(ctx, specification.ByID{ID: payload.KnowledgeEntryId})
	if err != nil {
		log.Printf("[ERROR] Failed to get knowledge entry %s: %v", payload.KnowledgeEntryId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if entry == nil {
		log.Printf("[ERROR] Knowledge entry not found: %s", payload.KnowledgeEntryId)
		msg.Ack() // Entry deleted? Ack.
		return
	}

	content := fmt.Sprintf(`Title: %s
Category: %s

%s

Updated At: %s`,
		entry.Title,
		entry.Category,
		entry.Content,
		entry.UpdatedAt.Format(time.RFC3339),
	)

	// ChunkSize: 1500 chars (approx 375 tokens), Overlap: 200 chars
	chunks := utils.SplitText(content, 1500, 200)
	log.Printf("[INFO] Content split into %d chunks", len(chunks))

	var newEmbeddings []*entity.KnowledgeEmbedding

	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to generate embedding for chunk %d of entry %s: %v", i, payload.KnowledgeEntryId, err)
			msg.Nack()
			return
		}

		newEmbeddings = append(newEmbeddings, &entity.KnowledgeEmbedding{
			Id:               uuid.New(),
			KnowledgeEntryId: entry.Id,
			Document:         chunk,
			EmbeddingValue:   res.Embedding.Values,
			ChunkIndex:       i,
			CreatedAt:        time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.KnowledgeEmbeddingRepository().DeleteByEntryId(ctx, entry.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old embeddings: %v", err)
		msg.Nack()
		return
	}

	if len(newEmbeddings) > 0 {
		if err := uow.KnowledgeEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
			log.Printf("[ERROR] Failed to create bulk embeddings: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Knowledge entry processed: %d chunks for %s", len(newEmbeddings), payload.KnowledgeEntryId)
	msg.Ack()
}
