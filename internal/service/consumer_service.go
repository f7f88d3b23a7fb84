package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-chatapp-be/internal/dto"
	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// ExchangeCompletedTopic carries exchange-completed messages from the
// chat service to the usage consumer.
const ExchangeCompletedTopic = "chat.exchange.completed"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(pubSub *gochannel.GoChannel, uowFactory unitofwork.RepositoryFactory) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, ExchangeCompletedTopic)
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
	var payload dto.ExchangeCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal exchange message: %v", err)
		msg.Ack() // malformed, retrying won't help
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	usageLog := &entity.UsageLog{
		Id:            uuid.New(),
		UserId:        payload.UserId,
		ChatSessionId: payload.ChatSessionId,
		ModelId:       payload.ModelId,
		Provider:      payload.Provider,
		TokensUsed:    payload.TokensUsed,
		CreatedAt:     time.Now(),
	}

	if err := uow.UsageLogRepository().Create(ctx, usageLog); err != nil {
		log.Printf("[ERROR] Failed to write usage log for session %s: %v", payload.ChatSessionId, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
