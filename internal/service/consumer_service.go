package service

import (
	"context"
	"encoding/json"
	"log"

	"barberflow-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process appointment-completed topic and hands
// each visit to the automation service for immediate follow-ups.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	automationService IAutomationService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	automationService IAutomationService,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		automationService: automationService,
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
	var payload dto.AppointmentCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing completed appointment %s", payload.AppointmentId)

	if err := cs.automationService.HandleAppointmentCompleted(ctx, payload.AppointmentId); err != nil {
		// Dispatch failures are already recorded per execution row; a retry
		// here would double-message clients, so ack either way.
		log.Printf("[ERROR] Follow-up handling failed for appointment %s: %v", payload.AppointmentId, err)
	}
	msg.Ack()
}
