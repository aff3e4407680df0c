package service

import (
	"context"
	"encoding/json"

	"barberflow-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IPublisherService feeds the in-process automation worker. Heavier
// cross-service events go through NATS instead.
type IPublisherService interface {
	PublishAppointmentCompleted(ctx context.Context, appointmentId uuid.UUID) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) PublishAppointmentCompleted(ctx context.Context, appointmentId uuid.UUID) error {
	payload := dto.AppointmentCompletedMessage{AppointmentId: appointmentId}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	return s.pubSub.Publish(s.topicName, msg)
}
