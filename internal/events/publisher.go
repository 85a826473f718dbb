package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	TypeRentalCreated         = "rental.created"
	TypeRentalStatusChanged   = "rental.status_changed"
	TypeProviderStatusChanged = "provider.status_changed"

	source = "rentwheels-backend"
)

// Event is the envelope written to the topic. Data holds one of the payload
// structs below.
type Event struct {
	ID     string          `json:"id"`
	Type   string          `json:"type"`
	Source string          `json:"source"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

type RentalCreated struct {
	RentalID  int32     `json:"rental_id"`
	VehicleID int32     `json:"vehicle_id"`
	RenterID  int32     `json:"renter_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	TotalCost int64     `json:"total_cost"`
}

type RentalStatusChanged struct {
	RentalID  int32               `json:"rental_id"`
	VehicleID int32               `json:"vehicle_id"`
	From      domain.RentalStatus `json:"from"`
	To        domain.RentalStatus `json:"to"`
	ActorID   int32               `json:"actor_id"`
}

type ProviderStatusChanged struct {
	ProviderID int32                 `json:"provider_id"`
	From       domain.ProviderStatus `json:"from"`
	To         domain.ProviderStatus `json:"to"`
}

// Publisher emits lifecycle events. Callers treat failures as best effort.
type Publisher interface {
	RentalCreated(ctx context.Context, r *domain.Rental) error
	RentalStatusChanged(ctx context.Context, r *domain.Rental, from domain.RentalStatus, actorID int32) error
	ProviderStatusChanged(ctx context.Context, providerID int32, from, to domain.ProviderStatus) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	now    func() time.Time
}

// NewKafkaPublisher writes to topic, keyed by aggregate id so events for one
// rental stay ordered within a partition.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
		now: time.Now,
	}
}

func (p *KafkaPublisher) RentalCreated(ctx context.Context, r *domain.Rental) error {
	return p.publish(ctx, TypeRentalCreated, "rental-"+strconv.Itoa(int(r.ID)), RentalCreated{
		RentalID:  r.ID,
		VehicleID: r.VehicleID,
		RenterID:  r.RenterID,
		StartDate: r.Period.Start,
		EndDate:   r.Period.End,
		TotalCost: r.TotalCost,
	})
}

func (p *KafkaPublisher) RentalStatusChanged(ctx context.Context, r *domain.Rental, from domain.RentalStatus, actorID int32) error {
	return p.publish(ctx, TypeRentalStatusChanged, "rental-"+strconv.Itoa(int(r.ID)), RentalStatusChanged{
		RentalID:  r.ID,
		VehicleID: r.VehicleID,
		From:      from,
		To:        r.Status,
		ActorID:   actorID,
	})
}

func (p *KafkaPublisher) ProviderStatusChanged(ctx context.Context, providerID int32, from, to domain.ProviderStatus) error {
	return p.publish(ctx, TypeProviderStatusChanged, "provider-"+strconv.Itoa(int(providerID)), ProviderStatusChanged{
		ProviderID: providerID,
		From:       from,
		To:         to,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType, key string, payload any) error {
	msg, err := newMessage(eventType, key, payload, p.now())
	if err != nil {
		return err
	}

	logger.ExternalServiceCall("kafka", eventType, "key", key)
	err = p.writer.WriteMessages(ctx, msg)
	logger.ExternalServiceResult("kafka", eventType, err, "key", key)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	return nil
}

func newMessage(eventType, key string, payload any, at time.Time) (kafka.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	value, err := json.Marshal(Event{
		ID:     uuid.NewString(),
		Type:   eventType,
		Source: source,
		Time:   at.UTC(),
		Data:   data,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	return kafka.Message{
		Key:     []byte(key),
		Value:   value,
		Headers: []kafka.Header{{Key: "event-type", Value: []byte(eventType)}},
		Time:    at,
	}, nil
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) RentalCreated(context.Context, *domain.Rental) error { return nil }

func (NoopPublisher) RentalStatusChanged(context.Context, *domain.Rental, domain.RentalStatus, int32) error {
	return nil
}

func (NoopPublisher) ProviderStatusChanged(context.Context, int32, domain.ProviderStatus, domain.ProviderStatus) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
