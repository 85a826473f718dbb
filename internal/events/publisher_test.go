package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rentwheels-backend/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestKafkaPublisher_RentalStatusChanged(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w, now: fixedNow}

	rental := &domain.Rental{ID: 42, VehicleID: 7, Status: domain.RentalStatusActive}
	err := p.RentalStatusChanged(context.Background(), rental, domain.RentalStatusPending, 10)
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "rental-42", string(msg.Key))
	assert.Equal(t, "event-type", msg.Headers[0].Key)
	assert.Equal(t, TypeRentalStatusChanged, string(msg.Headers[0].Value))

	var evt Event
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, TypeRentalStatusChanged, evt.Type)
	assert.Equal(t, source, evt.Source)
	assert.NotEmpty(t, evt.ID)
	assert.True(t, evt.Time.Equal(fixedNow()))

	var payload RentalStatusChanged
	require.NoError(t, json.Unmarshal(evt.Data, &payload))
	assert.Equal(t, RentalStatusChanged{
		RentalID: 42, VehicleID: 7, From: domain.RentalStatusPending, To: domain.RentalStatusActive, ActorID: 10,
	}, payload)
}

func TestKafkaPublisher_RentalCreated(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w, now: fixedNow}

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rental := &domain.Rental{
		ID: 5, VehicleID: 7, RenterID: 20, TotalCost: 184,
		Period: domain.DateRange{Start: start, End: start.AddDate(0, 0, 7)},
	}
	require.NoError(t, p.RentalCreated(context.Background(), rental))

	var evt Event
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &evt))
	var payload RentalCreated
	require.NoError(t, json.Unmarshal(evt.Data, &payload))
	assert.Equal(t, int64(184), payload.TotalCost)
	assert.True(t, payload.EndDate.Equal(start.AddDate(0, 0, 7)))
}

func TestKafkaPublisher_WriteFailure(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unreachable")}
	p := &KafkaPublisher{writer: w, now: fixedNow}

	err := p.ProviderStatusChanged(context.Background(), 10, domain.ProviderStatusPending, domain.ProviderStatusApproved)
	assert.ErrorContains(t, err, "failed to publish provider.status_changed")

	assert.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.RentalCreated(context.Background(), &domain.Rental{}))
	assert.NoError(t, p.Close())
}
