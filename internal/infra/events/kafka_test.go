//go:build unit

package events_test

import (
	"context"
	"testing"
	"time"

	"tourism-api/internal/infra/events"
	"tourism-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToKafkaMessage(t *testing.T) {
	msg := shared.OutboxMessage{
		ID:        uuid.New(),
		Kind:      shared.EventRestaurantReservationBooked,
		Key:       "slot:abc:2025-05-21:dinner",
		Payload:   []byte(`{"number_of_people":2}`),
		CreatedAt: time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
	}

	km := events.ToKafkaMessage(msg)
	assert.Equal(t, []byte(msg.Key), km.Key)
	assert.Equal(t, msg.Payload, km.Value)
	assert.Equal(t, msg.CreatedAt, km.Time)
	require.Len(t, km.Headers, 2)
	assert.Equal(t, "kind", km.Headers[0].Key)
	assert.Equal(t, []byte(msg.Kind), km.Headers[0].Value)
	assert.Equal(t, []byte(msg.ID.String()), km.Headers[1].Value)
}

func TestLogPublisher(t *testing.T) {
	p := events.NewLogPublisher(nil)
	require.NoError(t, p.Publish(context.Background(), shared.OutboxMessage{ID: uuid.New(), Kind: "k"}))
	require.NoError(t, p.Close())
}
