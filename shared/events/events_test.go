package events

import (
	"encoding/json"
	"testing"

	"github.com/stratuspay/charge-system/shared/models"
	"github.com/stretchr/testify/assert"
)

func TestNewEvent(t *testing.T) {
	aggregateID := models.GenerateUUID()

	event := NewEvent(aggregateID, ChargeSucceededEvent, map[string]string{"charge_id": aggregateID.String()})

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, aggregateID, event.AggregateID)
	assert.Equal(t, ChargeSucceededEvent, event.EventType)
	assert.Equal(t, Topic(ChargeSucceededEvent), event.Topic)
	assert.Equal(t, "1.0", event.Version)
	assert.NotZero(t, event.Timestamp)
}

func TestEvent_WithMetadataAndCorrelation(t *testing.T) {
	correlationID := models.GenerateUUID()

	event := NewEvent(models.GenerateUUID(), ChargePendingEvent, nil).
		WithCorrelationID(correlationID).
		WithMetadata("instrument_type", "card")

	assert.Equal(t, correlationID, event.CorrelationID)

	v, ok := event.Metadata.Get("instrument_type")
	assert.True(t, ok)
	assert.Equal(t, "card", v)
}

func TestEvent_MarshalPayload(t *testing.T) {
	event := NewEvent(models.GenerateUUID(), ChargeDeclinedEvent, map[string]string{"reason": "declined"})

	payload, err := event.MarshalPayload()
	assert.NoError(t, err)

	var data map[string]string
	assert.NoError(t, json.Unmarshal(payload, &data))
	assert.Equal(t, "declined", data["reason"])

	// Raw payloads pass through untouched.
	raw := NewEvent(models.GenerateUUID(), ChargeDeclinedEvent, json.RawMessage(`{"a":1}`))
	payload, err = raw.MarshalPayload()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(payload))
}

func TestNewTopic(t *testing.T) {
	topic, err := NewTopic("charge.succeeded")
	assert.NoError(t, err)
	assert.Equal(t, "charge.succeeded", topic.String())

	_, err = NewTopic("")
	assert.ErrorIs(t, err, ErrInvalidTopic)
}
