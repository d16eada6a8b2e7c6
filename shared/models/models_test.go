package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	id, err := NewID("550e8400-e29b-41d4-a716-446655440000")
	assert.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())

	_, err = NewID("not-a-uuid")
	assert.Error(t, err)
}

func TestMoney(t *testing.T) {
	assert.True(t, NewMoney(1000, "USD").IsPositive())
	assert.False(t, NewMoney(0, "USD").IsPositive())
	assert.False(t, NewMoney(-500, "USD").IsPositive())

	assert.True(t, NewMoney(0, "USD").IsZero())
	assert.False(t, NewMoney(1, "USD").IsZero())
}

func TestMoney_Add(t *testing.T) {
	sum, err := NewMoney(1000, "USD").Add(NewMoney(500, "USD"))
	assert.NoError(t, err)
	assert.Equal(t, NewMoney(1500, "USD"), sum)

	_, err = NewMoney(1000, "USD").Add(NewMoney(500, "EUR"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "currency mismatch")
}
