package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourname/axis/internal"
)

func TestIncreasePillar_ClampsHigh(t *testing.T) {
	store := &memStore{pillars: &internal.Pillars{Mind: 98, Body: 50, Money: 50, Career: 50, Relationships: 50, Environment: 50}}

	pillars, err := IncreasePillar(context.Background(), store, "mind", 5)
	assert.NoError(t, err)
	assert.Equal(t, 100, pillars.Mind)
}

func TestIncreasePillar_ClampsLow(t *testing.T) {
	store := &memStore{pillars: &internal.Pillars{Body: 3}}

	pillars, err := IncreasePillar(context.Background(), store, "body", -10)
	assert.NoError(t, err)
	assert.Equal(t, 0, pillars.Body)
}

func TestIncreasePillar_DefaultsAndPersists(t *testing.T) {
	store := &memStore{}

	pillars, err := IncreasePillar(context.Background(), store, "career", 5)
	assert.NoError(t, err)
	assert.Equal(t, 55, pillars.Career)
	assert.Equal(t, 55, store.pillars.Career)
	// Untouched scores stay at their default.
	assert.Equal(t, 50, pillars.Mind)
}

func TestIncreasePillar_UnknownKeyIsNoOp(t *testing.T) {
	store := &memStore{}

	pillars, err := IncreasePillar(context.Background(), store, "luck", 5)
	assert.NoError(t, err)
	assert.Equal(t, internal.DefaultPillars(), pillars)
	assert.Nil(t, store.pillars)
}

func TestIncreasePillar_SequenceStaysInRange(t *testing.T) {
	store := &memStore{}
	for i := 0; i < 30; i++ {
		pillars, err := IncreasePillar(context.Background(), store, "environment", 5)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, pillars.Environment, 0)
		assert.LessOrEqual(t, pillars.Environment, 100)
	}
	assert.Equal(t, 100, store.pillars.Environment)
}
