package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPickupJobValidation(t *testing.T) {
	requester := Requester{FirstName: "Lisa", LastName: "K."}

	job, err := NewPickupJob(4, "456 Oak Avenue, Chicago, IL", WasteRecyclable, 3.0, 18.0, requester)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, job.Status)
	assert.False(t, job.CreatedAt.IsZero())

	tests := []struct {
		name     string
		id       int
		address  string
		category WasteCategory
		weight   float64
		payment  float64
	}{
		{"non-positive id", 0, "addr", WasteRecyclable, 1, 1},
		{"empty address", 1, "", WasteRecyclable, 1, 1},
		{"bad category", 1, "addr", "nuclear", 1, 1},
		{"negative weight", 1, "addr", WasteRecyclable, -1, 1},
		{"negative payment", 1, "addr", WasteRecyclable, 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPickupJob(tt.id, tt.address, tt.category, tt.weight, tt.payment, requester)
			assert.Error(t, err)
		})
	}
}

func TestNewRecyclingCenterValidation(t *testing.T) {
	materials := []MaterialCategory{MaterialPlastic}

	c, err := NewRecyclingCenter(1, "GreenCycle", "789 Green St", 41.88, -87.63, materials, 4.5, 128)
	require.NoError(t, err)
	assert.True(t, c.IsActive)

	_, err = NewRecyclingCenter(1, "GreenCycle", "789 Green St", 41.88, -87.63, nil, 4.5, 128)
	assert.Error(t, err, "accepted materials must not be empty")

	_, err = NewRecyclingCenter(1, "GreenCycle", "789 Green St", 41.88, -87.63, materials, 5.5, 128)
	assert.Error(t, err, "rating above 5")

	_, err = NewRecyclingCenter(1, "GreenCycle", "789 Green St", 41.88, -87.63, materials, -0.1, 128)
	assert.Error(t, err, "rating below 0")

	_, err = NewRecyclingCenter(1, "GreenCycle", "789 Green St", 41.88, -87.63, materials, 4.5, -1)
	assert.Error(t, err, "negative review count")

	_, err = NewRecyclingCenter(1, "GreenCycle", "789 Green St", 41.88, -87.63, []MaterialCategory{MaterialAll}, 4.5, 128)
	assert.Error(t, err, "wildcard is not a material")
}

func TestPickupStatusNext(t *testing.T) {
	next, ok := StatusAccepted.Next()
	require.True(t, ok)
	assert.Equal(t, StatusInProgress, next)

	next, ok = StatusInProgress.Next()
	require.True(t, ok)
	assert.Equal(t, StatusCompleted, next)

	for _, s := range []PickupStatus{StatusPending, StatusCompleted, StatusCancelled} {
		_, ok := s.Next()
		assert.False(t, ok, string(s))
	}
}

func TestParseMaterialCategory(t *testing.T) {
	for _, valid := range []string{"plastic", "paper", "glass", "metal", "electronics", "organic", "hazardous", "textile", "non_recyclable", "all"} {
		_, err := ParseMaterialCategory(valid)
		assert.NoError(t, err, valid)
	}
	_, err := ParseMaterialCategory("cardboardish")
	assert.Error(t, err)
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Alice", User{Username: "a", FirstName: "Alice"}.DisplayName())
	assert.Equal(t, "a", User{Username: "a"}.DisplayName())
}
