// server/internal/models/pickup_job.go
package models

import (
	"fmt"
	"time"
)

// PickupStatus is the lifecycle state of a pickup job.
type PickupStatus string

const (
	StatusPending    PickupStatus = "pending"
	StatusAccepted   PickupStatus = "accepted"
	StatusInProgress PickupStatus = "in_progress"
	StatusCompleted  PickupStatus = "completed"
	StatusCancelled  PickupStatus = "cancelled"
)

func ParsePickupStatus(s string) (PickupStatus, error) {
	switch PickupStatus(s) {
	case StatusPending, StatusAccepted, StatusInProgress, StatusCompleted, StatusCancelled:
		return PickupStatus(s), nil
	}
	return "", fmt.Errorf("invalid pickup status: %q", s)
}

// Next returns the immediate successor in the lifecycle, or false for
// terminal and unclaimed states.
func (s PickupStatus) Next() (PickupStatus, bool) {
	switch s {
	case StatusAccepted:
		return StatusInProgress, true
	case StatusInProgress:
		return StatusCompleted, true
	}
	return "", false
}

// Requester identifies who posted a pickup job.
type Requester struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PickupJob is a unit of waste-collection work, postable by a requester
// and claimable by exactly one wastepicker.
type PickupJob struct {
	ID                  int           `json:"id"`
	PickupAddress       string        `json:"pickup_address"`
	PickupLatitude      float64       `json:"pickup_latitude"`
	PickupLongitude     float64       `json:"pickup_longitude"`
	WasteDescription    string        `json:"waste_description,omitempty"`
	WasteCategory       WasteCategory `json:"waste_category"`
	EstimatedWeight     float64       `json:"estimated_weight"`
	PaymentAmount       float64       `json:"payment_amount"`
	Status              PickupStatus  `json:"status"`
	SpecialInstructions string        `json:"special_instructions,omitempty"`
	Distance            float64       `json:"distance,omitempty"`
	Requester           Requester     `json:"requester"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// NewPickupJob builds a pending job, enforcing the field constraints at
// construction.
func NewPickupJob(id int, address string, category WasteCategory, weight, payment float64, requester Requester) (PickupJob, error) {
	if id <= 0 {
		return PickupJob{}, fmt.Errorf("pickup job id must be positive, got %d", id)
	}
	if address == "" {
		return PickupJob{}, fmt.Errorf("pickup address is required")
	}
	if _, err := ParseWasteCategory(string(category)); err != nil {
		return PickupJob{}, err
	}
	if weight < 0 {
		return PickupJob{}, fmt.Errorf("estimated weight must be non-negative, got %f", weight)
	}
	if payment < 0 {
		return PickupJob{}, fmt.Errorf("payment amount must be non-negative, got %f", payment)
	}

	now := time.Now()
	return PickupJob{
		ID:              id,
		PickupAddress:   address,
		WasteCategory:   category,
		EstimatedWeight: weight,
		PaymentAmount:   payment,
		Status:          StatusPending,
		Requester:       requester,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
