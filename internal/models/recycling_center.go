// server/internal/models/recycling_center.go
package models

import "fmt"

// RecyclingCenter is a drop-off facility in the directory.
type RecyclingCenter struct {
	ID                  int                `json:"id"`
	Name                string             `json:"name"`
	Address             string             `json:"address"`
	Latitude            float64            `json:"latitude"`
	Longitude           float64            `json:"longitude"`
	Phone               string             `json:"phone,omitempty"`
	Email               string             `json:"email,omitempty"`
	Website             string             `json:"website,omitempty"`
	OperatingHours      map[string]string  `json:"operating_hours"` // weekday -> interval or "closed"
	AcceptedMaterials   []MaterialCategory `json:"accepted_materials"`
	SpecialInstructions string             `json:"special_instructions,omitempty"`
	Rating              float64            `json:"rating"`
	TotalReviews        int                `json:"total_reviews"`
	IsActive            bool               `json:"is_active"`
	Distance            float64            `json:"distance,omitempty"`
}

// NewRecyclingCenter enforces the directory invariants at construction:
// a non-empty accepted-materials set and a rating within [0,5].
func NewRecyclingCenter(id int, name, address string, lat, lng float64, materials []MaterialCategory, rating float64, totalReviews int) (RecyclingCenter, error) {
	if id <= 0 {
		return RecyclingCenter{}, fmt.Errorf("center id must be positive, got %d", id)
	}
	if name == "" || address == "" {
		return RecyclingCenter{}, fmt.Errorf("center name and address are required")
	}
	if len(materials) == 0 {
		return RecyclingCenter{}, fmt.Errorf("center %q must accept at least one material", name)
	}
	for _, m := range materials {
		if _, err := ParseMaterialCategory(string(m)); err != nil {
			return RecyclingCenter{}, err
		}
		if m == MaterialAll {
			return RecyclingCenter{}, fmt.Errorf("center %q: %q is a filter wildcard, not a material", name, m)
		}
	}
	if rating < 0 || rating > 5 {
		return RecyclingCenter{}, fmt.Errorf("center %q rating must be within [0,5], got %f", name, rating)
	}
	if totalReviews < 0 {
		return RecyclingCenter{}, fmt.Errorf("center %q review count must be non-negative, got %d", name, totalReviews)
	}

	return RecyclingCenter{
		ID:                id,
		Name:              name,
		Address:           address,
		Latitude:          lat,
		Longitude:         lng,
		AcceptedMaterials: materials,
		Rating:            rating,
		TotalReviews:      totalReviews,
		IsActive:          true,
	}, nil
}

// Accepts reports whether the center takes the given material.
func (c RecyclingCenter) Accepts(material MaterialCategory) bool {
	for _, m := range c.AcceptedMaterials {
		if m == material {
			return true
		}
	}
	return false
}
