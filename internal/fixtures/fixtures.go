// server/internal/fixtures/fixtures.go
package fixtures

import (
	"fmt"
	"time"

	"ecoconnect-api-server/internal/models"
)

// Fixtures is the seed data every registry starts from. There is no
// persistence layer behind any of it; the collections live and die with
// the process.
type Fixtures struct {
	Centers          []models.RecyclingCenter
	AvailablePickups []models.PickupJob
	ActivePickups    []models.PickupJob
	ScanResults      []models.ScanResult
}

// Load builds the seed data through the model constructors so the field
// constraints hold from the start.
func Load() (Fixtures, error) {
	centers, err := seedCenters()
	if err != nil {
		return Fixtures{}, fmt.Errorf("seeding centers: %w", err)
	}
	available, active, err := seedPickups()
	if err != nil {
		return Fixtures{}, fmt.Errorf("seeding pickups: %w", err)
	}
	return Fixtures{
		Centers:          centers,
		AvailablePickups: available,
		ActivePickups:    active,
		ScanResults:      seedScanResults(),
	}, nil
}

func seedCenters() ([]models.RecyclingCenter, error) {
	weekdays := func(week, sat, sun string) map[string]string {
		return map[string]string{
			"monday": week, "tuesday": week, "wednesday": week,
			"thursday": week, "friday": week,
			"saturday": sat, "sunday": sun,
		}
	}

	type seed struct {
		id        int
		name      string
		address   string
		lat, lng  float64
		materials []models.MaterialCategory
		rating    float64
		reviews   int
		phone     string
		email     string
		website   string
		hours     map[string]string
		notes     string
	}
	seeds := []seed{
		{
			id: 1, name: "GreenCycle Recycling",
			address: "789 Green St, Chicago, IL 60601",
			lat:     41.8819, lng: -87.6278,
			materials: []models.MaterialCategory{models.MaterialPlastic, models.MaterialPaper, models.MaterialGlass, models.MaterialMetal},
			rating:    4.5, reviews: 128,
			phone: "+1234567892", email: "info@greencycle.com", website: "https://greencycle.com",
			hours: weekdays("8:00-17:00", "9:00-15:00", "closed"),
			notes: "Please clean all containers before drop-off",
		},
		{
			id: 2, name: "Central Waste Solutions",
			address: "321 Recycle Blvd, Chicago, IL 60602",
			lat:     41.8756, lng: -87.6244,
			materials: []models.MaterialCategory{models.MaterialPlastic, models.MaterialPaper, models.MaterialGlass, models.MaterialMetal, models.MaterialElectronics},
			rating:    4.2, reviews: 89,
			phone: "+1234567893", email: "contact@centralwaste.com", website: "https://centralwaste.com",
			hours: weekdays("7:00-18:00", "8:00-16:00", "10:00-14:00"),
			notes: "Electronics accepted on weekends only",
		},
		{
			id: 3, name: "EcoHub Recycling Center",
			address: "555 Earth Way, Chicago, IL 60603",
			lat:     41.8892, lng: -87.6189,
			materials: []models.MaterialCategory{models.MaterialPlastic, models.MaterialPaper, models.MaterialOrganic, models.MaterialHazardous},
			rating:    4.8, reviews: 203,
			phone: "+1234567894", email: "hello@ecohub.com", website: "https://ecohub.com",
			hours: weekdays("9:00-16:00", "10:00-15:00", "closed"),
			notes: "Hazardous waste by appointment only",
		},
	}

	out := make([]models.RecyclingCenter, 0, len(seeds))
	for _, s := range seeds {
		c, err := models.NewRecyclingCenter(s.id, s.name, s.address, s.lat, s.lng, s.materials, s.rating, s.reviews)
		if err != nil {
			return nil, err
		}
		c.Phone = s.phone
		c.Email = s.email
		c.Website = s.website
		c.OperatingHours = s.hours
		c.SpecialInstructions = s.notes
		out = append(out, c)
	}
	return out, nil
}

func seedPickups() (available, active []models.PickupJob, err error) {
	type seed struct {
		id       int
		address  string
		lat, lng float64
		category models.WasteCategory
		weight   float64
		payment  float64
		status   models.PickupStatus
		first    string
		last     string
		age      time.Duration
	}

	activeSeeds := []seed{
		{1, "1234 W Elm St, Chicago, IL", 41.8902, -87.6518, models.WasteRecyclable, 2.5, 15.0, models.StatusInProgress, "John", "D.", 26 * time.Hour},
		{2, "7566 E Main St, Chicago, IL", 41.8852, -87.6210, models.WasteMixed, 4.2, 25.0, models.StatusAccepted, "Sarah", "M.", 20 * time.Hour},
		{3, "B520 N 30th Ave, Chicago, IL", 41.9031, -87.6677, models.WasteOrganic, 3.8, 20.0, models.StatusAccepted, "Mike", "R.", 8 * time.Hour},
	}
	availableSeeds := []seed{
		{4, "456 Oak Avenue, Chicago, IL", 41.8741, -87.6298, models.WasteRecyclable, 3.0, 18.0, models.StatusPending, "Lisa", "K.", 5 * time.Hour},
		{5, "789 Pine Street, Chicago, IL", 41.8815, -87.6405, models.WasteMixed, 5.5, 30.0, models.StatusPending, "David", "W.", 6 * time.Hour},
	}

	build := func(s seed) (models.PickupJob, error) {
		job, err := models.NewPickupJob(s.id, s.address, s.category, s.weight, s.payment, models.Requester{FirstName: s.first, LastName: s.last})
		if err != nil {
			return models.PickupJob{}, err
		}
		job.PickupLatitude = s.lat
		job.PickupLongitude = s.lng
		job.Status = s.status
		job.CreatedAt = time.Now().Add(-s.age)
		job.UpdatedAt = job.CreatedAt
		return job, nil
	}

	for _, s := range availableSeeds {
		job, err := build(s)
		if err != nil {
			return nil, nil, err
		}
		available = append(available, job)
	}
	for _, s := range activeSeeds {
		job, err := build(s)
		if err != nil {
			return nil, nil, err
		}
		active = append(active, job)
	}
	return available, active, nil
}

func seedScanResults() []models.ScanResult {
	return []models.ScanResult{
		{
			IdentifiedType:   "Plastic Water Bottle",
			ConfidenceScore:  0.95,
			MaterialCategory: models.MaterialPlastic,
			Recyclable:       true,
			DisposalMethod:   "Take to recycling center",
			PreparationTips:  "Clean containers, remove labels if possible",
		},
		{
			IdentifiedType:   "Aluminum Can",
			ConfidenceScore:  0.92,
			MaterialCategory: models.MaterialMetal,
			Recyclable:       true,
			DisposalMethod:   "Take to recycling center",
			PreparationTips:  "Rinse clean, crushing is optional",
		},
		{
			IdentifiedType:   "Paper Cup",
			ConfidenceScore:  0.88,
			MaterialCategory: models.MaterialPaper,
			Recyclable:       true,
			DisposalMethod:   "Take to recycling center",
			PreparationTips:  "Keep dry, remove any plastic components",
		},
		{
			IdentifiedType:   "Glass Jar",
			ConfidenceScore:  0.94,
			MaterialCategory: models.MaterialGlass,
			Recyclable:       true,
			DisposalMethod:   "Take to recycling center",
			PreparationTips:  "Rinse clean, remove caps and lids",
		},
		{
			IdentifiedType:   "Food Waste",
			ConfidenceScore:  0.85,
			MaterialCategory: models.MaterialOrganic,
			Recyclable:       true,
			DisposalMethod:   "Compost or organic waste bin",
			PreparationTips:  "Remove any non-organic materials",
		},
		{
			IdentifiedType:   "Old Smartphone",
			ConfidenceScore:  0.91,
			MaterialCategory: models.MaterialElectronics,
			Recyclable:       true,
			DisposalMethod:   "Take to electronics recycling center",
			PreparationTips:  "Remove batteries, wipe personal data",
		},
		{
			IdentifiedType:   "Styrofoam Container",
			ConfidenceScore:  0.87,
			MaterialCategory: models.MaterialNonRecyclable,
			Recyclable:       false,
			DisposalMethod:   "Regular trash bin",
			PreparationTips:  "Minimize waste by choosing reusable alternatives",
		},
	}
}
