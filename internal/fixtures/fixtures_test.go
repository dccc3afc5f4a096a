package fixtures

import (
	"testing"

	"ecoconnect-api-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	f, err := Load()
	require.NoError(t, err)

	assert.Len(t, f.Centers, 3)
	assert.Len(t, f.AvailablePickups, 2)
	assert.Len(t, f.ActivePickups, 3)
	assert.NotEmpty(t, f.ScanResults)

	// Job ids are unique across the union of both collections.
	seen := make(map[int]bool)
	for _, j := range append(f.AvailablePickups, f.ActivePickups...) {
		assert.False(t, seen[j.ID], "duplicate id %d", j.ID)
		seen[j.ID] = true
	}

	for _, j := range f.AvailablePickups {
		assert.Equal(t, models.StatusPending, j.Status)
	}
	for _, j := range f.ActivePickups {
		assert.NotEqual(t, models.StatusPending, j.Status)
	}

	for _, c := range f.Centers {
		assert.NotEmpty(t, c.AcceptedMaterials)
		assert.True(t, c.Rating >= 0 && c.Rating <= 5)
		assert.Len(t, c.OperatingHours, 7)
	}

	for _, r := range f.ScanResults {
		assert.True(t, r.ConfidenceScore >= 0 && r.ConfidenceScore <= 1)
		_, err := models.ParseMaterialCategory(string(r.MaterialCategory))
		assert.NoError(t, err)
	}
}
