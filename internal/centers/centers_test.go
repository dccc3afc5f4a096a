package centers

import (
	"testing"

	"ecoconnect-api-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func center(t *testing.T, id int, name string, lat, lng float64, materials ...models.MaterialCategory) models.RecyclingCenter {
	t.Helper()
	c, err := models.NewRecyclingCenter(id, name, "somewhere in Chicago", lat, lng, materials, 4.0, 10)
	require.NoError(t, err)
	return c
}

func names(cs []models.RecyclingCenter) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func TestFilterWildcardReturnsInputUnchanged(t *testing.T) {
	cs := []models.RecyclingCenter{
		center(t, 1, "A", 41.88, -87.63, models.MaterialPlastic),
		center(t, 2, "B", 41.87, -87.62, models.MaterialGlass),
	}

	got := Filter(models.MaterialAll, cs)
	assert.Equal(t, cs, got)
}

func TestFilterReturnsMatchingSubsequence(t *testing.T) {
	centerA := center(t, 1, "A", 41.88, -87.63, models.MaterialPlastic)
	centerB := center(t, 2, "B", 41.87, -87.62, models.MaterialElectronics)

	got := Filter(models.MaterialElectronics, []models.RecyclingCenter{centerA, centerB})
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Name)
}

func TestFilterPreservesInputOrder(t *testing.T) {
	cs := []models.RecyclingCenter{
		center(t, 1, "A", 41.88, -87.63, models.MaterialPlastic, models.MaterialPaper),
		center(t, 2, "B", 41.87, -87.62, models.MaterialGlass),
		center(t, 3, "C", 41.89, -87.61, models.MaterialPlastic),
	}

	got := Filter(models.MaterialPlastic, cs)
	assert.Equal(t, []string{"A", "C"}, names(got))

	// The input is untouched.
	assert.Equal(t, []string{"A", "B", "C"}, names(cs))
}

func TestFilterNoMatchesIsEmpty(t *testing.T) {
	cs := []models.RecyclingCenter{center(t, 1, "A", 41.88, -87.63, models.MaterialPlastic)}
	assert.Empty(t, Filter(models.MaterialTextile, cs))
}

func TestListSkipsInactiveCenters(t *testing.T) {
	active := center(t, 1, "A", 41.88, -87.63, models.MaterialPlastic)
	inactive := center(t, 2, "B", 41.87, -87.62, models.MaterialPlastic)
	inactive.IsActive = false

	d := NewDirectory([]models.RecyclingCenter{active, inactive})
	assert.Equal(t, []string{"A"}, names(d.List(models.MaterialAll, nil)))
}

func TestListWithLocationAnnotatesAndSorts(t *testing.T) {
	near := center(t, 1, "Near", 41.881, -87.631, models.MaterialPlastic)
	far := center(t, 2, "Far", 41.95, -87.70, models.MaterialPlastic)

	d := NewDirectory([]models.RecyclingCenter{far, near})
	got := d.List(models.MaterialPlastic, &Location{Latitude: 41.88, Longitude: -87.63})

	require.Equal(t, []string{"Near", "Far"}, names(got))
	assert.Greater(t, got[1].Distance, got[0].Distance)
	assert.Greater(t, got[0].Distance, 0.0)
}

func TestNearestAccepting(t *testing.T) {
	near := center(t, 1, "Near", 41.881, -87.631, models.MaterialGlass)
	far := center(t, 2, "Far", 41.95, -87.70, models.MaterialGlass, models.MaterialPlastic)

	d := NewDirectory([]models.RecyclingCenter{far, near})

	got, ok := d.NearestAccepting(models.MaterialGlass, Location{Latitude: 41.88, Longitude: -87.63})
	require.True(t, ok)
	assert.Equal(t, "Near", got.Name)
	assert.Greater(t, got.Distance, 0.0)

	got, ok = d.NearestAccepting(models.MaterialPlastic, Location{Latitude: 41.88, Longitude: -87.63})
	require.True(t, ok)
	assert.Equal(t, "Far", got.Name)

	_, ok = d.NearestAccepting(models.MaterialTextile, Location{Latitude: 41.88, Longitude: -87.63})
	assert.False(t, ok)
}
