// server/internal/centers/centers.go
package centers

import (
	"sort"

	"ecoconnect-api-server/internal/geo"
	"ecoconnect-api-server/internal/models"
)

// Filter returns the subsequence of centers accepting the given material,
// preserving input order. The "all" wildcard returns the input unchanged.
// Pure: the input slice is never mutated.
func Filter(material models.MaterialCategory, centers []models.RecyclingCenter) []models.RecyclingCenter {
	if material == models.MaterialAll {
		return centers
	}
	out := make([]models.RecyclingCenter, 0, len(centers))
	for _, c := range centers {
		if c.Accepts(material) {
			out = append(out, c)
		}
	}
	return out
}

// Location is an optional requester position.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Directory is the read-only recycling center collection. It is built
// once at startup and only ever read after that.
type Directory struct {
	centers []models.RecyclingCenter
}

func NewDirectory(centers []models.RecyclingCenter) *Directory {
	return &Directory{centers: append([]models.RecyclingCenter(nil), centers...)}
}

// List applies the material filter over active centers. With a location
// the results are annotated with distance and sorted nearest first;
// otherwise directory order is preserved.
func (d *Directory) List(material models.MaterialCategory, loc *Location) []models.RecyclingCenter {
	active := make([]models.RecyclingCenter, 0, len(d.centers))
	for _, c := range d.centers {
		if c.IsActive {
			active = append(active, c)
		}
	}

	out := append([]models.RecyclingCenter(nil), Filter(material, active)...)
	if loc != nil {
		for i := range out {
			out[i].Distance = geo.RoundKm(geo.HaversineKm(loc.Latitude, loc.Longitude, out[i].Latitude, out[i].Longitude))
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	}
	return out
}

// NearestAccepting returns the closest active center that accepts the
// material, with its distance filled in, or false when none does.
func (d *Directory) NearestAccepting(material models.MaterialCategory, loc Location) (models.RecyclingCenter, bool) {
	var best models.RecyclingCenter
	found := false
	for _, c := range d.centers {
		if !c.IsActive || !c.Accepts(material) {
			continue
		}
		c.Distance = geo.RoundKm(geo.HaversineKm(loc.Latitude, loc.Longitude, c.Latitude, c.Longitude))
		if !found || c.Distance < best.Distance {
			best = c
			found = true
		}
	}
	return best, found
}
