package registry

import (
	"testing"
	"time"

	"ecoconnect-api-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	events []Event
}

func (n *recordingNotifier) BroadcastJSON(v any) {
	if e, ok := v.(Event); ok {
		n.events = append(n.events, e)
	}
}

func job(t *testing.T, id int, status models.PickupStatus) models.PickupJob {
	t.Helper()
	j, err := models.NewPickupJob(id, "456 Oak Avenue, Chicago, IL", models.WasteRecyclable, 3.0, 18.0, models.Requester{FirstName: "Lisa", LastName: "K."})
	require.NoError(t, err)
	j.Status = status
	return j
}

func seeded(t *testing.T) (*Registry, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	r := New(n)
	err := r.Seed(
		[]models.PickupJob{job(t, 4, models.StatusPending), job(t, 5, models.StatusPending)},
		[]models.PickupJob{job(t, 1, models.StatusInProgress), job(t, 2, models.StatusAccepted)},
	)
	require.NoError(t, err)
	n.events = nil
	return r, n
}

func ids(jobs []models.PickupJob) []int {
	out := make([]int, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestSeedRejectsDuplicateIDs(t *testing.T) {
	r := New(nil)
	err := r.Seed(
		[]models.PickupJob{job(t, 4, models.StatusPending)},
		[]models.PickupJob{job(t, 4, models.StatusAccepted)},
	)
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestAcceptMovesJobBetweenCollections(t *testing.T) {
	r, n := seeded(t)

	accepted, ok := r.Accept(4)
	require.True(t, ok)
	assert.Equal(t, models.StatusAccepted, accepted.Status)

	assert.Equal(t, []int{5}, ids(r.Available(nil, 0)))
	assert.Equal(t, []int{1, 2, 4}, ids(r.Active()))

	// The id appears exactly once across the union.
	count := 0
	for _, j := range append(r.Available(nil, 0), r.Active()...) {
		if j.ID == 4 {
			count++
		}
	}
	assert.Equal(t, 1, count)

	require.Len(t, n.events, 1)
	assert.Equal(t, EventPickupAccepted, n.events[0].Type)
}

func TestAcceptUnknownIDIsNoOp(t *testing.T) {
	r, n := seeded(t)

	_, ok := r.Accept(99)
	assert.False(t, ok)

	assert.Equal(t, []int{4, 5}, ids(r.Available(nil, 0)))
	assert.Equal(t, []int{1, 2}, ids(r.Active()))
	assert.Empty(t, n.events)
}

func TestAcceptTwiceIsNoOpSecondTime(t *testing.T) {
	r, _ := seeded(t)

	_, ok := r.Accept(4)
	require.True(t, ok)

	_, ok = r.Accept(4)
	assert.False(t, ok, "second accept of the same id must change nothing")
	assert.Equal(t, []int{1, 2, 4}, ids(r.Active()))
}

func TestAdvanceStatusStrictSequence(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		target  models.PickupStatus
		wantErr error
	}{
		{"accepted to in_progress", 2, models.StatusInProgress, nil},
		{"in_progress to completed", 1, models.StatusCompleted, nil},
		{"accepted straight to completed", 2, models.StatusCompleted, ErrInvalidTransition},
		{"in_progress back to accepted", 1, models.StatusAccepted, ErrInvalidTransition},
		{"unknown id", 99, models.StatusInProgress, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := seeded(t)
			updated, err := r.AdvanceStatus(tt.id, tt.target)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, updated.Status)
		})
	}
}

func TestAdvanceCompletedJobRejected(t *testing.T) {
	r, _ := seeded(t)

	_, err := r.AdvanceStatus(1, models.StatusCompleted)
	require.NoError(t, err)

	for _, target := range []models.PickupStatus{models.StatusAccepted, models.StatusInProgress, models.StatusCompleted} {
		_, err := r.AdvanceStatus(1, target)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}

	// A completed job stays visible in the active collection.
	assert.Contains(t, ids(r.Active()), 1)
}

func TestAdvanceStatusOnlyProducesEnumeratedStates(t *testing.T) {
	r, _ := seeded(t)

	r.AdvanceStatus(2, models.StatusInProgress)
	r.AdvanceStatus(2, models.StatusCompleted)

	for _, j := range r.Active() {
		_, err := models.ParsePickupStatus(string(j.Status))
		assert.NoError(t, err)
	}
}

func TestCreateAssignsNextIDAndBroadcasts(t *testing.T) {
	r, n := seeded(t)

	created, err := r.Create(models.PickupJob{
		PickupAddress: "789 Pine Street, Chicago, IL",
		WasteCategory: models.WasteMixed,
		Requester:     models.Requester{FirstName: "David"},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Contains(t, ids(r.Available(nil, 0)), 6)

	require.Len(t, n.events, 1)
	assert.Equal(t, EventPickupPosted, n.events[0].Type)
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	r, _ := seeded(t)

	_, err := r.Create(models.PickupJob{ID: 4, PickupAddress: "somewhere", WasteCategory: models.WasteMixed})
	require.ErrorIs(t, err, ErrDuplicateID)

	_, err = r.Create(models.PickupJob{ID: 1, PickupAddress: "somewhere", WasteCategory: models.WasteMixed})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestCancelRules(t *testing.T) {
	r, _ := seeded(t)

	// Pending job cancels and leaves the available collection.
	cancelled, err := r.Cancel(4)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.Equal(t, []int{5}, ids(r.Available(nil, 0)))

	// Completed jobs cannot be cancelled.
	_, err = r.AdvanceStatus(1, models.StatusCompleted)
	require.NoError(t, err)
	_, err = r.Cancel(1)
	assert.ErrorIs(t, err, ErrNotCancellable)

	_, err = r.Cancel(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAvailableWithLocationSortsAndFilters(t *testing.T) {
	r := New(nil)

	near := job(t, 10, models.StatusPending)
	near.PickupLatitude, near.PickupLongitude = 41.881, -87.63
	far := job(t, 11, models.StatusPending)
	far.PickupLatitude, far.PickupLongitude = 42.5, -88.5
	require.NoError(t, r.Seed([]models.PickupJob{far, near}, nil))

	loc := &Location{Latitude: 41.88, Longitude: -87.63}

	sorted := r.Available(loc, 0)
	require.Equal(t, []int{10, 11}, ids(sorted))
	assert.Greater(t, sorted[1].Distance, sorted[0].Distance)

	within := r.Available(loc, 25)
	assert.Equal(t, []int{10}, ids(within))

	// Without a location the input order is preserved and no distance is set.
	plain := r.Available(nil, 0)
	require.Equal(t, []int{11, 10}, ids(plain))
	assert.Zero(t, plain[0].Distance)
}

func TestStats(t *testing.T) {
	r := New(nil)

	completed := job(t, 1, models.StatusInProgress)
	completed.PaymentAmount = 15.0
	completed.EstimatedWeight = 2.5
	inProgress := job(t, 2, models.StatusAccepted)
	old := job(t, 3, models.StatusAccepted)
	old.CreatedAt = time.Now().AddDate(0, 0, -45)

	require.NoError(t, r.Seed(nil, []models.PickupJob{completed, inProgress, old}))

	_, err := r.AdvanceStatus(1, models.StatusCompleted)
	require.NoError(t, err)
	_, err = r.AdvanceStatus(2, models.StatusInProgress)
	require.NoError(t, err)

	s := r.Stats()
	assert.Equal(t, 3, s.TotalPickups)
	assert.Equal(t, 1, s.CompletedPickups)
	assert.Equal(t, 1, s.ActivePickups)
	assert.InDelta(t, 15.0, s.TotalEarnings, 0.001)
	assert.InDelta(t, 2.5, s.TotalWeightCollected, 0.001)
	assert.Equal(t, 2, s.RecentActivity30Days)
	assert.InDelta(t, 33.33, s.CompletionRate, 0.01)
}
