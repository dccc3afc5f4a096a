// server/internal/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"ecoconnect-api-server/internal/geo"
	"ecoconnect-api-server/internal/models"
)

var (
	// ErrNotFound means the id is not in the collection the operation
	// targets. Callers treating the operation as idempotent can ignore it.
	ErrNotFound = errors.New("pickup job not found")

	// ErrInvalidTransition means the target status is not the immediate
	// successor of the job's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrDuplicateID = errors.New("pickup job id already exists")

	// ErrNotCancellable means the job already reached a terminal state.
	ErrNotCancellable = errors.New("pickup job is completed or already cancelled")
)

// EventType tags the registry changes broadcast to dashboard clients.
type EventType string

const (
	EventPickupPosted    EventType = "pickup_posted"
	EventPickupAccepted  EventType = "pickup_accepted"
	EventStatusChanged   EventType = "pickup_status_changed"
	EventPickupCancelled EventType = "pickup_cancelled"
)

// Event is the payload sent over the websocket hub on every mutation.
type Event struct {
	Type EventType        `json:"type"`
	Job  models.PickupJob `json:"job"`
}

// Notifier receives registry events. The websocket hub implements it.
type Notifier interface {
	BroadcastJSON(v any)
}

// Location is an optional viewer position used to annotate distances.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Registry keeps the two disjoint pickup collections: available jobs
// (pending, unclaimed) and active jobs (claimed by the worker). A job id
// is unique across the union and a job is never in both collections.
type Registry struct {
	mu        sync.RWMutex
	available []models.PickupJob
	active    []models.PickupJob
	lastID    int
	notifier  Notifier
}

func New(notifier Notifier) *Registry {
	return &Registry{notifier: notifier}
}

// Seed loads the initial collections, enforcing id uniqueness across the
// union and that each job sits in the collection its status belongs to.
func (r *Registry) Seed(available, active []models.PickupJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int]bool)
	for _, job := range available {
		if job.Status != models.StatusPending {
			return fmt.Errorf("available job %d has status %q, want %q", job.ID, job.Status, models.StatusPending)
		}
		if seen[job.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, job.ID)
		}
		seen[job.ID] = true
	}
	for _, job := range active {
		if job.Status == models.StatusPending {
			return fmt.Errorf("active job %d is still pending", job.ID)
		}
		if seen[job.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, job.ID)
		}
		seen[job.ID] = true
	}

	r.available = append([]models.PickupJob(nil), available...)
	r.active = append([]models.PickupJob(nil), active...)
	for id := range seen {
		if id > r.lastID {
			r.lastID = id
		}
	}
	return nil
}

// Create posts a new pending job into the available collection. A zero id
// gets the next free one; an explicit id must be unused.
func (r *Registry) Create(job models.PickupJob) (models.PickupJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.ID == 0 {
		job.ID = r.lastID + 1
	} else if r.findLocked(job.ID) != nil {
		return models.PickupJob{}, fmt.Errorf("%w: %d", ErrDuplicateID, job.ID)
	}
	if job.ID > r.lastID {
		r.lastID = job.ID
	}

	job.Status = models.StatusPending
	now := time.Now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now
	r.available = append(r.available, job)

	r.broadcast(EventPickupPosted, job)
	return job, nil
}

// Accept moves a pending job from available to active and marks it
// accepted. An id not in the available collection is a no-op, so stale or
// duplicate accept clicks change nothing. The move is atomic under the
// registry lock: the job is never visible in both collections or neither.
func (r *Registry) Accept(id int) (models.PickupJob, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, job := range r.available {
		if job.ID != id {
			continue
		}
		r.available = append(r.available[:i], r.available[i+1:]...)
		job.Status = models.StatusAccepted
		job.UpdatedAt = time.Now()
		r.active = append(r.active, job)

		r.broadcast(EventPickupAccepted, job)
		return job, true
	}
	return models.PickupJob{}, false
}

// AdvanceStatus moves an active job to the given target status. Only the
// immediate successor is accepted: accepted -> in_progress -> completed.
// A completed job cannot advance further. Unknown ids leave the registry
// unchanged and report ErrNotFound.
func (r *Registry) AdvanceStatus(id int, target models.PickupStatus) (models.PickupJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.active {
		if r.active[i].ID != id {
			continue
		}
		next, ok := r.active[i].Status.Next()
		if !ok || next != target {
			return models.PickupJob{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.active[i].Status, target)
		}
		r.active[i].Status = target
		r.active[i].UpdatedAt = time.Now()

		job := r.active[i]
		r.broadcast(EventStatusChanged, job)
		return job, nil
	}
	return models.PickupJob{}, ErrNotFound
}

// Cancel marks a non-terminal job cancelled and drops it from its
// collection.
func (r *Registry) Cancel(id int) (models.PickupJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, job := range r.available {
		if job.ID == id {
			r.available = append(r.available[:i], r.available[i+1:]...)
			job.Status = models.StatusCancelled
			job.UpdatedAt = time.Now()
			r.broadcast(EventPickupCancelled, job)
			return job, nil
		}
	}
	for i, job := range r.active {
		if job.ID != id {
			continue
		}
		if job.Status == models.StatusCompleted || job.Status == models.StatusCancelled {
			return models.PickupJob{}, ErrNotCancellable
		}
		r.active = append(r.active[:i], r.active[i+1:]...)
		job.Status = models.StatusCancelled
		job.UpdatedAt = time.Now()
		r.broadcast(EventPickupCancelled, job)
		return job, nil
	}
	return models.PickupJob{}, ErrNotFound
}

// Available returns the available collection. With a viewer location the
// jobs are annotated with distance, filtered to the radius (kilometers,
// non-positive means unlimited) and sorted nearest first; otherwise input
// order is preserved.
func (r *Registry) Available(loc *Location, radiusKm float64) []models.PickupJob {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.PickupJob, 0, len(r.available))
	for _, job := range r.available {
		if loc != nil {
			d := geo.RoundKm(geo.HaversineKm(loc.Latitude, loc.Longitude, job.PickupLatitude, job.PickupLongitude))
			if radiusKm > 0 && d > radiusKm {
				continue
			}
			job.Distance = d
		}
		out = append(out, job)
	}
	if loc != nil {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	}
	return out
}

// Active returns the active collection in insertion order. Completed jobs
// stay here; there is no archival collection.
func (r *Registry) Active() []models.PickupJob {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.PickupJob(nil), r.active...)
}

// Stats summarizes the worker's pickups.
type Stats struct {
	TotalPickups         int     `json:"total_pickups"`
	CompletedPickups     int     `json:"completed_pickups"`
	ActivePickups        int     `json:"active_pickups"`
	TotalEarnings        float64 `json:"total_earnings"`
	TotalWeightCollected float64 `json:"total_weight_collected"`
	RecentActivity30Days int     `json:"recent_activity_30_days"`
	CompletionRate       float64 `json:"completion_rate"`
}

// StatsAt computes worker statistics over the active collection as of the
// given time. Earnings and weight sum over completed jobs only.
func (r *Registry) StatsAt(now time.Time) Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var s Stats
	cutoff := now.AddDate(0, 0, -30)
	for _, job := range r.active {
		s.TotalPickups++
		if job.CreatedAt.After(cutoff) {
			s.RecentActivity30Days++
		}
		switch job.Status {
		case models.StatusCompleted:
			s.CompletedPickups++
			s.TotalEarnings += job.PaymentAmount
			s.TotalWeightCollected += job.EstimatedWeight
		case models.StatusInProgress:
			s.ActivePickups++
		}
	}
	if s.TotalPickups > 0 {
		s.CompletionRate = float64(s.CompletedPickups) / float64(s.TotalPickups) * 100
	}
	return s
}

func (r *Registry) Stats() Stats {
	return r.StatsAt(time.Now())
}

// findLocked looks the id up across both collections. Caller holds the lock.
func (r *Registry) findLocked(id int) *models.PickupJob {
	for i := range r.available {
		if r.available[i].ID == id {
			return &r.available[i]
		}
	}
	for i := range r.active {
		if r.active[i].ID == id {
			return &r.active[i]
		}
	}
	return nil
}

func (r *Registry) broadcast(t EventType, job models.PickupJob) {
	if r.notifier == nil {
		return
	}
	r.notifier.BroadcastJSON(Event{Type: t, Job: job})
}
