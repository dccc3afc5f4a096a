// server/internal/session/store.go
package session

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"ecoconnect-api-server/internal/models"
)

// Store holds the client-side belief about which user, if any, is
// currently authenticated against the external auth service. It is the
// single source of truth for authenticated-vs-anonymous decisions; the
// durable mirror is only a cache so a restart shows the last-known user
// until the next session probe answers.
//
// Concurrent duplicate auth requests resolve last-write-wins: each call
// takes a sequence number before issuing, and a result is applied only
// if no newer result landed first.
type Store struct {
	mu         sync.Mutex
	user       *models.User
	nextSeq    uint64
	appliedSeq uint64
	mirrorPath string
}

// NewStore creates a store backed by the mirror file at mirrorPath.
// An existing mirror is loaded; a corrupt one is discarded.
func NewStore(mirrorPath string) *Store {
	s := &Store{mirrorPath: mirrorPath}
	s.loadMirror()
	return s
}

// NextSeq hands out the sequence number for one gateway call.
func (s *Store) NextSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	return s.nextSeq
}

// Apply records a successful auth outcome. It reports false when a newer
// result already superseded this one, in which case nothing changes.
func (s *Store) Apply(seq uint64, user models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.appliedSeq {
		return false
	}
	s.appliedSeq = seq
	s.user = &user
	s.writeMirror(user)
	return true
}

// Clear records a logged-out outcome under the same supersession rule.
func (s *Store) Clear(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.appliedSeq {
		return false
	}
	s.appliedSeq = seq
	s.user = nil
	s.removeMirror()
	return true
}

// Current returns the authenticated user, if any.
func (s *Store) Current() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Store) loadMirror() {
	if s.mirrorPath == "" {
		return
	}
	data, err := os.ReadFile(s.mirrorPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Could not read session mirror: %v", err)
		}
		return
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("Discarding corrupt session mirror: %v", err)
		s.removeMirror()
		return
	}
	s.user = &user
}

// writeMirror and removeMirror are called with the lock held. Mirror
// failures are logged and never surfaced: the store stays authoritative.
func (s *Store) writeMirror(user models.User) {
	if s.mirrorPath == "" {
		return
	}
	data, err := json.Marshal(user)
	if err != nil {
		log.Printf("Could not serialize session mirror: %v", err)
		return
	}
	if err := os.WriteFile(s.mirrorPath, data, 0600); err != nil {
		log.Printf("Could not write session mirror: %v", err)
	}
}

func (s *Store) removeMirror() {
	if s.mirrorPath == "" {
		return
	}
	if err := os.Remove(s.mirrorPath); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not remove session mirror: %v", err)
	}
}
