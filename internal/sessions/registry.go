// Package sessions maps document sessions to their history state for
// hosts that keep several documents open at once (the gRPC surface).
package sessions

import (
	"sync"

	"github.com/google/uuid"

	"github.com/kyo-hirano/receipt-fields/internal/history"
)

type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*history.Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]*history.Session)}
}

// Create opens a new empty session and returns its id.
func (r *Registry) Create() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.sessions[id] = history.NewSession()
	return id
}

func (r *Registry) Get(id uuid.UUID) (*history.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Reset clears a session's history in place, keeping the id valid.
func (r *Registry) Reset(id uuid.UUID) bool {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		s.Clear()
	}
	return ok
}

// Delete discards the session entirely. History is in-memory only, so
// this is the end of its data.
func (r *Registry) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
