// Package history holds the per-session candidate history: one
// bounded, deduplicated, newest-first buffer per field. A session is
// owned by one open document; it is created empty and discarded when
// the document closes.
package history

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/kyo-hirano/receipt-fields/constants"
	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

const (
	// Capacity bounds each field's buffer.
	Capacity = 10
	// confidence delta under which two same-valued entries are one
	confEpsilon = 0.01
)

// Session owns the four history buffers for one open document. The
// mutex serializes mutation against merge reads; callers on a single
// goroutine pay only an uncontended lock.
type Session struct {
	mu   sync.Mutex
	bufs map[constants.Field][]entity.Candidate
}

func NewSession() *Session {
	return &Session{bufs: make(map[constants.Field][]entity.Candidate)}
}

// Add prepends each candidate not already present (same value with
// confidence within confEpsilon counts as present), stamping a
// creation time and defaulting provenance, then truncates the buffer
// to capacity. Repeated noisy OCR passes over the same receipt
// therefore cannot grow the buffer.
func (s *Session) Add(field constants.Field, cands []entity.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := s.bufs[field]
	for _, c := range cands {
		if containsNear(buf, c) {
			continue
		}
		if c.Timestamp.IsZero() {
			c.Timestamp = time.Now().UTC()
		}
		if c.Source == "" {
			c.Source = constants.SourceOCR
		}
		c.IsHistory = false
		buf = append([]entity.Candidate{c}, buf...)
	}
	if len(buf) > Capacity {
		buf = buf[:Capacity]
	}
	s.bufs[field] = buf
}

// Merged returns fresh candidates plus any history entries whose value
// is absent from the fresh set, tagged IsHistory, sorted by descending
// confidence. Fresh evidence is never displaced by stale history;
// history only fills gaps. Resurfaced entries keep the provenance they
// were recorded with (a manual selection stays manual); IsHistory alone
// marks the resurfacing.
func (s *Session) Merged(field constants.Field, fresh []entity.Candidate) []entity.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	freshValues := make(map[string]struct{}, len(fresh))
	merged := make([]entity.Candidate, 0, len(fresh)+len(s.bufs[field]))
	for _, c := range fresh {
		freshValues[c.Value] = struct{}{}
		merged = append(merged, c)
	}
	for _, h := range s.bufs[field] {
		if _, ok := freshValues[h.Value]; ok {
			continue
		}
		h.IsHistory = true
		merged = append(merged, h)
	}
	// stable: fresh entries precede history at equal confidence
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Confidence > merged[j].Confidence
	})
	return merged
}

// Remove deletes every entry matching value from the field's buffer.
// Used when the reviewer rejects a suggestion.
func (s *Session) Remove(field constants.Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := s.bufs[field]
	kept := buf[:0]
	for _, c := range buf {
		if c.Value != value {
			kept = append(kept, c)
		}
	}
	s.bufs[field] = kept
}

// Clear empties every buffer; called when a new document starts.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bufs = make(map[constants.Field][]entity.Candidate)
}

// Snapshot returns a copy of the field's buffer, newest first.
func (s *Session) Snapshot(field constants.Field) []entity.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := s.bufs[field]
	out := make([]entity.Candidate, len(buf))
	copy(out, buf)
	return out
}

func containsNear(buf []entity.Candidate, c entity.Candidate) bool {
	for _, existing := range buf {
		if existing.Value == c.Value && math.Abs(existing.Confidence-c.Confidence) < confEpsilon {
			return true
		}
	}
	return false
}
