// Package session holds per-session terminal state: the bounded command
// history and bang-style recall over it.
package session

import (
	"strings"
	"sync"

	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/ports"
)

// Store is a bounded in-memory command history. When the capacity is
// reached the oldest line is evicted, and recall indices shift so that 1
// always names the oldest retained line, matching what the listing prints.
type Store struct {
	mu       sync.Mutex
	capacity int
	lines    []string
}

var _ ports.SessionHistory = (*Store)(nil)

// NewStore builds a history store. Non-positive capacities fall back to the
// default.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = domain.DefaultHistoryCapacity
	}
	return &Store{capacity: capacity, lines: make([]string, 0, capacity)}
}

// Append records one submitted line. Blank lines are never recorded.
func (s *Store) Append(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) >= s.capacity {
		copy(s.lines, s.lines[1:])
		s.lines = s.lines[:len(s.lines)-1]
	}
	s.lines = append(s.lines, line)
}

// Len reports how many lines are currently retained.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// At returns the 1-based entry n, counted from the oldest retained line.
func (s *Store) At(n int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 || n > len(s.lines) {
		return "", false
	}
	return s.lines[n-1], true
}

// Last returns the most recently recorded line.
func (s *Store) Last() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return "", false
	}
	return s.lines[len(s.lines)-1], true
}

// Entries returns the most recent limit lines oldest-first, each carrying
// the index that recalls it. A non-positive limit returns everything
// retained.
func (s *Store) Entries(limit int) []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := 0
	if limit > 0 && len(s.lines) > limit {
		start = len(s.lines) - limit
	}
	entries := make([]domain.HistoryEntry, 0, len(s.lines)-start)
	for i := start; i < len(s.lines); i++ {
		entries = append(entries, domain.HistoryEntry{Index: i + 1, Line: s.lines[i]})
	}
	return entries
}
