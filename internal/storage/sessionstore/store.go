// Package sessionstore implements SessionStore with process-lifetime
// in-memory state. Watchlists and analysis history are session-scoped by
// contract and never persisted across restarts, so no database backs this
// store; each session's state is isolated under its session ID.
package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/shivam-4/finagent/internal/common"
	"github.com/shivam-4/finagent/internal/interfaces"
	"github.com/shivam-4/finagent/internal/models"
)

// Store implements interfaces.SessionStore.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.SessionState
	logger   *common.Logger
	now      func() time.Time // injectable clock for testing
}

// NewStore creates a new in-memory session store.
func NewStore(logger *common.Logger) *Store {
	return &Store{
		sessions: make(map[string]*models.SessionState),
		logger:   logger,
		now:      time.Now,
	}
}

// newSession creates an empty session. Caller holds the write lock.
func (s *Store) newSession(sessionID string) *models.SessionState {
	now := s.now()
	state := &models.SessionState{
		SessionID: sessionID,
		Watchlist: []string{},
		History:   []models.AnalysisHistoryEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[sessionID] = state
	s.logger.Debug().Str("session", sessionID).Msg("Session created")
	return state
}

// snapshot returns a deep copy so callers can never mutate stored state.
func snapshot(state *models.SessionState) *models.SessionState {
	copied := &models.SessionState{
		SessionID: state.SessionID,
		Watchlist: make([]string, len(state.Watchlist)),
		History:   make([]models.AnalysisHistoryEntry, len(state.History)),
		CreatedAt: state.CreatedAt,
		UpdatedAt: state.UpdatedAt,
	}
	copy(copied.Watchlist, state.Watchlist)
	copy(copied.History, state.History)
	return copied
}

// Get returns a snapshot of the session's state, creating an empty session
// on first access.
func (s *Store) Get(_ context.Context, sessionID string) (*models.SessionState, error) {
	s.mu.RLock()
	if state, ok := s.sessions[sessionID]; ok {
		defer s.mu.RUnlock()
		return snapshot(state), nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		state = s.newSession(sessionID)
	}
	return snapshot(state), nil
}

// Update applies fn to the session's state atomically. An error from fn
// aborts the update and leaves the stored state untouched.
func (s *Store) Update(_ context.Context, sessionID string, fn func(*models.SessionState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		state = s.newSession(sessionID)
	}

	// Mutate a copy; commit only on success
	working := snapshot(state)
	if err := fn(working); err != nil {
		return err
	}
	working.UpdatedAt = s.now()
	s.sessions[sessionID] = working

	return nil
}

// Delete discards a session's state entirely. Absent sessions are a no-op.
func (s *Store) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Sessions returns the IDs of all live sessions.
func (s *Store) Sessions(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids, nil
}

// Close releases the store. In-memory state simply goes away.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*models.SessionState)
	return nil
}

// Ensure Store implements SessionStore
var _ interfaces.SessionStore = (*Store)(nil)
