package service

import (
	"sync"

	"github.com/welcomehome/inventory/internal/model"
)

// Session carries one authenticated identity and its in-progress order
// reference. Sessions are explicit values handed to each operation, so
// the service supports any number of concurrent logical sessions; there
// is no process-wide current user.
type Session struct {
	ID       string
	Username string
	Role     model.Role

	mu          sync.Mutex
	activeOrder string
}

// ActiveOrder returns the order currently being assembled in this
// session, or "" when none has been started.
func (s *Session) ActiveOrder() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeOrder
}

// SetActiveOrder records the order AddToOrder operates on.
func (s *Session) SetActiveOrder(orderID string) {
	s.mu.Lock()
	s.activeOrder = orderID
	s.mu.Unlock()
}

// SessionRegistry holds live sessions keyed by session ID. Sessions
// last until explicit logout or process end; no expiry is modeled.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionRegistry returns an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

// Put stores a session.
func (r *SessionRegistry) Put(s *Session) {
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
}

// Get returns the session for an ID, or nil when none exists.
func (r *SessionRegistry) Get(id string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// Remove drops a session. Removing an unknown ID is a no-op.
func (r *SessionRegistry) Remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
