package checkout

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/keymaster/pos/internal/staff"
)

// ErrSessionNotFound is returned when no session matches the given token.
var ErrSessionNotFound = errors.New("session not found")

// Session is one authenticated cashier session. It exclusively owns its cart;
// the mutex serializes cart access so concurrent HTTP requests on the same
// token cannot tear cart state.
type Session struct {
	Token    string
	Employee staff.Employee

	mu   sync.Mutex
	cart *Cart
}

// WithCart runs fn with exclusive access to the session's cart.
func (s *Session) WithCart(fn func(cart *Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.cart)
}

// SessionManager tracks the active cashier sessions by token.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionManager returns an empty session registry.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// Begin opens a new session for the employee and returns it. Each session
// starts with an empty cart.
func (m *SessionManager) Begin(employee staff.Employee) *Session {
	session := &Session{
		Token:    uuid.NewString(),
		Employee: employee,
		cart:     NewCart(),
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Token] = session
	return session
}

// Get looks up a session by token.
// Returns ErrSessionNotFound if the token is unknown.
func (m *SessionManager) Get(token string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// End discards the session and its cart. Ending an unknown token is a no-op.
func (m *SessionManager) End(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
