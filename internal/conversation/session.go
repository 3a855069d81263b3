package conversation

import "sync"

// Session is one user's dialogue state. The embedded mutex serializes
// event handling per user: the transport may deliver concurrently, but
// transitions for one user always run one at a time, in order.
type Session struct {
	mu    sync.Mutex
	Step  Step
	Draft Draft
}

// Reset discards the draft and returns the session to idle. Safe to call
// mid-conversation; there are no side effects to undo before commit.
func (s *Session) Reset() {
	s.Step = StepIdle
	s.Draft = Draft{}
}

// SessionStore owns the userID -> Session mapping. Sessions are created
// on first contact and live until process exit; Reset, not deletion,
// ends a conversation.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Get returns the session for userID, creating an idle one if absent.
func (s *SessionStore) Get(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session{Step: StepIdle}
		s.sessions[userID] = sess
	}
	return sess
}

// Len reports how many sessions exist, idle ones included.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
