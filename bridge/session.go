package bridge

import "sync"

// DefaultSessionHeader is the header the remote uses to pin a client to a server side session.
const DefaultSessionHeader = "Mcp-Session-Id"

// Session holds the affinity token shared by all dispatches of a process.
// Concurrent responses race on SetToken, the last one to complete wins.
type Session struct {
	mu    sync.RWMutex
	token string
}

// Token returns the current affinity token, empty when none was issued yet.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken replaces the affinity token. Empty values are ignored so a token,
// once seen, outlives responses that omit the header.
func (s *Session) SetToken(token string) {
	if token == "" {
		return
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}
