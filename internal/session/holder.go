// Package session holds the active device session. The original app kept
// the logged-in user in ambient global storage; here it is an explicit
// Holder passed to the components that need the partition key.
package session

import (
	"sync"

	"github.com/jaynujangad03/moodcam/internal/models"
)

// Holder is a concurrency-safe cell for the current session. It starts
// empty, is set at login, cleared at logout, and never expires on its own.
type Holder struct {
	mu      sync.RWMutex
	current *models.Session
}

func NewHolder() *Holder {
	return &Holder{}
}

// Set installs the session for a freshly logged-in user.
func (h *Holder) Set(s *models.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = s
}

// Clear removes the session on logout.
func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = nil
}

// Current returns the active session, or false when nobody is logged in.
func (h *Holder) Current() (*models.Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return nil, false
	}
	return h.current, true
}
