package ledger

import "sync"

// Gate is a basic AccessGate: one privileged admin principal and a pause
// flag. Pause and Unpause are themselves admin-only.
type Gate struct {
	mu     sync.Mutex
	admin  Principal
	paused bool
}

// Compile-time interface check.
var _ AccessGate = (*Gate)(nil)

// NewGate creates a gate administered by the given principal.
func NewGate(admin Principal) *Gate {
	return &Gate{admin: admin}
}

// IsPaused reports whether the system is paused.
func (g *Gate) IsPaused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paused
}

// RequirePrivileged returns ErrUnauthorized unless caller is the admin.
func (g *Gate) RequirePrivileged(caller Principal) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if caller != g.admin {
		return ErrUnauthorized
	}
	return nil
}

// Pause sets the paused flag. Admin only.
func (g *Gate) Pause(caller Principal) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if caller != g.admin {
		return ErrUnauthorized
	}
	g.paused = true
	return nil
}

// Unpause clears the paused flag. Admin only.
func (g *Gate) Unpause(caller Principal) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if caller != g.admin {
		return ErrUnauthorized
	}
	g.paused = false
	return nil
}
