package loopback

import (
	"fmt"
	"sync"
)

// Registry holds servers for login flows that have been started but not yet
// waited on. Start and wait happen at different times, usually on different
// goroutines, so the registry is the only shared state between them.
//
// A Registry is owned by whatever orchestrates login flows and injected where
// needed; it is deliberately not package-global so tests can run isolated
// instances.
type Registry struct {
	pending map[int]*Server
	mu      sync.Mutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{pending: make(map[int]*Server)}
}

// Register parks a server under its port until the caller waits on it.
func (r *Registry) Register(port int, s *Server) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pending[port]; exists {
		return fmt.Errorf("%w: %d", ErrAlreadyRegistered, port)
	}
	r.pending[port] = s
	return nil
}

// Take removes and returns the pending server for a port. A port is consumed
// exactly once; a second Take returns ErrNotFound.
//
// The lock covers only the map mutation, never a blocking wait, so one
// flow's wait cannot block another flow's start.
func (r *Registry) Take(port int) (*Server, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.pending[port]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, port)
	}
	delete(r.pending, port)
	return s, nil
}

// Len reports the number of pending servers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
