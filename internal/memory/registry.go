package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultSessionIdleTTL = 30 * time.Minute
	DefaultSweepInterval  = 5 * time.Minute
)

type sessionState struct {
	buffer   *Buffer
	lastSeen time.Time
}

// Registry hands out one conversation Buffer per session and evicts sessions
// that have been idle longer than the TTL.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*sessionState

	capacity int
	idleTTL  time.Duration
	log      *zap.SugaredLogger
}

func NewRegistry(capacity int, idleTTL time.Duration, log *zap.SugaredLogger) *Registry {
	if idleTTL <= 0 {
		idleTTL = DefaultSessionIdleTTL
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Registry{
		sessions: make(map[string]*sessionState),
		capacity: capacity,
		idleTTL:  idleTTL,
		log:      log,
	}
}

// Acquire returns the buffer for sessionID, creating it on first contact, and
// refreshes the session's activity timestamp. An empty sessionID mints a new
// session; the returned id identifies it either way.
func (r *Registry) Acquire(sessionID string) (string, *Buffer) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.sessions[sessionID]
	if !ok {
		state = &sessionState{buffer: NewBuffer(r.capacity)}
		r.sessions[sessionID] = state
	}
	state.lastSeen = time.Now()
	return sessionID, state.buffer
}

// Lookup returns the buffer for sessionID without creating one.
func (r *Registry) Lookup(sessionID string) (*Buffer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.sessions[sessionID]
	if !ok {
		return nil, false
	}
	state.lastSeen = time.Now()
	return state.buffer, true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// StartSweeper evicts idle sessions on a ticker until ctx is cancelled.
func (r *Registry) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	go r.sweepLoop(ctx, interval)
}

func (r *Registry) sweepLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.sweep(time.Now()); n > 0 {
				r.log.Infow("evicted idle sessions", "count", n)
			}
		}
	}
}

// sweep removes sessions last touched before now minus the idle TTL and
// returns how many were evicted.
func (r *Registry) sweep(now time.Time) int {
	cutoff := now.Add(-r.idleTTL)
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, state := range r.sessions {
		if state.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}
