package pos

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CommitHook runs after an intent has been applied, with the committed
// snapshot. Hooks must not dispatch.
type CommitHook func(Snapshot)

// Store owns the authoritative snapshot. All mutation goes through
// Dispatch; intents are applied one at a time, so the transition rules
// never see a half-updated state.
type Store struct {
	mu    sync.Mutex
	snap  Snapshot
	hooks []CommitHook

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock replaces the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDSource replaces the cart-line id generator.
func WithIDSource(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func NewStore(initial Snapshot, opts ...Option) *Store {
	s := &Store{
		snap:  initial.Clone(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnCommit registers a hook invoked after every applied intent.
func (s *Store) OnCommit(h CommitHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, h)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// Dispatch validates and applies one intent. On error the stored
// snapshot is unchanged and the returned snapshot reflects that.
func (s *Store) Dispatch(in Intent) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.apply(s.snap.Clone(), in)
	if err != nil {
		return s.snap.Clone(), err
	}
	s.snap = next

	out := next.Clone()
	for _, h := range s.hooks {
		h(out)
	}
	return out, nil
}
