package session

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
)

// Observer is notified after an edit changes the preference or signature.
type Observer interface {
	PreferenceChanged(State)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(State)

// PreferenceChanged calls f(s).
func (f ObserverFunc) PreferenceChanged(s State) { f(s) }

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver registers o at construction.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// Session serializes edits over a State. Safe for concurrent use.
// Observers run synchronously on the editing goroutine, after the lock is released.
type Session struct {
	id  uuid.UUID
	log *zap.Logger

	mu        sync.Mutex
	state     State
	observers []Observer
}

// New starts a session over sig in mode.
func New(sig signature.Signature, mode preference.Mode, opts ...Option) (*Session, error) {
	st, err := NewState(sig, mode)
	if err != nil {
		return nil, err
	}
	s := &Session{id: uuid.New(), log: zap.NewNop(), state: st}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("session", s.id.String()))
	s.log.Debug("session started",
		zap.Stringer("signature", sig),
		zap.Stringer("mode", mode))

	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Subscribe registers o for future changes.
func (s *Session) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Apply applies e to the current state. Rejected edits leave it unchanged.
func (s *Session) Apply(e Edit) (State, error) {
	s.mu.Lock()
	prev := s.state
	next, err := Apply(prev, e)
	if err != nil {
		s.mu.Unlock()
		s.log.Warn("edit rejected", editField(e), zap.Error(err))
		return prev, err
	}
	s.state = next
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	if et, ok := e.(EditText); ok && next.Text(et.Format).Err != "" {
		s.log.Info("text not decoded",
			zap.Stringer("format", et.Format),
			zap.String("error", next.Text(et.Format).Err))
	}
	changed := !prev.Signature.Equal(next.Signature) || !prev.Preference.Equal(next.Preference)
	s.log.Debug("edit applied",
		editField(e),
		zap.Bool("changed", changed),
		zap.Int("ranks", next.Preference.RankCount()))
	if changed {
		for _, o := range observers {
			o.PreferenceChanged(next)
		}
	}

	return next, nil
}

func editField(e Edit) zap.Field {
	if e == nil {
		return zap.String("edit", "nil")
	}

	return zap.String("edit", e.name())
}
