// Package session owns the client's authentication state: the bearer token,
// the authenticated user record, and the persisted credential pair. It is the
// only component allowed to mutate session data, in memory or on disk.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/ideatrack/internal/client/models"
	"github.com/dmitrijs2005/ideatrack/internal/client/storage"
	"github.com/dmitrijs2005/ideatrack/internal/common"
	"github.com/dmitrijs2005/ideatrack/internal/logging"
)

// State is the lifecycle stage of the session.
//
// Initializing -> Unauthenticated | Authenticated (via Restore, once)
// Unauthenticated -> Authenticated (via Login)
// Authenticated -> Unauthenticated (via Logout or forced invalidation)
type State string

const (
	StateInitializing    State = "initializing"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// sessionKeys is the exact set of durable entries owned by the session.
// Logout clears these and nothing else.
var sessionKeys = []string{common.StorageKeyToken, common.StorageKeyUser}

// Store holds the in-memory session and mediates all access to the persisted
// credential pair. Construct one per client instance and inject it; there is
// no package-level singleton.
//
// Invariants: IsAuthenticated() == (User() != nil); a token is present iff
// authenticated; the store never returns to Initializing after the first
// Restore completes.
type Store struct {
	mu        sync.RWMutex
	state     State
	user      *models.User
	token     string
	listeners []func(authenticated bool)

	// transition serializes state changes so persistence and the in-memory
	// state can never diverge under concurrent calls.
	transition sync.Mutex

	storage storage.Store
	log     logging.Logger
}

func NewStore(st storage.Store, log logging.Logger) *Store {
	return &Store{state: StateInitializing, storage: st, log: log}
}

// OnChange registers a listener invoked after every authentication
// transition, including the initial one produced by Restore. Listeners run
// synchronously in registration order, strictly after the state change.
// Register listeners during wiring, before Restore.
func (s *Store) OnChange(fn func(authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Restore loads the persisted credential pair, if any, and leaves the
// Initializing state exactly once. A missing or undecodable record leaves the
// session unauthenticated; decode failures are logged, never raised.
func (s *Store) Restore(ctx context.Context) {
	s.transition.Lock()

	if s.currentState() != StateInitializing {
		s.transition.Unlock()
		return
	}

	user, token := s.readPersisted(ctx)

	var notify func()
	if user != nil {
		notify = s.setState(StateAuthenticated, user, token)
		s.log.Info(ctx, "session restored", "employee", user.EmployeeNumber, "role", user.Role)
	} else {
		notify = s.setState(StateUnauthenticated, nil, "")
	}
	s.transition.Unlock()
	notify()
}

func (s *Store) readPersisted(ctx context.Context) (*models.User, string) {
	data, err := s.storage.Get(ctx, common.StorageKeyUser)
	if err != nil {
		s.log.Error(ctx, "failed to read persisted session", "error", err)
		return nil, ""
	}
	if data == nil {
		return nil, ""
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.Warn(ctx, "persisted session is malformed, starting unauthenticated", "error", err)
		return nil, ""
	}

	token := user.Token
	if token == "" {
		// older records may lack the embedded copy; fall back to the bare entry
		raw, err := s.storage.Get(ctx, common.StorageKeyToken)
		if err != nil {
			s.log.Error(ctx, "failed to read persisted token", "error", err)
			return nil, ""
		}
		token = string(raw)
	}
	if token == "" {
		s.log.Warn(ctx, "persisted session has no token, starting unauthenticated")
		return nil, ""
	}
	user.Token = token
	return &user, token
}

// Login accepts the payload of a successful OTP verification. It fails with
// common.ErrMissingCredentials when either part is absent, leaving the prior
// state untouched. On success the merged record and the bare token are
// persisted atomically before the in-memory transition happens.
func (s *Store) Login(ctx context.Context, token string, user *models.User) error {
	if token == "" || user == nil {
		return common.ErrMissingCredentials
	}

	s.transition.Lock()

	merged := *user
	merged.Token = token

	data, err := json.Marshal(&merged)
	if err != nil {
		s.transition.Unlock()
		return fmt.Errorf("failed to encode user record: %w", err)
	}

	err = s.storage.SetAll(ctx, map[string][]byte{
		common.StorageKeyUser:  data,
		common.StorageKeyToken: []byte(token),
	})
	if err != nil {
		s.transition.Unlock()
		return fmt.Errorf("failed to persist session: %w", err)
	}

	notify := s.setState(StateAuthenticated, &merged, token)
	s.log.Info(ctx, "logged in", "employee", merged.EmployeeNumber, "role", merged.Role)
	s.transition.Unlock()
	notify()
	return nil
}

// Logout clears exactly the session keys from durable storage and
// transitions to Unauthenticated synchronously with the clear.
func (s *Store) Logout(ctx context.Context) error {
	s.transition.Lock()

	if err := s.storage.DeleteAll(ctx, sessionKeys...); err != nil {
		s.transition.Unlock()
		return fmt.Errorf("failed to clear session: %w", err)
	}

	notify := s.setState(StateUnauthenticated, nil, "")
	s.log.Info(ctx, "logged out")
	s.transition.Unlock()
	notify()
	return nil
}

// Invalidate is the forced logout driven by the HTTP client's
// authentication-invalidated signal. Idempotent: clears are harmless when
// already unauthenticated.
func (s *Store) Invalidate(ctx context.Context) {
	s.transition.Lock()

	if err := s.storage.DeleteAll(ctx, sessionKeys...); err != nil {
		s.log.Error(ctx, "failed to clear invalidated session", "error", err)
	}

	if s.currentState() != StateAuthenticated {
		s.transition.Unlock()
		return
	}

	notify := s.setState(StateUnauthenticated, nil, "")
	s.log.Warn(ctx, "session invalidated by server")
	s.transition.Unlock()
	notify()
}

// setState applies the in-memory transition and returns the deferred listener
// notification. The caller invokes it after releasing the transition lock so
// a listener can re-enter the store (a 401 during a triggered load must be
// able to invalidate) without deadlocking; the call still happens in the same
// goroutine, strictly after the state change.
func (s *Store) setState(next State, user *models.User, token string) func() {
	s.mu.Lock()
	prev := s.state
	prevUser := s.user
	s.state = next
	s.user = user
	s.token = token
	listeners := make([]func(bool), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	authenticated := next == StateAuthenticated
	// A login on top of an existing session counts as a transition when the
	// identity changes, so dependent caches reload instead of keeping the
	// previous user's data.
	switchedUser := authenticated && prev == StateAuthenticated &&
		(prevUser == nil || prevUser.EmployeeNumber != user.EmployeeNumber)
	changed := prev == StateInitializing ||
		(prev == StateAuthenticated) != authenticated ||
		switchedUser
	if !changed {
		return func() {}
	}
	return func() {
		for _, fn := range listeners {
			fn(authenticated)
		}
	}
}

func (s *Store) currentState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// State reports the current lifecycle stage.
func (s *Store) State() State { return s.currentState() }

// Loading reports whether the initial restore is still pending.
func (s *Store) Loading() bool { return s.currentState() == StateInitializing }

// IsAuthenticated reports whether a user is attached to the session.
func (s *Store) IsAuthenticated() bool { return s.currentState() == StateAuthenticated }

// User returns a copy of the authenticated user record, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Token returns the current bearer token, or "" when unauthenticated.
// Implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
