package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/UhCardoso/travel-manager-front/internal/client/models"
	"github.com/UhCardoso/travel-manager-front/internal/logging"
)

// ErrIncompleteSession is returned by SetAuth when the token or the user is missing.
var ErrIncompleteSession = errors.New("session requires both token and user")

// Store holds the current token and user.
//
// Invariant: token and user are either both set or both absent.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	log     logging.Logger

	token string
	user  *models.User
}

// NewStore returns an empty store backed by storage. Call Initialize to
// restore a previously persisted session.
func NewStore(storage Storage, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{storage: storage, log: log}
}

// Initialize restores token and user from durable storage. A half-written
// pair or an unreadable user record is treated as "no session": the store
// and the storage are cleared and no error is returned. Only storage
// failures are reported.
func (s *Store) Initialize(ctx context.Context) error {
	token, userData, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	if token == "" && len(userData) == 0 {
		s.reset()
		return nil
	}

	var user models.User
	if token == "" || len(userData) == 0 {
		s.log.Warn(ctx, "incomplete persisted session, clearing")
		return s.ClearAuth(ctx)
	}
	if err := json.Unmarshal(userData, &user); err != nil {
		s.log.Warn(ctx, "malformed persisted user, clearing session", "error", err)
		return s.ClearAuth(ctx)
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()

	s.log.Debug(ctx, "session restored", "user_id", user.ID)
	return nil
}

// SetAuth makes token and user the current session and persists both.
// The in-memory state is updated even when persisting fails; the returned
// error tells the caller the session will not survive a restart.
func (s *Store) SetAuth(ctx context.Context, token string, user *models.User) error {
	if token == "" || user == nil {
		return ErrIncompleteSession
	}

	u := *user
	userData, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = &u
	s.mu.Unlock()

	if err := s.storage.Save(ctx, token, userData); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// ClearAuth drops the session from memory and from durable storage. It is
// safe to call on an empty store.
func (s *Store) ClearAuth(ctx context.Context) error {
	s.reset()
	if err := s.storage.Remove(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) reset() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

// IsAuthenticated reports token presence.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// HasValidSession is IsAuthenticated plus an expiry check for JWT tokens.
// Opaque tokens cannot be inspected and count as valid until the backend
// rejects them.
func (s *Store) HasValidSession(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil && !TokenExpired(s.token, now)
}

// Token returns the current token or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// PersistedToken reads the token straight from durable storage.
func (s *Store) PersistedToken(ctx context.Context) (string, error) {
	token, _, err := s.storage.Load(ctx)
	return token, err
}

// TokenExpired reports whether token is a JWT whose exp claim is not after
// now. Tokens that do not parse as JWTs, or carry no exp, never expire here.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
