package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hance08/dompet/internal/model"
	"github.com/hance08/dompet/internal/store"
	"github.com/rs/zerolog"
)

const (
	KeyToken    = "token"
	KeyUser     = "user"
	KeyDarkMode = "darkMode"
)

// Session is the process-wide session and theme context. It owns the bearer
// token and the cached user snapshot; every component receives it explicitly.
type Session struct {
	repo store.Repository
	log  zerolog.Logger

	mu    sync.RWMutex
	token string
}

// Claims is the subset of JWT claims shown to the user.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Open loads the persisted token. A JWT whose exp claim has passed is dropped
// so the user is asked to log in without a wasted round trip.
func Open(repo store.Repository, log zerolog.Logger) (*Session, error) {
	s := &Session{repo: repo, log: log}

	token, err := repo.Get(KeyToken)
	switch {
	case err == nil:
		s.token = token
	case errors.Is(err, store.ErrRecordNotFound):
	default:
		return nil, fmt.Errorf("failed to load session token: %w", err)
	}

	if claims, ok := s.TokenClaims(); ok && !claims.ExpiresAt.IsZero() && claims.ExpiresAt.Before(time.Now()) {
		s.log.Info().Time("expired_at", claims.ExpiresAt).Msg("stored token expired, clearing session")
		if err := s.Clear(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Token returns the bearer token, if any.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(KeyToken, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	s.token = token
	return nil
}

// Clear removes the token and the cached user.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

func (s *Session) clearLocked() error {
	err := s.repo.ExecTx(func(r store.Repository) error {
		return r.Delete(KeyToken, KeyUser)
	})
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.token = ""
	return nil
}

// ExpireToken clears the session only if token is still the active one and
// reports whether it did. Overlapping 401 responses for the same token thus
// produce a single logout, and a late 401 never wipes a newer login.
func (s *Session) ExpireToken(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != token {
		return false
	}
	if err := s.clearLocked(); err != nil {
		s.log.Error().Err(err).Msg("failed to clear expired session")
		s.token = ""
	}
	return true
}

// CurrentUser returns the cached user. A corrupted payload is logged and
// treated as absent so the caller falls back to re-fetching the identity.
func (s *Session) CurrentUser() (*model.CurrentUser, bool) {
	raw, err := s.repo.Get(KeyUser)
	if err != nil {
		if !errors.Is(err, store.ErrRecordNotFound) {
			s.log.Warn().Err(err).Msg("failed to read cached user")
		}
		return nil, false
	}

	var u model.CurrentUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.log.Warn().Err(err).Msg("cached user is corrupted, ignoring")
		return nil, false
	}
	if u.ID.IsZero() {
		return nil, false
	}
	return &u, true
}

func (s *Session) SetCurrentUser(u *model.CurrentUser) error {
	if u == nil {
		return s.repo.Delete(KeyUser)
	}

	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.repo.Set(KeyUser, string(b)); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// ViewerID is the id of the cached user, used by the classifier.
func (s *Session) ViewerID() (model.ID, bool) {
	u, ok := s.CurrentUser()
	if !ok {
		return "", false
	}
	return u.ID, true
}

func (s *Session) DarkMode() bool {
	raw, err := s.repo.Get(KeyDarkMode)
	if err != nil {
		return false
	}
	dark, err := strconv.ParseBool(raw)
	if err != nil {
		s.log.Warn().Str("value", raw).Msg("invalid darkMode value, using light theme")
		return false
	}
	return dark
}

func (s *Session) SetDarkMode(dark bool) error {
	if err := s.repo.Set(KeyDarkMode, strconv.FormatBool(dark)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// TokenClaims decodes the token without verifying it. Opaque (non-JWT) tokens
// report false.
func (s *Session) TokenClaims() (Claims, bool) {
	token, ok := s.Token()
	if !ok {
		return Claims{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, false
	}

	var c Claims
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		c.Subject = sub
	}
	if iat, err := parsed.Claims.GetIssuedAt(); err == nil && iat != nil {
		c.IssuedAt = iat.Time
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, true
}
