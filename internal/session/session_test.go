package session

import (
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hance08/dompet/internal/model"
	"github.com/hance08/dompet/internal/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// memRepo is an in-memory store.Repository for tests.
type memRepo struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemRepo() *memRepo { return &memRepo{data: map[string]string{}} }

func (m *memRepo) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", store.ErrRecordNotFound
	}
	return v, nil
}

func (m *memRepo) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memRepo) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memRepo) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memRepo) ExecTx(fn func(store.Repository) error) error { return fn(m) }
func (m *memRepo) Close() error                                 { return nil }

func openTestSession(t *testing.T, repo *memRepo) *Session {
	t.Helper()
	s, err := Open(repo, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestSession_TokenRoundTrip(t *testing.T) {
	repo := newMemRepo()
	s := openTestSession(t, repo)

	if _, ok := s.Token(); ok {
		t.Fatal("expected no token on a fresh session")
	}

	if err := s.SetToken("opaque-token"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	reopened := openTestSession(t, repo)
	token, ok := reopened.Token()
	if !ok || token != "opaque-token" {
		t.Errorf("Token = %q, %v; want opaque-token", token, ok)
	}
}

func TestSession_ClearRemovesTokenAndUser(t *testing.T) {
	repo := newMemRepo()
	s := openTestSession(t, repo)

	_ = s.SetToken("t")
	_ = s.SetCurrentUser(&model.CurrentUser{ID: "1", Fullname: "A"})
	_ = s.SetDarkMode(true)

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if _, ok := s.Token(); ok {
		t.Error("token should be cleared")
	}
	if _, ok := s.CurrentUser(); ok {
		t.Error("user should be cleared")
	}
	if !s.DarkMode() {
		t.Error("theme must survive logout")
	}
}

func TestSession_CorruptedUserTreatedAsAbsent(t *testing.T) {
	repo := newMemRepo()
	repo.data[KeyUser] = "{not json"
	s := openTestSession(t, repo)

	if u, ok := s.CurrentUser(); ok || u != nil {
		t.Fatalf("expected corrupted user to be absent, got %+v", u)
	}
	if _, ok := s.ViewerID(); ok {
		t.Error("ViewerID should be unavailable")
	}
}

func TestSession_CurrentUserRoundTrip(t *testing.T) {
	s := openTestSession(t, newMemRepo())

	want := &model.CurrentUser{ID: "7", Fullname: "Budi", Balance: decimal.NewFromInt(125000)}
	if err := s.SetCurrentUser(want); err != nil {
		t.Fatalf("SetCurrentUser failed: %v", err)
	}

	got, ok := s.CurrentUser()
	if !ok {
		t.Fatal("expected cached user")
	}
	if got.ID != want.ID || got.Fullname != want.Fullname || !got.Balance.Equal(want.Balance) {
		t.Errorf("CurrentUser = %+v, want %+v", got, want)
	}
}

func TestSession_ExpireToken(t *testing.T) {
	s := openTestSession(t, newMemRepo())
	_ = s.SetToken("first")

	if s.ExpireToken("other") {
		t.Error("a stale token must not clear the active session")
	}
	if !s.ExpireToken("first") {
		t.Error("expected the active token to be expired")
	}
	if s.ExpireToken("first") {
		t.Error("second expiry of the same token must report false")
	}
	if s.ExpireToken("") {
		t.Error("empty token must report false")
	}
}

func TestSession_DarkModeParseFailure(t *testing.T) {
	repo := newMemRepo()
	repo.data[KeyDarkMode] = "maybe"
	s := openTestSession(t, repo)

	if s.DarkMode() {
		t.Error("unparseable darkMode must fall back to light")
	}

	_ = s.SetDarkMode(true)
	if repo.data[KeyDarkMode] != "true" {
		t.Errorf("darkMode stored as %q, want \"true\"", repo.data[KeyDarkMode])
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user@example.com",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return s
}

func TestOpen_DropsExpiredJWT(t *testing.T) {
	repo := newMemRepo()
	repo.data[KeyToken] = signedToken(t, time.Now().Add(-time.Hour))
	repo.data[KeyUser] = `{"id":1,"fullname":"A"}`

	s := openTestSession(t, repo)

	if _, ok := s.Token(); ok {
		t.Error("expired token should be dropped on open")
	}
	if _, ok := s.CurrentUser(); ok {
		t.Error("cached user should be dropped with the expired token")
	}
}

func TestTokenClaims(t *testing.T) {
	repo := newMemRepo()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	repo.data[KeyToken] = signedToken(t, exp)

	s := openTestSession(t, repo)

	claims, ok := s.TokenClaims()
	if !ok {
		t.Fatal("expected JWT claims")
	}
	if claims.Subject != "user@example.com" || !claims.ExpiresAt.Equal(exp) {
		t.Errorf("claims = %+v", claims)
	}

	_ = s.SetToken("opaque")
	if _, ok := s.TokenClaims(); ok {
		t.Error("opaque token must not report claims")
	}
}

func TestOpen_PropagatesStoreFailure(t *testing.T) {
	_, err := Open(failingRepo{memRepo: newMemRepo()}, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error from failing repository")
	}
}

type failingRepo struct{ *memRepo }

func (failingRepo) Get(string) (string, error) { return "", errors.New("disk on fire") }
