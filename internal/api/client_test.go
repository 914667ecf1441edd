package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/hance08/dompet/internal/model"
)

// fakeTokens mimics session.Session's token semantics.
type fakeTokens struct {
	mu      sync.Mutex
	token   string
	expired int
}

func (f *fakeTokens) Token() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, f.token != ""
}

func (f *fakeTokens) ExpireToken(token string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if token == "" || token != f.token {
		return false
	}
	f.token = ""
	f.expired++
	return true
}

func newTestClient(t *testing.T, h http.HandlerFunc, tokens *fakeTokens, opts ...Option) *Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	c, err := NewClient(ts.URL+"/api", tokens, opts...)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return c
}

func TestDo_AttachesBearerAndUnwrapsEnvelope(t *testing.T) {
	tokens := &fakeTokens{token: "abc"}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("Authorization = %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID")
		}
		if r.URL.Path != "/api/users/me" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"status":"OK","data":{"id":1,"fullname":"A","balance":150000}}`))
	}, tokens)

	u, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if u.ID != "1" || u.Fullname != "A" || u.Balance.IntPart() != 150000 {
		t.Errorf("user = %+v", u)
	}
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Error("Authorization header must be absent without a token")
		}
		w.Write([]byte(`{"token":"fresh"}`))
	}, &fakeTokens{})

	token, err := c.Login(context.Background(), "a@b.c", "Secret123")
	if err != nil || token != "fresh" {
		t.Fatalf("Login = %q, %v", token, err)
	}
}

func TestDo_UnauthorizedClearsSessionAndRedirectsOnce(t *testing.T) {
	tokens := &fakeTokens{token: "stale"}
	redirects := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}, tokens, WithUnauthorizedHandler(func() { redirects++ }))

	for i := 0; i < 2; i++ {
		_, err := c.ListTransactions(context.Background(), url.Values{})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("call %d: expected ErrUnauthorized, got %v", i, err)
		}
	}

	if _, ok := tokens.Token(); ok {
		t.Error("token should be cleared after 401")
	}
	if redirects != 1 {
		t.Errorf("redirects = %d, want 1", redirects)
	}
}

func TestDo_APIErrorMessages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"server message", http.StatusBadRequest, `{"message":"Insufficient balance"}`, "Insufficient balance"},
		{"plain string body", http.StatusConflict, `"Wallet locked"`, "Wallet locked"},
		{"no message", http.StatusInternalServerError, `<html>oops</html>`, defaultErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}, &fakeTokens{token: "t"})

			_, err := c.GetWallet(context.Background(), "1")

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %v", err)
			}
			if apiErr.Status != tt.status || apiErr.Message != tt.want {
				t.Errorf("APIError = %+v, want status %d message %q", apiErr, tt.status, tt.want)
			}
		})
	}
}

func TestDo_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := ts.URL
	ts.Close()

	c, err := NewClient(base, &fakeTokens{token: "t"})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = c.GetWallet(context.Background(), "1")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %v", err)
	}
}

func TestListTransactions_QueryAndShapes(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCount int
		wantPages int
	}{
		{"spring page", `{"content":[{"id":1,"amount":10}],"totalPages":4}`, 1, 4},
		{"data page", `{"data":[{"id":1,"amount":10},{"id":2,"amount":5}],"totalPages":2}`, 2, 2},
		{"envelope of array", `{"data":[{"id":"x","amount":"1.50"}]}`, 1, 1},
		{"bare array", `[{"id":1,"amount":10}]`, 1, 1},
		{"empty page", `{"content":[],"totalPages":0}`, 0, 1},
		{"empty body", ``, 0, 1},
		{"whitespace body", " \n", 0, 1},
		{"null body", `null`, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if _, ok := q["search"]; !ok {
					t.Error("search parameter must be present even when empty")
				}
				if q.Get("sort") != "date,desc" {
					t.Errorf("sort = %q", q.Get("sort"))
				}
				w.Write([]byte(tt.body))
			}, &fakeTokens{token: "t"})

			q := url.Values{}
			q.Set("walletId", "1")
			q.Set("search", "")
			q.Set("sort", "date,desc")

			page, err := c.ListTransactions(context.Background(), q)
			if err != nil {
				t.Fatalf("ListTransactions failed: %v", err)
			}
			if len(page.Content) != tt.wantCount || page.TotalPages != tt.wantPages {
				t.Errorf("page = %d items / %d pages, want %d / %d",
					len(page.Content), page.TotalPages, tt.wantCount, tt.wantPages)
			}
		})
	}
}

func TestCreateTransaction_Body(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		var body map[string]any
		if err := decodeJSON(r, &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["amount"] != float64(50000) {
			t.Errorf("amount = %#v, want JSON number 50000", body["amount"])
		}
		if body["walletId"] != float64(1) {
			t.Errorf("walletId = %#v, want JSON number 1", body["walletId"])
		}
		if body["transactionType"] != "TRANSFER" {
			t.Errorf("transactionType = %#v", body["transactionType"])
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":99,"transactionType":"TRANSFER","amount":50000}`))
	}, &fakeTokens{token: "t"})

	tx, err := c.CreateTransaction(context.Background(), CreateTransactionRequest{
		WalletID:               "1",
		TransactionType:        model.TypeTransfer,
		RecipientAccountNumber: "002552886580",
		Category:               "Food",
		Amount:                 "50000",
		Description:            "lunch",
	})
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}
	if tx.ID != "99" {
		t.Errorf("tx.ID = %q", tx.ID)
	}
}

func TestNewClient_InvalidURL(t *testing.T) {
	if _, err := NewClient("not a url", &fakeTokens{}); err == nil {
		t.Fatal("expected error for invalid base url")
	}
}
