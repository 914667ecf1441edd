package errhandler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/dompet/internal/api"
	"github.com/hance08/dompet/internal/service"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"unauthorized", fmt.Errorf("failed to list: %w", api.ErrUnauthorized), "Your session has expired. Please log in again with 'dompet login'."},
		{"api error", fmt.Errorf("transfer failed: %w", &api.APIError{Status: 400, Message: "Insufficient balance"}), "Insufficient balance"},
		{"network", &api.NetworkError{Op: "GET /x", Err: errors.New("dial tcp")}, "Network error or server is unreachable."},
		{"validation", &service.ValidationError{Field: "amount", Message: "amount must be greater than zero"}, "amount: amount must be greater than zero"},
		{"other", errors.New("disk full"), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsCancelled(t *testing.T) {
	if !IsCancelled(terminal.InterruptErr) {
		t.Error("survey interrupt should cancel")
	}
	if !IsCancelled(fmt.Errorf("form: %w", huh.ErrUserAborted)) {
		t.Error("huh abort should cancel")
	}
	if !IsCancelled(&api.NetworkError{Op: "GET /transactions", Err: context.Canceled}) {
		t.Error("cancelled request context should cancel")
	}
	if IsCancelled(errors.New("boom")) || IsCancelled(nil) {
		t.Error("ordinary errors should not cancel")
	}
}

func TestIsCancelled_ServerMessageMentioningInterrupt(t *testing.T) {
	err := fmt.Errorf("transfer failed: %w", &api.APIError{Status: 502, Message: "Transfer interrupted by upstream bank"})

	if IsCancelled(err) {
		t.Fatal("server error was treated as a user cancel")
	}
	if code := HandleError(err); code != 1 {
		t.Errorf("HandleError() = %d, want 1", code)
	}
	if got := UserMessage(err); got != "Transfer interrupted by upstream bank" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestHandleError_ExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"cancelled", terminal.InterruptErr, 0},
		{"failure", errors.New("disk full"), 1},
		{"unauthorized", api.ErrUnauthorized, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandleError(tt.err); got != tt.want {
				t.Errorf("HandleError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"disk full":       "Disk full",
		"élan":            "Élan",
		"Already capital": "Already capital",
	}
	for in, want := range tests {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
