package errhandler

import (
	"context"
	"errors"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/dompet/internal/api"
	"github.com/hance08/dompet/internal/service"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err is a prompt interrupt (Ctrl+C in survey or
// huh) or a cancelled command context.
func IsCancelled(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, context.Canceled)
}

// UserMessage turns err into the text shown to the user.
func UserMessage(err error) string {
	var (
		apiErr *api.APIError
		netErr *api.NetworkError
		vErr   *service.ValidationError
	)

	switch {
	case err == nil:
		return ""
	case errors.Is(err, api.ErrUnauthorized):
		return "Your session has expired. Please log in again with 'dompet login'."
	case errors.Is(err, service.ErrNotLoggedIn):
		return "You are not logged in. Run 'dompet login' first."
	case errors.As(err, &vErr):
		return vErr.Error()
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.As(err, &netErr):
		return "Network error or server is unreachable."
	default:
		return err.Error()
	}
}

// HandleError prints err for the terminal and returns the process exit code.
// Cancelled prompts exit cleanly.
func HandleError(err error) int {
	if err == nil {
		return 0
	}
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		return 0
	}

	pterm.Error.Println(capitalize(UserMessage(err)))
	return 1
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
