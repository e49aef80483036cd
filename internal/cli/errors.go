package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jbeshir/promptly-mcp/internal/apierr"
)

const (
	ExitOK     = 0
	ExitFailed = 1
	ExitAuth   = 2
)

// commandError carries what the command was doing so the classified error
// can be rendered in context.
type commandError struct {
	rc  apierr.RenderContext
	err error
}

func (e *commandError) Error() string {
	return e.err.Error()
}

func (e *commandError) Unwrap() error {
	return e.err
}

func withContext(err error, operation, entityType, entityID string) error {
	if err == nil {
		return nil
	}
	return &commandError{
		rc:  apierr.RenderContext{Operation: operation, EntityType: entityType, EntityID: entityID},
		err: err,
	}
}

// ExitCode is 2 for missing or rejected credentials and 1 for every other
// failure.
func ExitCode(err error) int {
	switch apierr.KindOf(err) {
	case "":
		if err == nil {
			return ExitOK
		}
		return ExitFailed
	case apierr.KindAuthMissing, apierr.KindAuthInvalid:
		return ExitAuth
	default:
		return ExitFailed
	}
}

// Message is the user-facing text for err. Classified API errors are
// rendered with the command's context; anything else, such as a flag error,
// is shown as is.
func Message(err error) string {
	if _, ok := apierr.As(err); !ok {
		return err.Error()
	}

	var rc apierr.RenderContext
	var ce *commandError
	if errors.As(err, &ce) {
		rc = ce.rc
	}
	return apierr.Render(err, rc)
}

// PrintError writes err to w, styled when w is a terminal.
func PrintError(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	hint := r.NewStyle().Foreground(lipgloss.Color("245"))

	_, _ = fmt.Fprintln(w, label.Render("Error:"), Message(err))
	if ExitCode(err) == ExitAuth {
		_, _ = fmt.Fprintln(w, hint.Render("Run 'promptly auth status' to see which credentials are in use."))
	}
}
