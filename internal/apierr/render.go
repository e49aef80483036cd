package apierr

import (
	"fmt"
	"strings"
)

// RenderContext describes what the caller was doing when the error occurred.
// All fields are optional.
type RenderContext struct {
	// Operation is a verb phrase such as "get" or "publish".
	Operation  string
	EntityType string
	EntityID   string
}

func (rc RenderContext) action() string {
	var parts []string
	if rc.Operation != "" {
		parts = append(parts, rc.Operation)
	}
	if rc.EntityType != "" {
		parts = append(parts, rc.EntityType)
	}
	if rc.EntityID != "" {
		parts = append(parts, fmt.Sprintf("%q", rc.EntityID))
	}
	if len(parts) == 0 {
		return "calling the Promptly API"
	}
	return "trying to " + strings.Join(parts, " ")
}

func (rc RenderContext) subject() string {
	entity := rc.EntityType
	if entity == "" {
		entity = "resource"
	}
	entity = strings.ToUpper(entity[:1]) + entity[1:]
	if rc.EntityID != "" {
		return fmt.Sprintf("%s %q", entity, rc.EntityID)
	}
	return "The requested " + strings.ToLower(entity)
}

// Render turns err into a message fit for an end user. NotFound and
// AuthInvalid never include the upstream message; every other kind appends
// it as a trailing detail line.
func Render(err error, rc RenderContext) string {
	e := Classify(err, 0)
	if e == nil {
		return ""
	}

	var msg string
	switch e.Kind {
	case KindAuthMissing:
		msg = "No Promptly API key is configured. Set PROMPTLY_API_KEY, add it to .env or the " +
			"global config file, or run `promptly auth login`."
	case KindAuthInvalid:
		msg = fmt.Sprintf("Authentication failed while %s: the API key is invalid or lacks permission.",
			rc.action())
	case KindNotFound:
		msg = rc.subject() + " was not found."
	case KindValidation:
		msg = fmt.Sprintf("The request was rejected as invalid while %s.", rc.action())
	case KindRateLimited:
		msg = fmt.Sprintf("Rate limit exceeded while %s. Wait a moment and try again.", rc.action())
	case KindServer:
		msg = fmt.Sprintf("The Promptly service is temporarily unavailable (HTTP %d) while %s. Try again shortly.",
			e.Status, rc.action())
	case KindTimeout:
		msg = fmt.Sprintf("The request timed out while %s.", rc.action())
	case KindNetwork:
		msg = fmt.Sprintf("Could not reach the Promptly API while %s. Check your network connection "+
			"and PROMPTLY_BASE_URL.", rc.action())
	default:
		msg = fmt.Sprintf("An unexpected error occurred while %s.", rc.action())
	}

	if e.Kind == KindNotFound || e.Kind == KindAuthInvalid || e.Message == "" {
		return msg
	}
	return msg + "\nDetails: " + e.Message
}
