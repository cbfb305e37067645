package handlers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// dateLayout is the query parameter date format
const dateLayout = "2006-01-02"

// getUserEmailFromContext extracts the authenticated user's email from context.
// Handlers stamp it into created_by fields on writes.
func getUserEmailFromContext(c echo.Context) (string, error) {
	emailValue := c.Get("user_email")
	if emailValue == nil {
		return "", ErrUnauthorized
	}

	email, ok := emailValue.(string)
	if !ok || email == "" {
		return "", ErrUnauthorized
	}

	return email, nil
}

// parseIDParam parses a UUID path parameter
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// getIntParam reads an integer query parameter, falling back to a default
func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getDateParam reads an optional YYYY-MM-DD query parameter.
// Returns nil when absent and an error when present but malformed.
func getDateParam(c echo.Context, name string) (*time.Time, error) {
	param := c.QueryParam(name)
	if param == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, param)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return &t, nil
}

// getBoolParam reads an optional boolean query parameter
func getBoolParam(c echo.Context, name string) *bool {
	switch c.QueryParam(name) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	default:
		return nil
	}
}
