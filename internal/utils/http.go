package utils

import (
	"net/http"
	"strconv"
	"strings"
)

// ExtractIDFromParams retrieves the {id} path value from the request and
// removes file extensions like ".json".
func ExtractIDFromParams(r *http.Request) string {
	rawID := r.PathValue("id")
	return strings.Split(rawID, ".json")[0]
}

// QueryInt parses an integer query parameter, returning fallback when the
// parameter is absent or malformed.
func QueryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
