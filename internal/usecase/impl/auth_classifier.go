package impl

import (
	"net/http"
	"strings"

	"trailforge/internal/domain/repository"
	"trailforge/internal/errors"
)

// authFailureMarkers is the fixed, finite set of response fragments that
// mark an authorization failure. Matching is case-insensitive substring.
// Isolated here so it can be swapped for typed error codes if the transport
// ever exposes them.
var authFailureMarkers = []string{
	"unauthorized",
	"not authenticated",
	"401",
}

// isAuthFailure classifies a remote error: a 401 status or any marker in
// the message means the session is no longer usable.
func isAuthFailure(err error) bool {
	if err == nil {
		return false
	}

	var remoteErr *repository.RemoteError
	if errors.As(err, &remoteErr) && remoteErr.StatusCode == http.StatusUnauthorized {
		return true
	}

	message := strings.ToLower(err.Error())
	for _, marker := range authFailureMarkers {
		if strings.Contains(message, marker) {
			return true
		}
	}

	return false
}
