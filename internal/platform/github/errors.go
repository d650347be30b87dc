package github

import (
	"errors"
	"net/http"

	gogithub "github.com/google/go-github/v68/github"
)

// IsNotFound checks if an error indicates the repository does not exist
// (or is invisible to the token, which GitHub reports the same way).
func IsNotFound(err error) bool {
	return isStatusError(err, http.StatusNotFound)
}

// IsUnauthorized checks if an error indicates bad or missing credentials.
func IsUnauthorized(err error) bool {
	return isStatusError(err, http.StatusUnauthorized)
}

// IsForbidden checks if an error indicates the token is valid but denied.
func IsForbidden(err error) bool {
	return isStatusError(err, http.StatusForbidden)
}

// IsRateLimited checks if an error indicates API rate limiting.
func IsRateLimited(err error) bool {
	var rateErr *gogithub.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var abuseErr *gogithub.AbuseRateLimitError
	return errors.As(err, &abuseErr)
}

// isStatusError checks if the error is a GitHub API error with the given
// HTTP status.
func isStatusError(err error, status int) bool {
	if err == nil {
		return false
	}

	var apiErr *gogithub.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		return apiErr.Response.StatusCode == status
	}
	return false
}
