package spotify

import (
	"errors"
	"fmt"
	"net/http"

	spot "github.com/zmb3/spotify/v2"
)

// Exported error variables for conditions callers branch on.
var (
	// ErrNoToken means the token store holds no credentials for this client.
	ErrNoToken = errors.New("no stored token, run the authorize command first")
)

// ErrorKind classifies an upstream failure. The message is still surfaced
// verbatim; the kind only helps callers and logs tell the classes apart.
type ErrorKind int

const (
	ErrUpstream ErrorKind = iota
	ErrAuth
	ErrRateLimited
	ErrNotFound
	ErrInvalidRequest
)

// APIError wraps an upstream Spotify failure with the operation that hit it.
type APIError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// wrapAPIError classifies err by the upstream HTTP status when available.
func wrapAPIError(op string, err error) error {
	if err == nil {
		return nil
	}

	kind := ErrUpstream
	var spotErr spot.Error
	if errors.As(err, &spotErr) {
		switch spotErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = ErrAuth
		case http.StatusTooManyRequests:
			kind = ErrRateLimited
		case http.StatusNotFound:
			kind = ErrNotFound
		case http.StatusBadRequest:
			kind = ErrInvalidRequest
		}
	}

	return &APIError{Op: op, Kind: kind, Err: err}
}
