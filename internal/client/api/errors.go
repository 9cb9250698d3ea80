package api

import (
	"fmt"
	"net/http"

	"github.com/dkrastins/needmarket/internal/common"
)

// Error is a non-2xx response from the API. Detail carries the server's
// human-readable failure message when the body had one.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}

// Is lets errors.Is match the shared sentinels against the HTTP status.
func (e *Error) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case common.ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}
