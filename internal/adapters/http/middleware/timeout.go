package middleware

import (
	"net/http"
	"time"
)

// timeoutBody is the plain-text body http.TimeoutHandler writes when the
// deadline fires. Handlers never stream responses in this service, so the
// stdlib buffered implementation is sufficient.
const timeoutBody = "request timed out"

// Timeout returns middleware that enforces a request deadline via
// http.TimeoutHandler. If the handler does not finish within the given
// duration, a 503 is written and the handler's context is canceled so
// downstream I/O stops.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, timeoutBody)
	}
}
