package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/veiligwerk/toolbox-tracker/pkg/logger"
)

const traceHeader = "X-Trace-ID"

// RequestID takes the caller-supplied trace id, or mints one, and binds it
// to the request-scoped logger. The id is echoed back on the response so
// clients can quote it when reporting problems.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "trace_id", traceID)
		w.Header().Set(traceHeader, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
