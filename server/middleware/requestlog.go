package middleware

import (
	"net/http"
	"time"

	"github.com/indieinfra/imagebin/server/util"
)

// wrappedWriter captures the status code written by downstream handlers.
type wrappedWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *wrappedWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RequestLog attaches a request-scoped logger to the context and logs the
// status code and duration of every request.
func RequestLog(logger util.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rl := util.WithRequest(logger, r)
		r = r.WithContext(util.ContextWithLogger(r.Context(), rl))

		ww := &wrappedWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(ww, r)

		rl.Infof("%d in %s", ww.statusCode, time.Since(start))
	})
}
