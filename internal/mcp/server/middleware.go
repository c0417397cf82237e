package mcpserver

import (
	"net/http"
	"time"

	"github.com/dotquad/ipcalc-service/internal/logger"
)

const maxBodyBytes = 1 << 20

// requestLogger mirrors what the request dispatcher would log for each RPC:
// start, duration and response status.
func requestLogger(appLogger logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		appLogger.Debug("request %s %s finished: status %d, took %s",
			r.Method, r.URL.Path, recorder.status, time.Since(started))
	})
}

func bodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}
