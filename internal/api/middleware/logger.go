package middleware

import (
	"log"
	"net/http"
	"time"
)

// responseMeta captures the status and body size written by a handler so
// the access log can report them.
type responseMeta struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (m *responseMeta) WriteHeader(code int) {
	m.status = code
	m.ResponseWriter.WriteHeader(code)
}

func (m *responseMeta) Write(p []byte) (int, error) {
	n, err := m.ResponseWriter.Write(p)
	m.bytes += n
	return n, err
}

// Logger writes one access-log line per request. Blob downloads can be
// large, so the byte count is part of the line.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		meta := &responseMeta{
			ResponseWriter: w,
			status:         http.StatusOK,
		}

		next.ServeHTTP(meta, r)

		log.Printf(
			"%s %s %s %d %dB %s",
			r.RemoteAddr,
			r.Method,
			r.URL.Path,
			meta.status,
			meta.bytes,
			time.Since(start),
		)
	})
}
