package collector

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/uuid"
)

// ServedRequest is one request answered by the bakery app server.
type ServedRequest struct {
	ID       uuid.UUID
	Method   string
	Path     string
	Query    string
	Status   int
	Size     int64
	Start    time.Time
	Duration time.Duration
}

// RequestRecorderOptions configures a RequestRecorder
type RequestRecorderOptions struct {
	// SkipPaths is a list of path prefixes that are not recorded, e.g. health checks.
	SkipPaths []string
}

// RequestRecorder keeps the most recent requests served through its middleware.
type RequestRecorder struct {
	buffer  *RingBuffer[ServedRequest]
	options RequestRecorderOptions
}

// NewRequestRecorder creates a recorder retaining capacity requests.
func NewRequestRecorder(capacity uint64, options RequestRecorderOptions) *RequestRecorder {
	return &RequestRecorder{
		buffer:  NewRingBuffer[ServedRequest](capacity),
		options: options,
	}
}

// Last returns up to n of the most recent requests, oldest first.
func (c *RequestRecorder) Last(n uint64) []ServedRequest {
	return c.buffer.Last(n)
}

// Reset forgets all recorded requests.
func (c *RequestRecorder) Reset() {
	c.buffer.Reset()
}

// Middleware returns an http.Handler middleware that records method, path,
// status and duration of every request.
func (c *RequestRecorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, prefix := range c.options.SkipPaths {
			if prefix != "" && strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w}

		next.ServeHTTP(srw, r)

		if srw.statusCode == 0 {
			srw.statusCode = http.StatusOK
		}
		c.buffer.Add(ServedRequest{
			ID:       uuid.Must(uuid.NewV7()),
			Method:   r.Method,
			Path:     r.URL.Path,
			Query:    r.URL.RawQuery,
			Status:   srw.statusCode,
			Size:     srw.size,
			Start:    start,
			Duration: time.Since(start),
		})
	})
}

// statusResponseWriter is a wrapper for http.ResponseWriter that captures the
// status code and the number of body bytes written
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	size        int64
	wroteHeader bool
}

// WriteHeader implements http.ResponseWriter
func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implements http.ResponseWriter
func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += int64(n)
	return n, err
}

// Flush implements http.Flusher if the original response writer implements it
func (w *statusResponseWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Unwrap lets http.ResponseController reach the original writer.
func (w *statusResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
