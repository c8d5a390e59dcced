package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/a2sh3r/banshi-admin/internal/logger"
	"go.uber.org/zap"
)

type gzipResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w gzipResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

// WithGzip decompresses gzip request bodies and compresses responses for clients that accept gzip.
func WithGzip() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Encoding") == "gzip" {
				gz, err := gzip.NewReader(r.Body)
				if err != nil {
					writeError(w, "invalid gzip body", http.StatusBadRequest)
					return
				}

				defer func() {
					if err := gz.Close(); err != nil {
						logger.Log.Error("failed to close gzip request body", zap.Error(err))
					}
				}()

				r.Body = io.NopCloser(gz)
				r.Header.Del("Content-Encoding")
			}

			w.Header().Add("Vary", "Accept-Encoding")
			if !acceptsGzip(r) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Content-Encoding", "gzip")
			w.Header().Del("Content-Length")
			gz := gzip.NewWriter(w)

			defer func() {
				if err := gz.Close(); err != nil {
					logger.Log.Error("failed to close gzip response writer", zap.Error(err))
				}
			}()

			next.ServeHTTP(gzipResponseWriter{Writer: gz, ResponseWriter: w}, r)
		})
	}
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}
