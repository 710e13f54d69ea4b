// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-pet-storefront/internal/logger"
)

// responseWriter records status and size for the access log.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.wroteHeader {
		return
	}
	rw.status = statusCode
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

// withLogging writes one access log entry per request. Query strings are
// left out: they carry the Google token.
func (r *Receiver) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		log := logger.FromRequest(req)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, req)

		log.Info().
			Str("path", req.URL.Path).
			Str("method", req.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
