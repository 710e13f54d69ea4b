// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used by every
// layer of the storefront client.
//
// The client renders a full-screen terminal UI, so its logger writes JSON
// entries to a file instead of stdout. Request-scoped loggers are carried in
// context.Context and recovered with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLogFileName is the name of the log file created next to the client
// executable when no explicit path is configured.
const DefaultLogFileName = "storefront.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON *Logger writing to w. Every entry carries the
// "role" field, a timestamp and the caller function name under "func".
func NewLogger(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger opens (or creates) the log file at logPath and returns a
// *Logger writing to it. An empty logPath resolves to DefaultLogFileName in
// the executable's directory. Falls back to stdout when the file cannot be
// opened. level is parsed with zerolog.ParseLevel; an unknown level keeps
// Debug.
func NewClientLogger(role, logPath, level string) *Logger {
	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), DefaultLogFileName)
	}

	var out io.Writer
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		out = os.Stdout
	} else {
		out = logFile
	}

	l := NewLogger(role, out)
	if lvl, err := zerolog.ParseLevel(level); err == nil && level != "" {
		zerolog.SetGlobalLevel(lvl)
	}

	return l
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of the receiver that can be enriched with
// extra fields without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when none is attached. Never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
