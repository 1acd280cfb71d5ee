// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// pageData is the view model for error pages.
type pageData struct {
	Title   string
	Message string
	BackURL string
}

// ErrorLogger logs handler failures with consistent fields before an error
// page or status is written. Handlers hold one so log call sites stay short.
type ErrorLogger struct {
	log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// Internal logs err against the request path at error level.
func (l *ErrorLogger) Internal(r *http.Request, msg string, err error) {
	l.log.Error(msg,
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Error(err),
	)
}

// Warn logs err against the request path at warn level, for recoverable
// conditions like validation or duplicate rejections.
func (l *ErrorLogger) Warn(r *http.Request, msg string, err error) {
	l.log.Warn(msg,
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Error(err),
	)
}
