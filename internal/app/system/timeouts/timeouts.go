// Package timeouts provides centralized timeout values for handler operations.
//
// These are used with context.WithTimeout for database work inside HTTP
// handlers. Centralized values keep the deadlines consistent and easy to
// adjust.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-row reads and simple inserts
//   - Medium: full-table listings and CSV streaming
package timeouts

import "time"

const (
	Ping   = 2 * time.Second
	Short  = 5 * time.Second
	Medium = 10 * time.Second
)
