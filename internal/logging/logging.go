// Package logging holds the runtime's shared structured logger.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the runtime's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs a logger for the runtime to use. Call before the
// first runtime operation; the logger is not otherwise synchronized.
func SetLogger(l *zap.Logger) {
	logger = l
}
