package msgparser

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the logger used by msgparser. It is a no-op logger until
// SetLogger is called.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger sets the logger used by msgparser. Passing nil restores the
// silent default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}
