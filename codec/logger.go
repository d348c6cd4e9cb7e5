package codec

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the codec package's logger. It is a no-op logger unless
// SetLogger was called.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger configures the codec package's logger. A nil logger restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}
