package systems

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger sets the logger the systems report to.
func SetLogger(l *zap.Logger) {
	logger = l
}
