package log

import "go.uber.org/zap"

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{
		sugarLogger: zap.NewNop().Sugar(),
		cfg:         &ZapConfig{},
	}
}
