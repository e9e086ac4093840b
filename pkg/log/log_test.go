package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLevelMapping(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zapcore.Level
	}{
		{"debug", LevelDebug, zapcore.DebugLevel},
		{"warn", LevelWarn, zapcore.WarnLevel},
		{"unknown falls back to info", "verbose", zapcore.InfoLevel},
		{"empty falls back to info", "", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &zapLogger{cfg: &ZapConfig{Level: tt.level}}
			assert.Equal(t, tt.want, l.level())
		})
	}
}

func TestWithAttachesChildLogger(t *testing.T) {
	l := Init(ZapConfig{Level: LevelDebug, Mode: ModeDevelopment, Encoding: EncodingJSON})
	ctx := l.With(context.Background(), "conn_id", "c-1")

	zl := l.(*zapLogger)
	assert.NotSame(t, zl.sugarLogger, zl.ctx(ctx))
	assert.Same(t, zl.sugarLogger, zl.ctx(context.Background()))
	assert.NotPanics(t, func() { l.Infof(ctx, "hello %s", "world") })
}
