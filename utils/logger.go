package utils

import (
	"context"
	"runtime"

	"go.uber.org/zap"
)

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}

func GetLogger(ctx context.Context) *zap.Logger {
	return zap.L()
}

// SilenceLogger swaps the global logger for a no-op one. The estimation
// helpers log skipped records and failures, callers that batch over many
// noisy inputs (and tests) can turn that off.
func SilenceLogger() {
	zap.ReplaceGlobals(zap.NewNop())
}

func GetPanicInfo() string {
	buf := make([]byte, 16384)
	l := runtime.Stack(buf, false)
	return string(buf[:l])
}
