// Package logging builds the structured logger used across horario.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultPath is the debug log file, created in the working directory.
const DefaultPath = "horario-debug.log"

// Options configures New.
type Options struct {
	Debug bool   // When false a no-op logger is returned
	Path  string // Log file; DefaultPath when empty
}

// New returns a JSON-lines file logger when debug is enabled, or a no-op
// logger otherwise. The returned close function flushes and closes the file.
func New(opts Options) (*zap.Logger, func(), error) {
	if !opts.Debug {
		return zap.NewNop(), func() {}, nil
	}

	path := opts.Path
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating debug log: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), zap.DebugLevel)

	logger := zap.New(core).With(zap.String("log_file", path))
	logger.Debug("debug_start")

	closeFn := func() {
		logger.Debug("debug_end")
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, closeFn, nil
}
