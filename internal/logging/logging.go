// Package logging builds the process-wide zap logger every subsystem is
// handed a *zap.SugaredLogger from, rather than each package constructing
// its own. Two encoders are wired, matching the JSON-production /
// console-development split documented against go.uber.org/zap's own
// usage in Minecraft-adjacent proxy servers: JSON for unattended
// deployment, a colored console encoder for a developer's terminal.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.SugaredLogger at the given level ("debug", "info",
// "warn", "error"). development selects the console encoder; its absence
// selects the JSON encoder used for production logs. Caller info is added
// in both modes.
func New(level string, development bool) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
	}

	var encoderCfg zapcore.EncoderConfig
	var encoder zapcore.Encoder
	if development {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoderCfg = zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "ts"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stdout)), lvl)
	logger := zap.New(core, zap.AddCaller())
	return logger.Sugar(), nil
}
