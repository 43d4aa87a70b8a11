package main

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath/cpu"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a console logger on stderr at the given level.
func newLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.OutputPaths = []string{"stderr"}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log.Sugar(), nil
}

// logFeatures reports the SIMD features the magnitude kernels dispatch on.
func logFeatures(log *zap.SugaredLogger) {
	f := cpu.DetectFeatures()
	log.Debugw("cpu features",
		"arch", f.Architecture,
		"sse2", f.HasSSE2,
		"avx2", f.HasAVX2,
		"forceGeneric", f.ForceGeneric,
	)
}
