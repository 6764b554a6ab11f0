package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/nativekit/nativekit-go/pkg/native/logging"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// zapAdapter bridges the bindings' logging.Logger onto zap's sugared API.
type zapAdapter struct {
	s *zap.SugaredLogger
}

func bindingLogger(l *zap.Logger) logging.Logger {
	return zapAdapter{s: l.Sugar()}
}

func (z zapAdapter) Debug(_ context.Context, msg string, args ...any) { z.s.Debugw(msg, args...) }
func (z zapAdapter) Info(_ context.Context, msg string, args ...any)  { z.s.Infow(msg, args...) }
func (z zapAdapter) Warn(_ context.Context, msg string, args ...any)  { z.s.Warnw(msg, args...) }
func (z zapAdapter) Error(_ context.Context, msg string, args ...any) { z.s.Errorw(msg, args...) }

func (z zapAdapter) With(args ...any) logging.Logger {
	return zapAdapter{s: z.s.With(args...)}
}
