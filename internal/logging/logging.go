package logging

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"k8s.io/klog/v2"
)

// New builds a zap-backed logr.Logger and installs it as the klog sink so
// client-go output ends up in the same stream.
func New(level, format string) (logr.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("parse log level: %w", err)
	}

	var zc zap.Config
	if format == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	zl, err := zc.Build()
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("build logger: %w", err)
	}

	logger := zapr.NewLogger(zl)
	klog.SetLogger(logger.WithName("client-go"))

	return logger, func() { _ = zl.Sync() }, nil
}
