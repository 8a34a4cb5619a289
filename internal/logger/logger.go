package logger

import (
	"go.uber.org/zap"

	"github.com/cubny/rideshare/internal/config"
)

// New builds a production zap logger writing to stderr, stdout is reserved for reports
func New(cfg config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.Encoding = cfg.LogFormat
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if cfg.LogFormat == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	return zc.Build()
}
