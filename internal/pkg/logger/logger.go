package logger

import (
	"fmt"

	"github.com/geocoding-gateway/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New создает логгер сервиса. Неизвестный уровень - info. Формат console
// пишет цветные уровни, json - ISO8601 время в поле ts. Поле service
// добавляется в каждую запись.
func New(cfg config.LogConfig, service string) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    map[string]interface{}{"service": service},
	}

	switch cfg.Format {
	case "console":
		zapCfg.Development = true
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json", "":
		zapCfg.Encoding = "json"
		zapCfg.EncoderConfig = zap.NewProductionEncoderConfig()
		zapCfg.EncoderConfig.TimeKey = "ts"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapCfg.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return zapCfg.Build()
}
