package rav1e

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log rotation defaults, grounded on the same lumberjack knobs the
// example fleet's capture tools use for long-running processes.
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// newLogger builds the encoder's structured logger. With cfg.LogPath
// empty it logs to stderr; otherwise it rotates through lumberjack,
// matching the file+console split the capture tools in the example
// fleet use for long-running encodes.
func newLogger(cfg EncoderConfig) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.LogPath == "" {
		zcfg := zap.NewProductionConfig()
		zcfg.EncoderConfig = encoderCfg
		return zcfg.Build()
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.LogPath,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, zap.InfoLevel)
	return zap.New(core), nil
}
