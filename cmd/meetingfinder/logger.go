package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(env, level string) (*zap.Logger, error) {
	atomicLevel, errLevel := zap.ParseAtomicLevel(level)
	if errLevel != nil {
		return nil, errLevel
	}

	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.Level = atomicLevel

	return cfg.Build()
}
