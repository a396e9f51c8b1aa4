package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/khiladisngh/Windows-Font-Changer/global"
)

// Str2ZapLevel maps a conf level string to a zap level.
func Str2ZapLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	err := l.UnmarshalText([]byte(level))
	return l, err
}

func base() *zap.Logger {
	if global.Logger == nil {
		return zap.NewNop()
	}
	return global.Logger.Desugar().WithOptions(zap.AddCallerSkip(1))
}

func Debug(msg string, fields ...zap.Field) {
	base().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	base().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	base().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	base().Error(msg, fields...)
}
