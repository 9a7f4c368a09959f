// Package logger builds the zap loggers used by the CLI, server and pipeline.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Common field keys
const (
	FieldRunID    = "run_id"
	FieldResumeID = "resume_id"
	FieldJobTitle = "job_title"
	FieldCompany  = "company"
	FieldMode     = "mode"
)

// New builds a console (or JSON) logger at info (or debug) level writing to stderr
func New(json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,

			EncodeDuration: zapcore.StringDurationEncoder,
		},
	}
	return cfg.Build()
}

// OrNop returns l, or a no-op logger when l is nil
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// JobFields returns the fields identifying one resume/job pair, skipping empty values
func JobFields(resumeID, jobTitle, company string) []zap.Field {
	fields := make([]zap.Field, 0, 3)
	for _, f := range []struct{ key, value string }{
		{FieldResumeID, resumeID},
		{FieldJobTitle, jobTitle},
		{FieldCompany, company},
	} {
		if f.value != "" {
			fields = append(fields, zap.String(f.key, f.value))
		}
	}
	return fields
}
