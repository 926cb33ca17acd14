package utils

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const standardErrorSink = "stderr"

// NewApplicationLogger constructs a zap logger configured for human-readable console output on stderr.
func NewApplicationLogger() (*zap.Logger, error) {
	sink, _, openError := zap.Open(standardErrorSink)
	if openError != nil {
		return nil, openError
	}
	return NewWriterLogger(sink), nil
}

// NewWriterLogger builds a logger with the same encoding as NewApplicationLogger that writes to the provided writer.
func NewWriterLogger(writer io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(diagnosticEncoderConfig()),
		zapcore.AddSync(writer),
		zap.InfoLevel,
	)
	return zap.New(core)
}

// diagnosticEncoderConfig keeps only the message and structured fields.
func diagnosticEncoderConfig() zapcore.EncoderConfig {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.TimeKey = ""
	encoderConfig.LevelKey = ""
	encoderConfig.NameKey = ""
	encoderConfig.CallerKey = ""
	encoderConfig.MessageKey = "message"
	encoderConfig.StacktraceKey = ""
	return encoderConfig
}
