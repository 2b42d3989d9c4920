package logging

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log levels
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

type Logger struct {
	sugar       *zap.SugaredLogger
	writer      *lumberjack.Logger
	logRequests bool
}

func NewLogger(config *Config) (*Logger, error) {
	if err := config.Validate(); err != nil {
		return nil, WrapError(err, ErrInvalidConfig.Error())
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(config.Level))); err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	var cores []zapcore.Core
	var writer *lumberjack.Logger

	if config.File != "" {
		logFile, err := expandHome(config.File)
		if err != nil {
			return nil, err
		}

		// Create log directory if it doesn't exist
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    config.MaxSize, // MB
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge, // days
			Compress:   true,
		}

		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(writer), level))
	}

	if config.Console {
		consoleConfig := zap.NewDevelopmentEncoderConfig()
		consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleConfig), zapcore.Lock(os.Stdout), level))
	}

	return &Logger{
		sugar:  zap.New(zapcore.NewTee(cores...)).Sugar(),
		writer: writer,
	}, nil
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, path[2:]), nil
}

func (l *Logger) Close() error {
	_ = l.sugar.Sync()
	if l.writer == nil {
		return nil
	}
	return l.writer.Close()
}

// SetLogRequests toggles the per-request HTTP log lines.
func (l *Logger) SetLogRequests(enabled bool) {
	l.logRequests = enabled
}

// Zap exposes the underlying structured logger.
func (l *Logger) Zap() *zap.Logger {
	return l.sugar.Desugar()
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Error handling utilities
type ErrorWithContext struct {
	Err     error
	Context string
}

func (e *ErrorWithContext) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *ErrorWithContext) Unwrap() error {
	return e.Err
}

func WrapError(err error, context string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithContext{
		Err:     err,
		Context: context,
	}
}

// Common errors
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrService       = errors.New("service error")
)

// LogHTTPRequest records one access log line. It is a no-op unless request
// logging is enabled.
func (l *Logger) LogHTTPRequest(method, path, clientIP, requestID string, status, bytes int, latency string) {
	if !l.logRequests {
		return
	}

	l.sugar.Infow("http request",
		"method", method,
		"path", path,
		"status", status,
		"client_ip", clientIP,
		"bytes", bytes,
		"latency", latency,
		"request_id", requestID,
	)
}

// LogHTTPError logs an HTTP error. Errors are always logged; only the
// per-request access lines are gated by LOG_REQUESTS.
func (l *Logger) LogHTTPError(method, path, clientIP string, status int, message string, err error) {
	fields := []interface{}{
		"method", method,
		"path", path,
		"status", status,
		"client_ip", clientIP,
	}
	if err != nil {
		fields = append(fields, "error", err)
	}

	if status >= http.StatusInternalServerError {
		l.sugar.Errorw(message, fields...)
		return
	}
	l.sugar.Warnw(message, fields...)
}
