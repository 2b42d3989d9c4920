package logging

import (
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger builds the global logger from config. Calling it again replaces
// the previous instance after closing it.
func InitLogger(config *Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		_ = instance.Close()
	}
	instance = logger
	return nil
}

// SetGlobalLogger installs an already built logger, mostly for tests.
func SetGlobalLogger(logger *Logger) {
	mu.Lock()
	defer mu.Unlock()
	instance = logger
}

// GetGlobalLogger returns the global logger, or a no-op logger when
// InitLogger has not been called.
func GetGlobalLogger() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		return nopLogger
	}
	return instance
}

var nopLogger = NewNopLogger()
