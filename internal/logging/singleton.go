package logging

import (
	"sync"
)

var (
	instance *Logger
	mu       sync.Mutex
)

// InitLogger initializes the shared logger instance.
// It must be called once at startup, before any GetLogger() call.
func InitLogger(config *Config) error {
	mu.Lock()
	defer mu.Unlock()

	if err := config.Validate(); err != nil {
		return err
	}

	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	if instance != nil {
		instance.Close()
	}
	instance = logger
	return nil
}

// GetLogger returns the shared logger instance.
// It panics if InitLogger has not been called.
func GetLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		panic("logger not initialized - call logging.InitLogger() first")
	}
	return instance
}
