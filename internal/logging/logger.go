// Package logging provides categorized zap loggers for the engine. Each
// subsystem logs through its own named logger so output can be filtered per
// category.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a logging subsystem.
type Category string

const (
	CategoryAngles     Category = "angles"     // Campaign angle tracking
	CategoryConcepts   Category = "concepts"   // Ad concept generation
	CategoryCoherence  Category = "coherence"  // Story coherence validation
	CategoryGeneration Category = "generation" // Fallback tier chain
	CategoryProvider   Category = "provider"   // External LLM calls
	CategoryStore      Category = "store"      // SQLite persistence
	CategoryQuota      Category = "quota"      // Usage quota
)

var (
	mu   sync.RWMutex
	root = zap.NewNop()
)

// Init installs the process-wide root logger. Call once at startup; before
// Init, all categories log to a no-op logger.
func Init(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	SetRoot(logger)
	return logger, nil
}

// SetRoot replaces the root logger. Tests use this to capture output.
func SetRoot(logger *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	root = logger
}

// Get returns the named logger for a category.
func Get(c Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.Named(string(c))
}

// Sync flushes buffered log entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}
