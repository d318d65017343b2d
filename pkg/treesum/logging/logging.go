// Package logging provides component loggers for the treesum CLI.
// Loggers write to stderr so report output on stdout stays clean.
//
// Basic usage:
//
//	logging.Init("debug")
//	logger := logging.Get("snapshot")
//	logger.Info("build started", "root", root)
package logging

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a level string into a charmbracelet/log level.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.WarnLevel, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

var (
	mu      sync.Mutex
	level   = log.WarnLevel
	loggers = make(map[string]*log.Logger)
)

// Init sets the level for all component loggers, existing and future.
// An unparseable level string leaves the previous level in place and
// returns an error.
func Init(levelStr string) error {
	lv, err := ParseLevel(levelStr)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	level = lv
	for _, l := range loggers {
		l.SetLevel(lv)
	}
	return nil
}

// Get returns the logger for a component, creating it on first use.
// Loggers are safe for concurrent use.
func Get(component string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[component]; ok {
		return l
	}
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          component,
		ReportTimestamp: false,
	})
	l.SetLevel(level)
	loggers[component] = l
	return l
}
