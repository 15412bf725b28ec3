package ptmat

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	logOnce sync.Once
	logMu   sync.RWMutex
	logger  *log.Logger
)

// newDefaultLogger creates the stderr logger used until SetLogger is called.
func newDefaultLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "ptmat",
	})
	l.SetLevel(log.WarnLevel)
	return l
}

// getLogger returns the package logger, creating it on first use.
func getLogger() *log.Logger {
	logOnce.Do(func() {
		logMu.Lock()
		if logger == nil {
			logger = newDefaultLogger()
		}
		logMu.Unlock()
	})

	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

// SetLogger replaces the package logger. A nil logger restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}

	logMu.Lock()
	logger = l
	logMu.Unlock()
}
