package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// log outputs
const (
	OUTPUT_STDERR   = "stderr"
	OUTPUT_DISABLED = "none"
)

////////////////////////////////////////////////////////////////////////////////

// InitLogger initializes the application logger with the specified configuration
func InitLogger(dbg bool, logFile io.Writer) {
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	if dbg {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if logFile != nil {
		log.AddHook(lfshook.NewHook(logFile, nil))
	}
}

////////////////////////////////////////////////////////////////////////////////

// NewLogger builds a dedicated logger for a unisat client. output is
// OUTPUT_STDERR, OUTPUT_DISABLED (or empty) or a file path that is appended to.
func NewLogger(output string, level log.Level) *log.Logger {
	logger := log.New()
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		DisableQuote:  true,
	})

	switch strings.TrimSpace(output) {
	case OUTPUT_STDERR:
		logger.SetOutput(os.Stderr)
	case "", OUTPUT_DISABLED:
		logger.SetOutput(io.Discard)
	default:
		logger.SetOutput(io.Discard)
		logger.AddHook(lfshook.NewHook(output, &log.TextFormatter{
			FullTimestamp: true,
			DisableQuote:  true,
			DisableColors: true,
		}))
	}
	return logger
}

// ParseLevel accepts logrus level names; empty means info.
func ParseLevel(name string) (log.Level, error) {
	if strings.TrimSpace(name) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
