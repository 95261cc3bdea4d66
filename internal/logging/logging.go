// Package logging holds the logger shared by every langlab package.
package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Subsys is the field every package logger is tagged with.
const Subsys = "subsys"

// DefaultLogger is the root logger. Packages derive their own entry with
// DefaultLogger.WithField(Subsys, "<name>").
var DefaultLogger = initDefaultLogger()

func initDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLogLevel parses one of debug, info, warn or error and applies it to
// DefaultLogger.
func SetLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		DefaultLogger.SetLevel(logrus.DebugLevel)
	case "info":
		DefaultLogger.SetLevel(logrus.InfoLevel)
	case "warn", "warning":
		DefaultLogger.SetLevel(logrus.WarnLevel)
	case "error":
		DefaultLogger.SetLevel(logrus.ErrorLevel)
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", level)
	}
	return nil
}
