package logger

import (
	"github.com/sirupsen/logrus"
)

// SetDebugMode switches the log level between debug and info globally
func SetDebugMode(enabled bool) {
	if enabled {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// IsDebugEnabled returns whether debug logging is enabled
func IsDebugEnabled() bool {
	return logrus.IsLevelEnabled(logrus.DebugLevel)
}

// Debug logs a message only if debug mode is enabled
func Debug(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}
