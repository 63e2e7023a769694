// Package logging builds the process-wide logrus logger from configuration.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a logger writing to stdout at the given level and format
// ("text" or "json"). Unknown levels fall back to info.
func New(level, format string) *logrus.Logger {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level, format string) *logrus.Logger {
	log := logrus.New()
	log.Out = w

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.Level = lvl

	if format == "json" {
		log.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "severity",
				logrus.FieldKeyMsg:   "message",
			},
		}
	} else {
		log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	return log
}

// GormLevel maps a logrus level onto gorm's coarser log levels.
func GormLevel(level logrus.Level) gormlogger.LogLevel {
	switch {
	case level >= logrus.DebugLevel:
		return gormlogger.Info
	case level >= logrus.WarnLevel:
		return gormlogger.Warn
	case level >= logrus.ErrorLevel:
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}
