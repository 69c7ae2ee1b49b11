// Package logging configures the shared structured logger.
package logging

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Init builds a JSON-formatted logger on stderr. Verbose lowers the level
// to debug; otherwise LOG_LEVEL is honored, defaulting to warn so normal
// command output stays clean.
func Init(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	switch {
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	case os.Getenv("LOG_LEVEL") != "":
		if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
			log.SetLevel(lvl)
		}
	default:
		log.SetLevel(logrus.WarnLevel)
	}

	return log
}
