package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// InitLogger initializes the global logger and sets its level. The
// logger is created once; later calls only adjust the level, so
// packages that grabbed it during init see the change.
func InitLogger(level logrus.Level) {
	once.Do(func() {
		logger = logrus.New()
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	})
	logger.SetLevel(level)
}

// GetLogger returns the global logger, initializing it at info level if
// InitLogger has not been called yet.
func GetLogger() *logrus.Logger {
	if logger == nil {
		InitLogger(logrus.InfoLevel)
	}
	return logger
}
