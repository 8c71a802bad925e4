package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. Level accepts the usual logrus names
// ("debug", "info", "warn", "error"); anything unrecognized falls back to info.
func New(level string) *logrus.Logger {
	logg := logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logg.SetLevel(lvl)
	return logg
}
