package telemetry

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a logrus logger writing to out at the named level
// ("debug", "info", "warn", ...).
func NewLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	})
	return logger, nil
}

// DiscardLogger returns a logger that drops everything. Useful in tests.
func DiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
