package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	envLoggingLevel  = "FNA_LOGGING_LEVEL"
	envLoggingFormat = "FNA_LOGGING_FORMAT"

	defaultLevel = logrus.WarnLevel
)

var (
	lg   *logrus.Logger
	once sync.Once
)

// Logger returns the logger for fna
func Logger() *logrus.Logger {
	once.Do(func() {
		lg = New(os.Getenv(envLoggingLevel), os.Getenv(envLoggingFormat))
	})
	return lg
}

// New builds a logger writing to stderr. An empty or unknown level falls
// back to warning; format "json", in any case, selects the JSON formatter, anything else text.
func New(levelStr, formatStr string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = defaultLevel
	}
	l.SetLevel(level)
	l.SetFormatter(Formatter(formatStr))

	return l
}

// Formatter returns the formatter named by format.
func Formatter(format string) logrus.Formatter {
	if strings.EqualFold(format, "json") {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000 MST",
	}
}
