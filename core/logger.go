package core

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type customFormatter struct {
	logrus.TextFormatter
}

func (f *customFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	caller := ""
	if entry.HasCaller() {
		caller = fmt.Sprintf(" %s:%d", entry.Caller.File, entry.Caller.Line)
	}
	return []byte(fmt.Sprintf("[%s][%s]%s \t%s\n", entry.Time.Format(f.TimestampFormat), strings.ToUpper(entry.Level.String()), caller, entry.Message)), nil
}

// InitLogger routes logs to stderr, keeping stdout for progress lines.
// A non-empty logPath additionally appends logs to that file.
func InitLogger(isVerbose, isDebug bool, logPath string) error {
	logrus.SetFormatter(&customFormatter{logrus.TextFormatter{
		FullTimestamp:          true,
		TimestampFormat:        "2006-01-02 15:04:05",
		DisableLevelTruncation: true,
	}})

	logrus.SetLevel(logrus.InfoLevel)
	if isVerbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if isDebug {
		logrus.SetLevel(logrus.TraceLevel)
		logrus.SetReportCaller(true)
	}

	var out io.Writer = os.Stderr
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("create logs file %s: %w", logPath, err)
		}
		out = io.MultiWriter(f, os.Stderr)
	}
	logrus.SetOutput(out)
	return nil
}
