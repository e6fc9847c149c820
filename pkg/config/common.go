package config

import (
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type CommonOptions struct {
	Debug     bool
	Trace     bool
	LogFormat string
}

// SetupLogging configures the global logrus logger. Trace takes precedence over Debug.
func (o CommonOptions) SetupLogging(out io.Writer) error {
	switch o.LogFormat {
	case "", LogFormatText:
		tty := isTerminal(out)
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: !tty, FullTimestamp: tty})
	case LogFormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unsupported log format %q, use %s or %s", o.LogFormat, LogFormatText, LogFormatJSON)
	}
	logrus.SetOutput(out)
	logrus.SetLevel(logrus.InfoLevel)
	if o.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if o.Trace {
		logrus.SetLevel(logrus.TraceLevel)
	}
	return nil
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func EnvGetBool(key string, defaultValue bool) bool {
	if parsed, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return parsed
	}
	return defaultValue
}
