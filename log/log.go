// Package log builds the loggers used by sessions, wrappers and tests.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	selog "github.com/tebeka/selenium/log"
)

// Options configures New.
type Options struct {
	// Debug enables debug-level lines, which wrappers use for queries.
	Debug bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New returns a text logger with full timestamps.
func New(opts Options) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetOutput(os.Stderr)
	if opts.Output != nil {
		l.SetOutput(opts.Output)
	}
	l.SetLevel(logrus.InfoLevel)
	if opts.Debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Step logs a test step.
func Step(l logrus.FieldLogger, msg string) {
	l.WithField("step", true).Info(msg)
}

// TB is the part of testing.TB that ForTest writes through.
type TB interface {
	Logf(format string, args ...interface{})
}

type testOutput struct{ tb TB }

func (to testOutput) Write(p []byte) (int, error) {
	to.tb.Logf("%s", p)
	return len(p), nil
}

// ForTest returns a debug logger writing through tb.Logf, so lines show up
// next to the failing test.
func ForTest(tb TB) *logrus.Logger {
	return New(Options{Debug: true, Output: testOutput{tb}})
}

// BrowserLevel maps a logrus level onto the WebDriver log level that keeps
// the same amount of browser output.
func BrowserLevel(level logrus.Level) selog.Level {
	switch {
	case level >= logrus.TraceLevel:
		return selog.All
	case level >= logrus.DebugLevel:
		return selog.Debug
	case level >= logrus.InfoLevel:
		return selog.Info
	case level >= logrus.WarnLevel:
		return selog.Warning
	default:
		return selog.Severe
	}
}

// Capabilities returns logging preferences collecting browser and driver
// logs at the level matching l.
func Capabilities(l *logrus.Logger) selog.Capabilities {
	level := BrowserLevel(l.GetLevel())
	return selog.Capabilities{
		selog.Browser: level,
		selog.Driver:  level,
	}
}
