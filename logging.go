package orbitview

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l >= LevelDebug && l <= LevelError {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

func ParseLevel(s string) (Level, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return LevelInfo, nil
	}
	for i, name := range levelNames {
		if name == s {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// DefaultLogger writes Debug and Info to one writer and Warn and Error to
// another, each line tagged with the logger's prefix. Loggers made with With
// share their parent's level.
type DefaultLogger struct {
	level  *atomic.Int32
	prefix string
	out    *log.Logger
	err    *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewLoggerTo(os.Stdout, os.Stderr, prefix, debug)
}

func NewLoggerTo(out, errOut io.Writer, prefix string, debug bool) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	l := &DefaultLogger{
		level:  new(atomic.Int32),
		prefix: prefix,
		out:    log.New(out, "", flags),
		err:    log.New(errOut, "", flags),
	}
	l.SetLevel(LevelInfo)
	if debug {
		l.SetLevel(LevelDebug)
	}
	return l
}

// NewLogger builds a stdout/stderr logger from the [logging] config section.
// Debug overrides Level.
func NewLogger(cfg LoggingConfig) (*DefaultLogger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	l := NewDefaultLogger(cfg.Prefix, cfg.Debug)
	if !cfg.Debug {
		l.SetLevel(level)
	}
	return l, nil
}

// With returns a logger for a component. It shares the parent's writers and
// level; its prefix is "parent/component".
func (l *DefaultLogger) With(component string) *DefaultLogger {
	prefix := component
	if l.prefix != "" {
		prefix = l.prefix + "/" + component
	}
	return &DefaultLogger{
		level:  l.level,
		prefix: prefix,
		out:    l.out,
		err:    l.err,
	}
}

func (l *DefaultLogger) Level() Level {
	return Level(l.level.Load())
}

func (l *DefaultLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *DefaultLogger) DebugEnabled() bool {
	return l.Level() <= LevelDebug
}

// SetDebug switches between Debug and Info. A Warn or Error level is left
// alone when debug is turned off.
func (l *DefaultLogger) SetDebug(enabled bool) {
	if enabled {
		l.SetLevel(LevelDebug)
		return
	}
	l.level.CompareAndSwap(int32(LevelDebug), int32(LevelInfo))
}

func (l *DefaultLogger) logf(level Level, format string, args ...any) {
	if level < l.Level() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("%s: %s", level, msg)
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}
	if level >= LevelWarn {
		l.err.Print(line)
		return
	}
	l.out.Print(line)
}

func (l *DefaultLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *DefaultLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *DefaultLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *DefaultLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

// componentLogger names log after a component when it supports that.
func componentLogger(log Logger, component string) Logger {
	if l, ok := log.(*DefaultLogger); ok {
		return l.With(component)
	}
	return log
}

// LoggingModule installs a logger built from Config as a resource.
type LoggingModule struct {
	Config LoggingConfig
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	logger, err := NewLogger(m.Config)
	if err != nil {
		panic(fmt.Sprintf("logging: %v", err))
	}
	app.addResources(logger)
}

type nopLogger struct{}

func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) DebugEnabled() bool { return false }
func (nopLogger) SetDebug(bool) {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any) {}
func (nopLogger) Warnf(string, ...any) {}
func (nopLogger) Errorf(string, ...any) {}

// Logger returns the first Logger resource, or a no-op logger. Never nil.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return NewNopLogger()
}
