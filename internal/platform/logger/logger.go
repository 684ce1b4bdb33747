package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger es la interfaz que usan router, middleware y cmd.
// Los campos van como map para no acoplar a los handlers con logrus.
type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// LogConfig configura el logger (flags --log.level / --log.format, env LOG_LEVEL / LOG_FORMAT).
type LogConfig struct {
	Level  string `long:"level" env:"LEVEL" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"Logging level"`
	Format string `long:"format" env:"FORMAT" default:"text" choice:"text" choice:"json" choice:"color" description:"Logging output format"`
}

type logrusLogger struct {
	entry *logrus.Entry
}

// New crea un logger propio (no toca el logger global de logrus).
func New(cfg LogConfig, app string) (Logger, error) {
	return newWithOutput(cfg, app, os.Stdout)
}

func newWithOutput(cfg LogConfig, app string, out io.Writer) (Logger, error) {
	l := logrus.New()
	l.SetOutput(out)

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "color":
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unrecognized log format %q", cfg.Format)
	}

	level := strings.TrimSpace(cfg.Level)
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unrecognized log level: %w", err)
	}
	l.SetLevel(lvl)

	entry := logrus.NewEntry(l)
	if app = strings.TrimSpace(app); app != "" {
		entry = entry.WithField("app", app)
	}
	return &logrusLogger{entry: entry}, nil
}

// Nop descarta todo (tests).
func Nop() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

func (l *logrusLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &logrusLogger{entry: l.entry.WithFields(clean(fields))}
}

func (l *logrusLogger) Debug(msg string, fields map[string]any) {
	l.entry.WithFields(clean(fields)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields map[string]any) {
	l.entry.WithFields(clean(fields)).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields map[string]any) {
	l.entry.WithFields(clean(fields)).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields map[string]any) {
	l.entry.WithFields(clean(fields)).Error(msg)
}

// clean descarta keys vacías, igual que el logger anterior.
func clean(fields map[string]any) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		out[k] = v
	}
	return out
}
