package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/yaoapp/emitter/config"
	kunlog "github.com/yaoapp/kun/log"
)

var (
	gray   = color.New(color.FgHiBlack)
	cyan   = color.New(color.FgCyan)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

// Logger provides tagged logging shared by the emitter, scenario runner and CLI.
//
// Dev mode  → colored stdout + kun/log (unified).
// Prod mode → kun/log at matching level.
type Logger struct {
	tag string
	out io.Writer
}

// New creates a Logger tagged with the given component name
// (e.g. "event", "scenario", "replay").
func New(tag string) *Logger {
	return &Logger{tag: tag, out: os.Stdout}
}

// WithOutput returns a copy of l that echoes development lines to w.
func (l *Logger) WithOutput(w io.Writer) *Logger {
	return &Logger{tag: l.tag, out: w}
}

// Tag returns the component tag.
func (l *Logger) Tag() string {
	return l.tag
}

func (l *Logger) prefix() string {
	return fmt.Sprintf("[emitter:%s]", l.tag)
}

func (l *Logger) echo(c *color.Color, mark, msg string) {
	if config.IsDevelopment() {
		c.Fprintf(l.out, "  %s %s %s\n", mark, l.prefix(), msg)
	}
}

func (l *Logger) Trace(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.echo(gray, "→", msg)
	kunlog.Trace("%s %s", l.prefix(), msg)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.echo(gray, "•", msg)
	kunlog.Debug("%s %s", l.prefix(), msg)
}

func (l *Logger) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.echo(cyan, "ℹ", msg)
	kunlog.Info("%s %s", l.prefix(), msg)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.echo(yellow, "⚠", msg)
	kunlog.Warn("%s %s", l.prefix(), msg)
}

func (l *Logger) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.echo(red, "✗", msg)
	kunlog.Error("%s %s", l.prefix(), msg)
}
