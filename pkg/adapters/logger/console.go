// Package logger provides the ports.Logger implementations used by idemfs:
// a translated console logger, a JSON logger built on zap, and a no-op
// logger for library callers.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"
	"github.com/user/idemfs/pkg/ports"
)

const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
)

// levelColors wraps whole lines; info is left uncoloured.
var levelColors = map[ports.LogLevel]string{
	ports.LevelDebug: "\033[90m",
	ports.LevelWarn:  "\033[33m",
	ports.LevelError: "\033[31m",
}

// ConsoleLogger writes translated, human-readable lines. Debug and info
// lines go to out, warnings and errors to errOut.
type ConsoleLogger struct {
	level     ports.LogLevel
	component string
	color     bool
	out       io.Writer
	errOut    io.Writer
}

// NewConsole creates a console logger on os.Stdout and os.Stderr.
// Color output is enabled when stdout is a terminal.
func NewConsole(level ports.LogLevel) *ConsoleLogger {
	return NewConsoleWriters(level, os.Stdout, os.Stderr)
}

// NewConsoleWriters creates a console logger on the given writers. Color is
// enabled only when out is an *os.File attached to a terminal.
func NewConsoleWriters(level ports.LogLevel, out, errOut io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		level:  level,
		color:  isTerminal(out),
		out:    out,
		errOut: errOut,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (l *ConsoleLogger) Debug(msg string, args ...interface{}) { l.log(ports.LevelDebug, msg, args) }

func (l *ConsoleLogger) Info(msg string, args ...interface{}) { l.log(ports.LevelInfo, msg, args) }

func (l *ConsoleLogger) Warn(msg string, args ...interface{}) { l.log(ports.LevelWarn, msg, args) }

func (l *ConsoleLogger) Error(msg string, args ...interface{}) { l.log(ports.LevelError, msg, args) }

// WithComponent returns a logger that prefixes every line with component.
func (l *ConsoleLogger) WithComponent(component string) ports.Logger {
	c := *l
	c.component = component
	return &c
}

func (l *ConsoleLogger) log(level ports.LogLevel, msg string, args []interface{}) {
	if level < l.level {
		return
	}

	line := render(msg, args)
	if l.component != "" {
		prefix := "[" + l.component + "]"
		if l.color {
			prefix = colorCyan + prefix + colorReset
		}
		line = prefix + " " + line
	}
	if c, ok := levelColors[level]; ok && l.color {
		line = c + line + colorReset
	}

	w := l.out
	if level >= ports.LevelWarn {
		w = l.errOut
	}
	fmt.Fprintln(w, line)
}

// render translates msg once. Arguments are substituted into the
// translated format and never re-read as a format, so a '%' inside a path
// comes through as written.
func render(msg string, args []interface{}) string {
	if len(args) == 0 {
		return l10n.T(msg)
	}
	return l10n.F(msg, args...)
}
