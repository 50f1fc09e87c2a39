package hierarchy

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Logger receives dump lines in emission order.
type Logger interface {
	Emit(line string)
}

// LoggerFunc adapts a plain function to Logger.
type LoggerFunc func(line string)

// Emit calls f(line).
func (f LoggerFunc) Emit(line string) { f(line) }

type writerLogger struct {
	w io.Writer
}

// WriterLogger returns a Logger that writes each line followed by a newline
// to w. A nil w writes to os.Stdout. Write errors are dropped.
func WriterLogger(w io.Writer) Logger {
	if w == nil {
		w = os.Stdout
	}
	return &writerLogger{w: w}
}

func (l *writerLogger) Emit(line string) {
	_, _ = fmt.Fprintln(l.w, line)
}

type zapLogger struct {
	log *zap.SugaredLogger
}

// ZapLogger returns a Logger that records each line as an Info entry.
func ZapLogger(log *zap.SugaredLogger) Logger {
	return &zapLogger{log: log}
}

func (l *zapLogger) Emit(line string) {
	l.log.Info(line)
}

// Lines collects emitted lines in memory.
type Lines struct {
	lines []string
}

// Emit appends line.
func (l *Lines) Emit(line string) {
	l.lines = append(l.lines, line)
}

// Lines returns the collected lines. The returned slice MUST NOT be mutated.
func (l *Lines) Lines() []string {
	return l.lines
}

// String joins the collected lines with newlines.
func (l *Lines) String() string {
	return strings.Join(l.lines, "\n")
}

// Reset drops all collected lines.
func (l *Lines) Reset() {
	l.lines = nil
}
