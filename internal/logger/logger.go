// Package logger is the builder's log: a logrus logger writing to logs/builder.txt that also keeps
// a short in-memory history for the in-game terminal.
package logger

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// LogFilePath is the log file, relative to the working directory (project root when run via
// go run ./cmd/builder).
const LogFilePath = "logs/builder.txt"

const (
	timestampFormat = "2006-01-02 15:04:05"
	// historyLimit caps the lines kept for the terminal; the file keeps everything.
	historyLimit = 500
)

// Logger is a logrus logger plus the terminal history. Use it anywhere a logrus.FieldLogger is
// expected.
type Logger struct {
	*logrus.Logger
	history *historyHook
	file    *os.File
}

// New opens LogFilePath and returns a logger at the named level ("debug", "info", ...).
// An empty or unknown level means info.
func New(level string) *Logger {
	return NewAt(LogFilePath, level)
}

// NewAt is New with an explicit file path. If the file cannot be opened, entries still reach the
// terminal history.
func NewAt(path, level string) *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})
	l.SetLevel(ParseLevel(level))

	var out io.Writer = io.Discard
	var file *os.File
	if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			out, file = f, f
		}
	}
	l.SetOutput(out)

	h := &historyHook{limit: historyLimit}
	l.AddHook(h)
	return &Logger{Logger: l, history: h, file: file}
}

// ParseLevel maps a level name to a logrus level, falling back to info.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Log records a line typed into the terminal.
func (l *Logger) Log(line string) {
	l.WithField("source", "terminal").Info(line)
}

// Lines returns a copy of the terminal history, oldest first.
func (l *Logger) Lines() []string {
	return l.history.snapshot()
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// historyHook renders every entry that passes the level filter as one short line.
type historyHook struct {
	mu    sync.Mutex
	lines []string
	limit int
}

func (h *historyHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *historyHook) Fire(e *logrus.Entry) error {
	line := historyLine(e)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lines = append(h.lines, line)
	if h.limit > 0 && len(h.lines) > h.limit {
		h.lines = slices.Delete(h.lines, 0, len(h.lines)-h.limit)
	}
	return nil
}

func (h *historyHook) snapshot() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.lines)
}

// historyLine formats "[ts] msg" for terminal input and info, "[ts] WARN: msg k=v" otherwise.
func historyLine(e *logrus.Entry) string {
	var b strings.Builder
	b.WriteString("[" + e.Time.Format(timestampFormat) + "] ")
	if e.Level != logrus.InfoLevel {
		b.WriteString(strings.ToUpper(e.Level.String()) + ": ")
	}
	b.WriteString(e.Message)
	for _, k := range slices.Sorted(maps.Keys(e.Data)) {
		if k == "source" || k == "component" {
			continue
		}
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	return b.String()
}
