package logging

import (
	"io"
	"maps"
	"os"
	"sync"
	"time"

	json "github.com/json-iterator/go"
)

type Logger interface {
	Info(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// JSONLogger writes one JSON object per line.
type JSONLogger struct {
	mu  sync.Mutex
	out io.Writer
}

func NewJSONLogger(out io.Writer) *JSONLogger {
	if out == nil {
		out = os.Stdout
	}
	return &JSONLogger{out: out}
}

func (l *JSONLogger) log(level, msg string, fields map[string]any) {
	entry := map[string]any{
		"level": level,
		"msg":   msg,
		"time":  time.Now().UTC().Format(time.RFC3339),
	}

	maps.Copy(entry, fields)

	b, err := json.Marshal(entry)
	if err != nil {
		b, _ = json.Marshal(map[string]any{"level": level, "msg": msg, "log_error": err.Error()})
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Write(append(b, '\n'))
}

func (l *JSONLogger) Info(msg string, fields map[string]any) {
	l.log("INFO", msg, fields)
}

func (l *JSONLogger) Error(msg string, fields map[string]any) {
	l.log("ERROR", msg, fields)
}

type noop struct{}

func NewNoop() Logger { return noop{} }

func (noop) Info(string, map[string]any)  {}
func (noop) Error(string, map[string]any) {}
