package logger

import (
	"bytes"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Writer turns a byte stream, such as a script's stdout, into log entries:
// one entry per line at a fixed level.
type Writer struct {
	mu    sync.Mutex
	log   *zap.Logger
	level zapcore.Level
	buf   bytes.Buffer
}

// NewWriter returns a Writer that logs each complete line to log at level.
func NewWriter(log *zap.Logger, level zapcore.Level) *Writer {
	return &Writer{log: log.WithOptions(zap.AddCallerSkip(2)), level: level}
}

// StdoutWriter redirects script stdout to the global logger at info level.
func StdoutWriter(script string) *Writer {
	return NewWriter(Named(script), zapcore.InfoLevel)
}

// StderrWriter redirects script stderr to the global logger at error level.
func StderrWriter(script string) *Writer {
	return NewWriter(Named(script), zapcore.ErrorLevel)
}

// Write implements io.Writer. Incomplete trailing lines are held until the
// next newline or Flush.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		i := bytes.IndexByte(w.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := w.buf.Next(i + 1)
		w.emit(line[:i])
	}
	return len(p), nil
}

// Flush logs whatever partial line is buffered.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.Bytes())
		w.buf.Reset()
	}
}

func (w *Writer) emit(line []byte) {
	line = bytes.TrimSuffix(line, []byte{'\r'})
	if len(line) == 0 {
		return
	}
	if ce := w.log.Check(w.level, string(line)); ce != nil {
		ce.Write()
	}
}
