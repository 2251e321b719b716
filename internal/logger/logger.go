package logger

import (
	"io"
	"log"
)

type Logger interface {
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger writing to w with the given prefix.
func New(w io.Writer, prefix string) Logger {
	return &stdLogger{l: log.New(w, prefix, log.LstdFlags)}
}

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Warnf(format string, v ...any)  { s.l.Printf("[WARN] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }
