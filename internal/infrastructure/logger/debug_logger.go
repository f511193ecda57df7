package logger

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// DebugLogger is the sandbox debug sink. The file is opened on first
// write and must be closed by the owner on shutdown. A disabled logger
// is a no-op so call sites never need to check the debug flag.
type DebugLogger struct {
	mu      sync.Mutex
	enabled bool
	path    string
	file    *os.File
}

func NewDebugLogger(enabled bool, path string) *DebugLogger {
	return &DebugLogger{
		enabled: enabled,
		path:    path,
	}
}

func (l *DebugLogger) Log(msg string) {
	if !l.enabled {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		l.file = file
	}

	line := fmt.Sprintf("%s : %s\n", time.Now().Format("2006-01-02 15:04:05"), msg)
	l.file.WriteString(line)
}

func (l *DebugLogger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

func (l *DebugLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
