package logging

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// EventLogger records connection lifecycle events (accept, session
// registration, drop) to a file.  It is the device server's access log,
// separate from the protocol-level DebugLogger.
// It is safe for concurrent use from multiple goroutines.
type EventLogger struct {
	file   *os.File
	mu     sync.Mutex
	closed bool
}

// NewEventLogger creates an event logger that writes to the specified path.
// The file is created if it doesn't exist, or appended to if it does.
func NewEventLogger(path string) (*EventLogger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log file: %w", err)
	}

	return &EventLogger{
		file: file,
	}, nil
}

// Event writes one timestamped event line tagged with the remote address.
// This method is safe to call from any goroutine.
func (l *EventLogger) Event(remote, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.file, "%s %s %s\n", timestamp, remote, msg)
}

// Close closes the event log file.
func (l *EventLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true
	return l.file.Close()
}
