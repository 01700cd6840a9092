package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*DebugLogger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "debug.log")
	l, err := NewDebugLogger(path)
	if err != nil {
		t.Fatalf("NewDebugLogger: %v", err)
	}
	return l, path
}

func readLog(t *testing.T, l *DebugLogger, path string) string {
	t.Helper()
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func TestDebugLoggerLog(t *testing.T) {
	l, path := newTestLogger(t)
	l.Log("eip", "session 0x%08X registered", 42)

	content := readLog(t, l, path)
	if !strings.Contains(content, "[eip] session 0x0000002A registered") {
		t.Errorf("log missing message:\n%s", content)
	}
	if !strings.Contains(content, "Debug logging started") {
		t.Error("log missing header")
	}
	if !strings.Contains(content, "Debug logging ended") {
		t.Error("log missing footer")
	}
}

func TestDebugLoggerFilter(t *testing.T) {
	t.Run("SingleProtocol", func(t *testing.T) {
		l, path := newTestLogger(t)
		l.SetFilter("cip")
		l.Log("cip", "kept")
		l.Log("server", "dropped")

		content := readLog(t, l, path)
		if !strings.Contains(content, "kept") {
			t.Error("filtered protocol missing")
		}
		if strings.Contains(content, "dropped") {
			t.Error("excluded protocol present")
		}
	})

	// Filtering on a layer pulls in the protocols beneath it.
	t.Run("RelatedProtocols", func(t *testing.T) {
		l, path := newTestLogger(t)
		l.SetFilter("server")
		l.Log("eip", "eip message")
		l.Log("session", "session message")
		l.Log("attr", "attr message")

		content := readLog(t, l, path)
		if !strings.Contains(content, "eip message") {
			t.Error("eip not pulled in by server filter")
		}
		if !strings.Contains(content, "session message") {
			t.Error("session not pulled in by server filter")
		}
		if strings.Contains(content, "attr message") {
			t.Error("attr wrongly pulled in by server filter")
		}
	})

	t.Run("EmptyLogsAll", func(t *testing.T) {
		l, path := newTestLogger(t)
		l.SetFilter("")
		l.Log("eip", "one")
		l.Log("attr", "two")

		content := readLog(t, l, path)
		if !strings.Contains(content, "one") || !strings.Contains(content, "two") {
			t.Error("empty filter dropped messages")
		}
	})
}

func TestDebugLoggerHexDump(t *testing.T) {
	l, path := newTestLogger(t)
	l.LogTX("eip", []byte{0x65, 0x00, 0x04, 0x00})

	content := readLog(t, l, path)
	if !strings.Contains(content, "TX (4 bytes):") {
		t.Errorf("missing TX line:\n%s", content)
	}
	if !strings.Contains(content, "0000: 65 00 04 00") {
		t.Errorf("missing hex dump:\n%s", content)
	}
}

func TestHexDump(t *testing.T) {
	if got := hexDump(nil); got != "    (empty)" {
		t.Errorf("hexDump(nil) = %q", got)
	}

	got := hexDump([]byte("AB"))
	if !strings.Contains(got, "41 42") {
		t.Errorf("hexDump missing hex bytes: %q", got)
	}
	if !strings.Contains(got, "AB") {
		t.Errorf("hexDump missing ASCII column: %q", got)
	}
}

func TestDebugLoggerNil(t *testing.T) {
	var l *DebugLogger
	// All entry points must tolerate a nil logger.
	l.SetFilter("eip")
	l.Log("eip", "message")
	l.LogTX("eip", nil)
	l.LogRX("eip", nil)
	if err := l.Close(); err != nil {
		t.Errorf("Close on nil = %v", err)
	}
}

func TestEventLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	l, err := NewEventLogger(path)
	if err != nil {
		t.Fatalf("NewEventLogger: %v", err)
	}

	l.Event("10.0.0.1:49152", "session 0x%08X registered", 1)
	l.Event("10.0.0.1:49152", "disconnected")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// Writes after close are dropped, not errors.
	l.Event("10.0.0.1:49152", "late")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "10.0.0.1:49152 session 0x00000001 registered") {
		t.Errorf("missing event line:\n%s", content)
	}
	if !strings.Contains(content, "disconnected") {
		t.Error("missing second event")
	}
	if strings.Contains(content, "late") {
		t.Error("write after Close reached the file")
	}
}
