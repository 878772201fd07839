package log

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPrintf(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Printf("hello %s %d", "world", 42)
		if got := buf.String(); got != "hello world 42" {
			t.Errorf("Printf output = %q, want %q", got, "hello world 42")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Printf("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Printf wrote %q when quiet", buf.String())
		}
	})
}

func TestPrintln(t *testing.T) {
	t.Parallel()

	t.Run("writes line output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Println("hello", "world")
		if got := buf.String(); got != "hello world\n" {
			t.Errorf("Println output = %q, want %q", got, "hello world\n")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Println("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Println wrote %q when quiet", buf.String())
		}
	})
}

func TestCommand(t *testing.T) {
	t.Parallel()

	t.Run("verbose with dir", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		done := l.Command("/opt/newsite", "create.sh", "myproj")
		done(100 * time.Millisecond)
		got := buf.String()
		if !strings.Contains(got, "[/opt/newsite] $ create.sh myproj") {
			t.Errorf("Command output = %q, want to contain %q", got, "[/opt/newsite] $ create.sh myproj")
		}
		if !strings.Contains(got, "100ms") {
			t.Errorf("Command output = %q, want to contain duration", got)
		}
	})

	t.Run("verbose without dir", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		done := l.Command("", "echo", "hi")
		done(50 * time.Millisecond)
		got := buf.String()
		if !strings.HasPrefix(got, "$ echo hi") {
			t.Errorf("Command output = %q, want prefix %q", got, "$ echo hi")
		}
	})

	t.Run("not verbose is no-op", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		done := l.Command("/opt/newsite", "create.sh", "myproj")
		done(100 * time.Millisecond)
		if buf.Len() != 0 {
			t.Errorf("Command wrote %q when not verbose", buf.String())
		}
	})

	t.Run("quiet overrides verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, true)
		done := l.Command("/opt/newsite", "create.sh", "myproj")
		done(100 * time.Millisecond)
		if buf.Len() != 0 {
			t.Errorf("Command wrote %q when quiet", buf.String())
		}
	})
}

func TestDebug(t *testing.T) {
	t.Parallel()

	t.Run("verbose key-val format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("validated input", "folder", "myproj", "format", "webpToJpg")
		got := buf.String()
		if !strings.Contains(got, "validated input") {
			t.Errorf("Debug output = %q, want to contain message", got)
		}
		if !strings.Contains(got, "folder=myproj") {
			t.Errorf("Debug output = %q, want to contain folder=myproj", got)
		}
		if !strings.Contains(got, "format=webpToJpg") {
			t.Errorf("Debug output = %q, want to contain format=webpToJpg", got)
		}
	})

	t.Run("odd keyvals drops last", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("msg", "key1", "val1", "orphan")
		got := buf.String()
		// Only complete pairs are printed
		if !strings.Contains(got, "key1=val1") {
			t.Errorf("Debug output = %q, want to contain key1=val1", got)
		}
		if strings.Contains(got, "orphan") {
			t.Errorf("Debug output = %q, should not contain orphan key", got)
		}
	})

	t.Run("not verbose is silent", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Debug("should not appear", "key", "val")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q when not verbose", buf.String())
		}
	})

	t.Run("quiet overrides verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, true)
		l.Debug("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q when quiet", buf.String())
		}
	})
}

func TestWriter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := New(&buf, false, false)
	if l.Writer() != &buf {
		t.Error("Writer() did not return the underlying writer")
	}
}

func TestWithLogger_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		ctx := WithLogger(context.Background(), l)
		got := FromContext(ctx)
		if got != l {
			t.Error("FromContext did not return the stored logger")
		}
	})

	t.Run("fallback discard logger", func(t *testing.T) {
		t.Parallel()
		l := FromContext(context.Background())
		if l == nil {
			t.Fatal("FromContext returned nil for empty context")
		}
		// Should write to discard — verify it doesn't panic
		l.Printf("should not appear anywhere")
		l.Debug("should not appear anywhere")
		if l.Writer() != io.Discard {
			t.Error("fallback logger should write to io.Discard")
		}
	})
}

func TestRunLog(t *testing.T) {
	t.Parallel()

	t.Run("debug recorded even when not verbose", func(t *testing.T) {
		t.Parallel()
		var out, runBuf bytes.Buffer
		l := New(&out, false, false)
		l.SetRunLog(NewRunLog(&runBuf))
		l.Debug("validated color", "color", "#cc7aaa")
		if out.Len() != 0 {
			t.Errorf("Debug wrote %q to stderr when not verbose", out.String())
		}
		if got := runBuf.String(); !strings.Contains(got, "color=#cc7aaa") {
			t.Errorf("run log = %q, want to contain color=#cc7aaa", got)
		}
	})

	t.Run("event and command recorded", func(t *testing.T) {
		t.Parallel()
		var runBuf bytes.Buffer
		l := New(io.Discard, false, true)
		l.SetRunLog(NewRunLog(&runBuf))
		l.Event("cancelled")
		l.Command("/opt/newsite", "create.sh", "a")(0)
		got := runBuf.String()
		if !strings.Contains(got, "msg=cancelled") {
			t.Errorf("run log = %q, want cancelled event", got)
		}
		if !strings.Contains(got, "msg=exec") {
			t.Errorf("run log = %q, want exec record", got)
		}
	})

	t.Run("event without run log is no-op", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Event("ignored", "k", "v")
		if buf.Len() != 0 {
			t.Errorf("Event wrote %q to stderr", buf.String())
		}
	})
}

func TestOpenRunLog(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "runs.log")
	run, closer := OpenRunLog(path)
	run.Info("created", "folder", "myproj")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "folder=myproj") {
		t.Errorf("run log file = %q, want to contain folder=myproj", data)
	}
}
