package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func TestLinePrompter_Text(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewLine(strings.NewReader("#cc7aaa\n  webpToJpg  \r\n\nlast"), &out)

	want := []string{"#cc7aaa", "webpToJpg", "", "last"}
	for i, w := range want {
		got, err := p.Text(context.Background(), "Question", "")
		if err != nil {
			t.Fatalf("answer %d: Text() error = %v", i, err)
		}
		if got != w {
			t.Errorf("answer %d = %q, want %q", i, got, w)
		}
	}

	if _, err := p.Text(context.Background(), "Question", ""); !errors.Is(err, ErrAborted) {
		t.Errorf("Text() at EOF error = %v, want ErrAborted", err)
	}

	if got := strings.Count(out.String(), "Question: "); got != 5 {
		t.Errorf("prompt printed %d times, want 5", got)
	}
}

func TestLinePrompter_LeavesRestUnread(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("#cc7aaa\nwebpToJpg\nmyproj\ny\nscript input\n")
	p := NewLine(in, io.Discard)
	for range 4 {
		if _, err := p.Text(context.Background(), "Question", ""); err != nil {
			t.Fatalf("Text() error = %v", err)
		}
	}

	rest, err := io.ReadAll(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(rest) != "script input\n" {
		t.Errorf("unread input = %q, want %q", rest, "script input\n")
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("reader is line prompter", func(t *testing.T) {
		t.Parallel()
		if _, ok := New(strings.NewReader(""), &bytes.Buffer{}).(*LinePrompter); !ok {
			t.Error("New(strings.Reader) should return *LinePrompter")
		}
	})

	t.Run("regular file is line prompter", func(t *testing.T) {
		t.Parallel()
		f, err := os.CreateTemp(t.TempDir(), "answers")
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		if _, ok := New(f, &bytes.Buffer{}).(*LinePrompter); !ok {
			t.Error("New(file) should return *LinePrompter")
		}
	})
}

func TestLinePrompter_Cancelled(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := NewLine(pr, &out).Text(ctx, "Enter primary color", "")
	if !errors.Is(err, ErrAborted) {
		t.Errorf("Text() error = %v, want ErrAborted", err)
	}
}
