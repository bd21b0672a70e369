package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readTemp(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(path) })
	return string(data)
}

func TestCmd_FallsBackToVi(t *testing.T) {
	t.Setenv("EDITOR", "")

	cmd, path, err := NewEnvEditor().Cmd("", "")
	if err != nil {
		t.Fatalf("cmd: %v", err)
	}
	readTemp(t, path)
	if cmd.Args[0] != "vi" || cmd.Args[len(cmd.Args)-1] != path {
		t.Fatalf("unexpected args: %v", cmd.Args)
	}
}

func TestCmd_ReplyingToLineInsideHeader(t *testing.T) {
	t.Setenv("EDITOR", "nano")

	_, path, err := NewEnvEditor().Cmd("current draft", "  @alice ")
	if err != nil {
		t.Fatalf("cmd: %v", err)
	}
	text := readTemp(t, path)
	end := strings.Index(text, "-->")
	if i := strings.Index(text, "Replying to @alice\n"); i == -1 || i > end {
		t.Fatalf("expected context line inside the comment: %q", text)
	}
	if !strings.HasSuffix(text, "\n\ncurrent draft") {
		t.Fatalf("expected draft after the header: %q", text)
	}
}

func TestCmd_NoReplyingToLineWhenBlank(t *testing.T) {
	t.Setenv("EDITOR", "nano")

	_, path, err := NewEnvEditor().Cmd("", "   ")
	if err != nil {
		t.Fatalf("cmd: %v", err)
	}
	if text := readTemp(t, path); strings.Contains(text, "Replying to") {
		t.Fatalf("unexpected context line: %q", text)
	}
}

func TestCmd_RoundTripKeepsDraft(t *testing.T) {
	t.Setenv("EDITOR", "nano")
	e := NewEnvEditor()
	draft := "Thanks!\nSee the link in bio."

	_, path, err := e.Cmd(draft, "@bob")
	if err != nil {
		t.Fatalf("cmd: %v", err)
	}
	got, err := e.ReadContent(path)
	if err != nil {
		t.Fatalf("read content: %v", err)
	}
	if got != draft {
		t.Fatalf("expected %q, got %q", draft, got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected temp file removed")
	}
}

func TestReadContent_KeepsArrowsInReplyBody(t *testing.T) {
	e := NewEnvEditor()
	path := filepath.Join(t.TempDir(), "a.md")
	body := "Swipe --> for the price list"
	if err := os.WriteFile(path, []byte(instructionComment+body+"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := e.ReadContent(path)
	if err != nil {
		t.Fatalf("read content: %v", err)
	}
	if got != body {
		t.Fatalf("expected %q, got %q", body, got)
	}
}

func TestReadContent_HeaderDeletedByOperator(t *testing.T) {
	e := NewEnvEditor()
	path := filepath.Join(t.TempDir(), "b.md")
	body := "Link --> bio"
	if err := os.WriteFile(path, []byte("\n"+body+"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := e.ReadContent(path)
	if err != nil {
		t.Fatalf("read content: %v", err)
	}
	if got != body {
		t.Fatalf("expected %q, got %q", body, got)
	}
}

func TestReadContent_MissingFile(t *testing.T) {
	_, err := NewEnvEditor().ReadContent(filepath.Join(t.TempDir(), "gone.md"))
	if err == nil || !strings.Contains(err.Error(), "reading temp file") {
		t.Fatalf("expected read error, got %v", err)
	}
}
