package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvEditor prepares an external editor command using $EDITOR (fallback: "vi").
// It does NOT run the editor itself: callers use tea.ExecProcess with the
// returned *exec.Cmd so Bubble Tea suspends raw terminal mode while it runs.
type EnvEditor struct{}

// NewEnvEditor creates an EnvEditor.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

const instructionComment = `<!--
replydesk: write your reply below.

- SAVE and EXIT to keep it as the draft (e.g., :wq in vi).
- Emptying the file clears the draft; nothing is sent until you press send.
-->

`

// Cmd prepares an *exec.Cmd for the editor and a temp file path.
// It writes the instruction comment, an optional context line (e.g. who is
// being replied to) and the current draft to the temp file.
func (e *EnvEditor) Cmd(content, replyingTo string) (*exec.Cmd, string, error) {
	editorCmd := os.Getenv("EDITOR")
	if editorCmd == "" {
		editorCmd = "vi"
	}

	tmpFile, err := os.CreateTemp("", "replydesk-*.md")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer tmpFile.Close()

	header := instructionComment
	if replyingTo = strings.TrimSpace(replyingTo); replyingTo != "" {
		header = strings.Replace(header, "-->", "Replying to "+replyingTo+"\n-->", 1)
	}

	if _, err := tmpFile.WriteString(header + content); err != nil {
		os.Remove(tmpPath)
		return nil, "", fmt.Errorf("writing to temp file: %w", err)
	}

	cmd := exec.Command(editorCmd, tmpPath)
	return cmd, tmpPath, nil
}

// ReadContent reads the temp file, trims whitespace, and removes the file.
// A leading instruction comment is stripped; the operator may delete it.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}

	content := strings.TrimSpace(string(data))
	if strings.HasPrefix(content, "<!--") {
		if idx := strings.Index(content, "-->"); idx != -1 {
			content = content[idx+3:]
		}
	}
	return strings.TrimSpace(content), nil
}
