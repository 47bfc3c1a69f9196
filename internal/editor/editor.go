package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when no editor command can be found
var ErrNoEditor = errors.New("no editor found: set $VISUAL, $EDITOR or editor.command")

// fallbacks are tried in order when nothing is configured
var fallbacks = []string{"nano", "vim", "vi"}

// ttyPath is the controlling terminal; swapped in tests
var ttyPath = "/dev/tty"

// Editor opens text in an external editor and returns the saved result
type Editor struct {
	// Command overrides $VISUAL and $EDITOR; may include arguments ("code --wait")
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// UseTTY runs the editor on the controlling terminal when one can be
	// opened, replacing Stdin and Stdout for that run
	UseTTY bool
}

// New returns an Editor that never writes to stdout, which carries the
// finished message. Screen output goes to the terminal, or stderr without one.
func New(command string) *Editor {
	return &Editor{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stderr,
		Stderr:  os.Stderr,
		UseTTY:  true,
	}
}

// ResolveCommand picks the editor argv: override, $VISUAL, $EDITOR, then the
// first fallback present in PATH
func ResolveCommand(override string) ([]string, error) {
	for _, candidate := range []string{override, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields, nil
		}
	}

	for _, name := range fallbacks {
		if _, err := exec.LookPath(name); err == nil {
			return []string{name}, nil
		}
	}
	return nil, ErrNoEditor
}

// Edit writes template to a temp file, blocks until the editor exits and
// returns the file content unmodified
func (e *Editor) Edit(ctx context.Context, template string) (string, error) {
	argv, err := ResolveCommand(e.Command)
	if err != nil {
		return "", err
	}

	tmpFile, err := os.CreateTemp("", "attcm-long-desc-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(template); err != nil {
		_ = tmpFile.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	args := append(argv[1:len(argv):len(argv)], tmpPath)
	cmd := exec.CommandContext(ctx, argv[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if e.UseTTY {
		if tty, err := os.OpenFile(ttyPath, os.O_RDWR, 0); err == nil {
			defer tty.Close()
			cmd.Stdin = tty
			cmd.Stdout = tty
		}
	}

	if err := cmd.Run(); err != nil {
		return "", &Error{Command: strings.Join(argv, " "), Err: err}
	}

	content, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return string(content), nil
}

// Error reports a failed editor run
type Error struct {
	Command string
	Err     error
}

func (e *Error) Error() string {
	return "editor " + e.Command + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
