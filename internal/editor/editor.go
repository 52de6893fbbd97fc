// Package editor launches the user's editor on a file.
package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/donghojung/mru/internal/constants"
	"github.com/donghojung/mru/internal/logging"
)

// Opener opens a file for the user and blocks until they are done.
type Opener interface {
	Open(path string) error
}

// Editor runs an external editor command with inherited stdio.
type Editor struct {
	command string
	args    []string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// Resolve picks the editor command: the configured value, then $EDITOR,
// then $VISUAL, then vim.
func Resolve(configured string, getenv func(string) string) string {
	if configured != "" {
		return configured
	}
	if editor := getenv(constants.EnvEditor); editor != "" {
		return editor
	}
	if editor := getenv(constants.EnvVisual); editor != "" {
		return editor
	}
	return constants.DefaultEditor
}

// New creates an editor from a command line such as "code --wait".
func New(commandLine string) (*Editor, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty editor command")
	}
	return &Editor{
		command: fields[0],
		args:    fields[1:],
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}, nil
}

// Open runs the editor on path and waits for it to exit. A non-zero exit
// from the editor is logged, not returned; only failing to start it is an error.
func (e *Editor) Open(path string) error {
	args := append(append([]string{}, e.args...), path)
	cmd := exec.Command(e.command, args...) //nolint:gosec // G204: editor is chosen by the user
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	logging.Debug("opening %s in %s", path, e.command)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start editor %s: %w", e.command, err)
	}
	if err := cmd.Wait(); err != nil {
		logging.Debug("editor exited: %v", err)
	}
	return nil
}
