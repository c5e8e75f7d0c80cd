package rofi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner abstracts execution of the external tool so argument building
// and result decoding can be tested without spawning a process.
type Runner interface {
	// Run executes the tool synchronously with stdin as its standard
	// input and returns captured stdout and the exit code. A non-zero
	// exit code is not an error; err is reserved for failures to run
	// the tool at all, such as a missing executable.
	Run(ctx context.Context, name string, args []string, stdin string) (stdout string, exitCode int, err error)

	// Start launches the tool detached and returns a handle for it.
	Start(name string, args []string) (Process, error)
}

// Process is a handle to a started background process.
type Process interface {
	Signal(sig os.Signal) error
	Wait() error
	Kill() error
}

// execRunner is the production Runner backed by os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args []string, stdin string) (string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), exitErr.ExitCode(), nil
		}
		return "", 0, fmt.Errorf("failed to run %s: %w", name, err)
	}
	return stdout.String(), 0, nil
}

func (execRunner) Start(name string, args []string) (Process, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", name, err)
	}
	return &execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Signal(sig os.Signal) error { return p.cmd.Process.Signal(sig) }

func (p *execProcess) Wait() error { return p.cmd.Wait() }

func (p *execProcess) Kill() error { return p.cmd.Process.Kill() }
