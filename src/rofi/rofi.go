// Package rofi builds simple GUIs by shelling out to the rofi popup
// window tool. Each operation assembles an argument list, runs rofi,
// and decodes its exit code and captured stdout into a Go value or a
// cancellation result.
//
// Strings displayed in the message area may contain Pango markup. Any
// user-controlled text embedded in such a message must be passed
// through Escape first, otherwise it is interpreted as markup.
package rofi

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Exit codes reported by the external tool. Custom key ordinal N is
// reported as customKeyBase+N.
const (
	exitAccept    = 0
	exitCancel    = 10
	customKeyBase = 10
)

// Key ordinals returned by Select.
const (
	KeyAccept = 0
	KeyCancel = -1
)

// statusGrace is how long Close waits after SIGINT before killing the
// background status window.
const statusGrace = 1 * time.Second

// Config configures a Rofi instance. The zero value is usable: it runs
// the "rofi" executable from PATH with no layout defaults.
type Config struct {
	// Executable is the name or path of the rofi binary. Defaults to
	// "rofi".
	Executable string

	// Defaults are instance-level layout options. Any per-call layout
	// overrides are merged over these key-by-key.
	Defaults Options

	// ExitHotkeys are key combinations bound in every dialog that
	// request application exit. A press surfaces as ErrExitRequested.
	// Defaults to Alt+F4 and Control+q; set to an empty non-nil slice
	// to disable.
	ExitHotkeys []string

	// Logger receives structured logs. Defaults to a discard logger.
	Logger *slog.Logger

	// Runner runs the external tool. Defaults to an os/exec based
	// runner; tests substitute a fake.
	Runner Runner
}

// Rofi invokes the external rofi tool. All methods are blocking except
// Status, whose child process is tracked and terminated before the
// next dialog is shown. A Rofi instance is intended for use from a
// single goroutine.
type Rofi struct {
	executable  string
	defaults    Options
	exitHotkeys []string
	runner      Runner
	logger      *slog.Logger

	// Handle of the background status window, if one is showing.
	status Process
}

// New creates a Rofi instance from cfg.
func New(cfg Config) *Rofi {
	if cfg.Executable == "" {
		cfg.Executable = "rofi"
	}
	if cfg.ExitHotkeys == nil {
		cfg.ExitHotkeys = []string{"Alt+F4", "Control+q"}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Runner == nil {
		cfg.Runner = execRunner{}
	}

	return &Rofi{
		executable:  cfg.Executable,
		defaults:    cfg.Defaults,
		exitHotkeys: cfg.ExitHotkeys,
		runner:      cfg.Runner,
		logger:      cfg.Logger,
	}
}

// layout merges per-call layout overrides over the instance defaults.
func (r *Rofi) layout(override *Options) Options {
	return r.defaults.merge(override)
}

// Close terminates the background status window, if any. It is a
// no-op when no status window is showing. The process is sent SIGINT
// first and killed if it has not exited within one second.
func (r *Rofi) Close() {
	if r.status == nil {
		return
	}
	proc := r.status
	r.status = nil

	if err := proc.Signal(os.Interrupt); err != nil {
		r.logger.Debug("failed to interrupt status window", "error", err)
	}

	done := make(chan error, 1)
	go func() { done <- proc.Wait() }()

	select {
	case <-done:
	case <-time.After(statusGrace):
		r.logger.Warn("status window did not exit, killing it")
		if err := proc.Kill(); err != nil {
			r.logger.Debug("failed to kill status window", "error", err)
		}
		<-done
	}
}
