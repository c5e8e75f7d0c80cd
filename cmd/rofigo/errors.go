package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/wrenhold/rofigo/src/rofi"
)

// Exit codes. Cancelled mirrors the external tool's own convention so
// scripts can distinguish "user said no" from failures.
const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitUsage     = 2
	ExitCancelled = 10
)

// errCancelled is returned by subcommands when the user dismissed the
// dialog without answering.
var errCancelled = errors.New("cancelled")

var (
	cancelledStyle = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// handleExit maps a subcommand result to process exit behaviour.
func handleExit(err error) {
	switch {
	case err == nil:
		os.Exit(ExitSuccess)
	case errors.Is(err, errCancelled), errors.Is(err, rofi.ErrExitRequested):
		fmt.Fprintln(os.Stderr, cancelledStyle.Render("cancelled"))
		os.Exit(ExitCancelled)
	default:
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:")+" "+err.Error())
		os.Exit(ExitError)
	}
}
