package main

import (
	"context"
	"time"
)

// MessageCmd shows a message window
type MessageCmd struct {
	Text string `arg:"" help:"Message to display (Pango markup)"`
}

// Run executes the message command
func (c *MessageCmd) Run(cli *CLI) error {
	r, err := cli.invoker()
	if err != nil {
		return err
	}
	return r.Message(context.Background(), c.Text, nil)
}

// ErrorCmd shows an error window
type ErrorCmd struct {
	Text string `arg:"" help:"Error message to display (Pango markup)"`
}

// Run executes the error command
func (c *ErrorCmd) Run(cli *CLI) error {
	r, err := cli.invoker()
	if err != nil {
		return err
	}
	return r.Error(context.Background(), c.Text, nil)
}

// StatusCmd shows a status window, keeps it up for a while, and
// closes it again. Mostly useful for trying out layout settings.
type StatusCmd struct {
	Text     string        `arg:"" help:"Status message to display (Pango markup)"`
	Duration time.Duration `default:"2s" help:"How long to keep the window up"`
}

// Run executes the status command
func (c *StatusCmd) Run(cli *CLI) error {
	r, err := cli.invoker()
	if err != nil {
		return err
	}

	if err := r.Status(c.Text, nil); err != nil {
		return err
	}
	time.Sleep(c.Duration)
	r.Close()
	return nil
}
