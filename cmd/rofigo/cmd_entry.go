package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wrenhold/rofigo/src/rofi"
)

// InputCmd prompts for a piece of text
type InputCmd struct {
	Prompt         string `arg:"" help:"Prompt to display"`
	Message        string `help:"Message shown under the entry line (Pango markup)"`
	AllowBlank     bool   `help:"Accept an empty entry"`
	KeepWhitespace bool   `help:"Do not strip surrounding whitespace"`
}

// Run executes the input command
func (c *InputCmd) Run(cli *CLI) error {
	r, err := cli.invoker()
	if err != nil {
		return err
	}

	value, ok, err := r.TextEntry(context.Background(), c.Prompt, &rofi.TextEntryOptions{
		EntryOptions:   rofi.EntryOptions{Message: c.Message},
		AllowBlank:     c.AllowBlank,
		KeepWhitespace: c.KeepWhitespace,
	})
	return printEntry(value, ok, err)
}

// IntegerCmd prompts for an integer
type IntegerCmd struct {
	Prompt  string `arg:"" help:"Prompt to display"`
	Message string `help:"Message shown under the entry line (Pango markup)"`
	Min     *int64 `help:"Smallest accepted value"`
	Max     *int64 `help:"Largest accepted value"`
}

// Run executes the integer command
func (c *IntegerCmd) Run(cli *CLI) error {
	r, err := cli.invoker()
	if err != nil {
		return err
	}

	value, ok, err := r.IntegerEntry(context.Background(), c.Prompt, &rofi.IntegerEntryOptions{
		EntryOptions: rofi.EntryOptions{Message: c.Message},
		Min:          c.Min,
		Max:          c.Max,
	})
	return printEntry(value, ok, err)
}

// FloatCmd prompts for a floating point number
type FloatCmd struct {
	Prompt  string   `arg:"" help:"Prompt to display"`
	Message string   `help:"Message shown under the entry line (Pango markup)"`
	Min     *float64 `help:"Smallest accepted value"`
	Max     *float64 `help:"Largest accepted value"`
}

// Run executes the float command
func (c *FloatCmd) Run(cli *CLI) error {
	r, err := cli.invoker()
	if err != nil {
		return err
	}

	value, ok, err := r.FloatEntry(context.Background(), c.Prompt, &rofi.FloatEntryOptions{
		EntryOptions: rofi.EntryOptions{Message: c.Message},
		Min:          c.Min,
		Max:          c.Max,
	})
	return printEntry(value, ok, err)
}

// DecimalCmd prompts for a decimal number
type DecimalCmd struct {
	Prompt  string `arg:"" help:"Prompt to display"`
	Message string `help:"Message shown under the entry line (Pango markup)"`
	Min     string `help:"Smallest accepted value"`
	Max     string `help:"Largest accepted value"`
}

// Run executes the decimal command
func (c *DecimalCmd) Run(cli *CLI) error {
	r, err := cli.invoker()
	if err != nil {
		return err
	}

	opts := &rofi.DecimalEntryOptions{
		EntryOptions: rofi.EntryOptions{Message: c.Message},
	}
	if c.Min != "" {
		min, err := decimal.NewFromString(c.Min)
		if err != nil {
			return fmt.Errorf("invalid --min: %w", err)
		}
		opts.Min = &min
	}
	if c.Max != "" {
		max, err := decimal.NewFromString(c.Max)
		if err != nil {
			return fmt.Errorf("invalid --max: %w", err)
		}
		opts.Max = &max
	}

	value, ok, err := r.DecimalEntry(context.Background(), c.Prompt, opts)
	return printEntry(value, ok, err)
}

// DateCmd prompts for a date
type DateCmd struct {
	Prompt  string   `arg:"" help:"Prompt to display"`
	Message string   `help:"Message shown under the entry line (Pango markup)"`
	Format  []string `help:"Accepted Go time layouts, tried in order"`
}

// Run executes the date command
func (c *DateCmd) Run(cli *CLI) error {
	return runTimeEntry(cli, c.Prompt, c.Message, c.Format, (*rofi.Rofi).DateEntry, rofi.DefaultDateFormats)
}

// TimeCmd prompts for a time of day
type TimeCmd struct {
	Prompt  string   `arg:"" help:"Prompt to display"`
	Message string   `help:"Message shown under the entry line (Pango markup)"`
	Format  []string `help:"Accepted Go time layouts, tried in order"`
}

// Run executes the time command
func (c *TimeCmd) Run(cli *CLI) error {
	return runTimeEntry(cli, c.Prompt, c.Message, c.Format, (*rofi.Rofi).TimeEntry, rofi.DefaultTimeFormats)
}

// DatetimeCmd prompts for a combined date and time
type DatetimeCmd struct {
	Prompt  string   `arg:"" help:"Prompt to display"`
	Message string   `help:"Message shown under the entry line (Pango markup)"`
	Format  []string `help:"Accepted Go time layouts, tried in order"`
}

// Run executes the datetime command
func (c *DatetimeCmd) Run(cli *CLI) error {
	return runTimeEntry(cli, c.Prompt, c.Message, c.Format, (*rofi.Rofi).DateTimeEntry, rofi.DefaultDateTimeFormats)
}

type timeEntryFunc func(*rofi.Rofi, context.Context, string, *rofi.TimeEntryOptions) (time.Time, bool, error)

func runTimeEntry(cli *CLI, prompt, message string, formats []string, entry timeEntryFunc, defaults []string) error {
	r, err := cli.invoker()
	if err != nil {
		return err
	}

	value, ok, err := entry(r, context.Background(), prompt, &rofi.TimeEntryOptions{
		EntryOptions: rofi.EntryOptions{Message: message},
		Formats:      formats,
	})
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	layout := defaults[0]
	if len(formats) > 0 {
		layout = formats[0]
	}
	fmt.Println(value.Format(layout))
	return nil
}

// printEntry prints an accepted entry value or maps cancellation to
// the cancelled exit path.
func printEntry(value any, ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	fmt.Println(value)
	return nil
}
