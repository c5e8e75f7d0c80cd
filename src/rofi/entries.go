package rofi

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Default layouts tried by the date and time entry dialogs, in Go
// reference-time notation. Deliberately a small fixed set rather than
// anything locale-dependent, so parsing behaves the same everywhere.
var (
	DefaultDateFormats     = []string{"2006-01-02"}
	DefaultTimeFormats     = []string{"15:04:05", "15:04"}
	DefaultDateTimeFormats = []string{"2006-01-02 15:04:05", "2006-01-02 15:04"}
)

// TextEntryOptions are the optional parameters of TextEntry. The zero
// value strips surrounding whitespace and rejects blank input.
type TextEntryOptions struct {
	EntryOptions

	// AllowBlank accepts an empty entry.
	AllowBlank bool

	// KeepWhitespace skips stripping leading and trailing whitespace.
	KeepWhitespace bool
}

// TextEntry prompts the user for a piece of text. ok is false when the
// dialog was cancelled.
func (r *Rofi) TextEntry(ctx context.Context, prompt string, opts *TextEntryOptions) (string, bool, error) {
	if opts == nil {
		opts = &TextEntryOptions{}
	}
	return Entry(ctx, r, prompt, textValidator(opts.AllowBlank, opts.KeepWhitespace), &opts.EntryOptions)
}

// IntegerEntryOptions are the optional parameters of IntegerEntry.
type IntegerEntryOptions struct {
	EntryOptions

	// Min and Max bound the accepted value inclusively. Nil means
	// unbounded. When both are set Max must be greater than Min.
	Min, Max *int64
}

// IntegerEntry prompts the user for an integer.
func (r *Rofi) IntegerEntry(ctx context.Context, prompt string, opts *IntegerEntryOptions) (int64, bool, error) {
	if opts == nil {
		opts = &IntegerEntryOptions{}
	}
	if err := checkBounds(opts.Min, opts.Max, func(a, b int64) bool { return a > b }); err != nil {
		return 0, false, err
	}
	return Entry(ctx, r, prompt, integerValidator(opts.Min, opts.Max), &opts.EntryOptions)
}

// FloatEntryOptions are the optional parameters of FloatEntry.
type FloatEntryOptions struct {
	EntryOptions

	// Min and Max bound the accepted value inclusively. Nil means
	// unbounded. When both are set Max must be greater than Min.
	Min, Max *float64
}

// FloatEntry prompts the user for a floating point number.
func (r *Rofi) FloatEntry(ctx context.Context, prompt string, opts *FloatEntryOptions) (float64, bool, error) {
	if opts == nil {
		opts = &FloatEntryOptions{}
	}
	if err := checkBounds(opts.Min, opts.Max, func(a, b float64) bool { return a > b }); err != nil {
		return 0, false, err
	}
	return Entry(ctx, r, prompt, floatValidator(opts.Min, opts.Max), &opts.EntryOptions)
}

// DecimalEntryOptions are the optional parameters of DecimalEntry.
type DecimalEntryOptions struct {
	EntryOptions

	// Min and Max bound the accepted value inclusively. Nil means
	// unbounded. When both are set Max must be greater than Min.
	Min, Max *decimal.Decimal
}

// DecimalEntry prompts the user for an arbitrary-precision decimal
// number.
func (r *Rofi) DecimalEntry(ctx context.Context, prompt string, opts *DecimalEntryOptions) (decimal.Decimal, bool, error) {
	if opts == nil {
		opts = &DecimalEntryOptions{}
	}
	if err := checkBounds(opts.Min, opts.Max, func(a, b decimal.Decimal) bool { return a.GreaterThan(b) }); err != nil {
		return decimal.Decimal{}, false, err
	}
	return Entry(ctx, r, prompt, decimalValidator(opts.Min, opts.Max), &opts.EntryOptions)
}

// TimeEntryOptions are the optional parameters of the date and time
// entry dialogs.
type TimeEntryOptions struct {
	EntryOptions

	// Formats are Go time layouts tried in order; the first one that
	// parses the whole input wins. Nil uses the dialog's defaults.
	Formats []string
}

// DateEntry prompts the user for a calendar date.
func (r *Rofi) DateEntry(ctx context.Context, prompt string, opts *TimeEntryOptions) (time.Time, bool, error) {
	return r.timeEntry(ctx, prompt, opts, DefaultDateFormats, "date")
}

// TimeEntry prompts the user for a time of day.
func (r *Rofi) TimeEntry(ctx context.Context, prompt string, opts *TimeEntryOptions) (time.Time, bool, error) {
	return r.timeEntry(ctx, prompt, opts, DefaultTimeFormats, "time")
}

// DateTimeEntry prompts the user for a combined date and time.
func (r *Rofi) DateTimeEntry(ctx context.Context, prompt string, opts *TimeEntryOptions) (time.Time, bool, error) {
	return r.timeEntry(ctx, prompt, opts, DefaultDateTimeFormats, "date and time")
}

func (r *Rofi) timeEntry(ctx context.Context, prompt string, opts *TimeEntryOptions, defaults []string, noun string) (time.Time, bool, error) {
	if opts == nil {
		opts = &TimeEntryOptions{}
	}
	formats := opts.Formats
	if len(formats) == 0 {
		formats = defaults
	}
	return Entry(ctx, r, prompt, timeValidator(formats, noun), &opts.EntryOptions)
}
