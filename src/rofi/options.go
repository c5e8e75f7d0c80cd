package rofi

import "strconv"

// Options are layout options for a dialog. All fields are optional;
// nil means use the system default, which may come from a rofi
// configuration file. Fields set on a per-call Options value override
// the instance defaults key-by-key.
type Options struct {
	// Lines is the maximum number of rows to show before scrolling.
	Lines *int

	// FixedLines keeps a fixed number of rows visible.
	FixedLines *int

	// Width of the window. Positive values up to 100 are a percentage
	// of the screen width, larger values are pixels, and negative
	// values estimate the width needed for that many characters.
	Width *float64

	// Fullscreen uses the full height and width of the screen. Not
	// supported by message and status windows, where it is ignored.
	Fullscreen *bool

	// Location positions the window on screen, 0 through 8 in the
	// rofi convention with 0 being the centre.
	Location *int
}

// Int returns a pointer to v, for filling optional Options fields.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for filling optional Options fields.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for filling optional Options fields.
func Bool(v bool) *bool { return &v }

// merge overlays the fields set in override onto o and returns the
// result. Neither receiver nor argument is modified.
func (o Options) merge(override *Options) Options {
	if override == nil {
		return o
	}
	if override.Lines != nil {
		o.Lines = override.Lines
	}
	if override.FixedLines != nil {
		o.FixedLines = override.FixedLines
	}
	if override.Width != nil {
		o.Width = override.Width
	}
	if override.Fullscreen != nil {
		o.Fullscreen = override.Fullscreen
	}
	if override.Location != nil {
		o.Location = override.Location
	}
	return o
}

// args translates the options into command-line flags. The flag
// vocabulary must match what rofi understands, so the mapping here is
// fixed. Fullscreen is skipped when the window type does not support
// it.
func (o Options) args(allowFullscreen bool) []string {
	var args []string
	if o.Lines != nil {
		args = append(args, "-lines", strconv.Itoa(*o.Lines))
	}
	if o.FixedLines != nil {
		args = append(args, "-fixed-num-lines", strconv.Itoa(*o.FixedLines))
	}
	if o.Width != nil {
		args = append(args, "-width", strconv.FormatFloat(*o.Width, 'f', -1, 64))
	}
	if allowFullscreen && o.Fullscreen != nil && *o.Fullscreen {
		args = append(args, "-fullscreen")
	}
	if o.Location != nil {
		args = append(args, "-location", strconv.Itoa(*o.Location))
	}
	return args
}
