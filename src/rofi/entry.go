package rofi

import (
	"context"
	"fmt"
	"strings"
)

// Validator checks raw entered text. It returns the parsed value and
// an error message for the user; an empty message means the text was
// accepted. Validation failures are never surfaced to the caller, they
// drive the redisplay loop in Entry.
type Validator[T any] func(text string) (T, string)

// EntryOptions are the optional parameters shared by all entry
// dialogs.
type EntryOptions struct {
	// Message is shown under the entry line. It may contain Pango
	// markup; pass user-controlled text through Escape.
	Message string

	// Layout overrides the instance layout defaults key-by-key.
	Layout *Options
}

// Entry shows an entry dialog and blocks until the user enters text
// that validate accepts, or cancels. Rejected input redisplays the
// dialog with the validator's message as a subtitle; the loop has no
// iteration bound and ends only on valid input or cancellation, which
// returns ok=false. Entry is a function rather than a method because
// methods cannot take type parameters.
func Entry[T any](ctx context.Context, r *Rofi, prompt string, validate Validator[T], opts *EntryOptions) (value T, ok bool, err error) {
	if opts == nil {
		opts = &EntryOptions{}
	}

	var zero T
	errMsg := ""
	for {
		args := []string{"-dmenu", "-p", prompt, "-format", "s"}

		message := opts.Message
		if errMsg != "" {
			message = fmt.Sprintf("<span color=\"#FF0000\" font_weight=\"bold\">%s</span>\n%s", errMsg, message)
			message = strings.TrimRight(message, "\n")
		}
		if message != "" {
			args = append(args, "-mesg", message)
		}

		args = append(args, r.layout(opts.Layout).args(true)...)

		r.Close()
		stdout, code, err := r.runner.Run(ctx, r.executable, args, "")
		if err != nil {
			return zero, false, err
		}

		switch code {
		case exitAccept:
		case exitCancel:
			r.logger.Debug("entry cancelled", "prompt", prompt)
			return zero, false, nil
		default:
			return zero, false, &ExitError{Code: code}
		}

		value, errMsg = validate(strings.TrimSuffix(stdout, "\n"))
		if errMsg == "" {
			return value, true, nil
		}
		r.logger.Debug("entry rejected", "prompt", prompt, "reason", errMsg)
	}
}
