package rofi

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// SelectOptions are the optional parameters of Select.
type SelectOptions struct {
	// Message is shown between the prompt and the choices. It may
	// contain Pango markup; pass user-controlled text through Escape.
	Message string

	// Selected preselects a row.
	Selected *int

	// Keys are custom key bindings by ordinal (1 and up).
	Keys map[int]KeyBinding

	// Layout overrides the instance layout defaults key-by-key.
	Layout *Options
}

// Select shows a list of choices and blocks until the user picks one
// or dismisses the dialog. It returns the index of the chosen row and
// the ordinal of the key that confirmed it: KeyAccept (0) for the
// default accept key, N for custom binding N. Cancellation returns
// (KeyCancel, KeyCancel) with a nil error.
//
// A malformed or out-of-range row index from the tool indicates an
// incompatible rofi version and is returned as an error.
func (r *Rofi) Select(ctx context.Context, prompt string, choices []string, opts *SelectOptions) (index, key int, err error) {
	if opts == nil {
		opts = &SelectOptions{}
	}

	// Newlines inside a choice would split it into several rows.
	rows := make([]string, len(choices))
	for i, choice := range choices {
		rows[i] = strings.ReplaceAll(choice, "\n", " ")
	}
	input := strings.Join(rows, "\n")

	args := []string{"-dmenu", "-p", prompt, "-format", "i"}
	if opts.Selected != nil {
		args = append(args, "-selected-row", strconv.Itoa(*opts.Selected))
	}

	keyArgs, display, exitOrdinals, err := bindingArgs(opts.Keys, r.exitHotkeys)
	if err != nil {
		return 0, 0, err
	}
	args = append(args, keyArgs...)

	message := opts.Message
	if len(display) > 0 {
		message += "\n" + strings.Join(display, "  ")
	}
	if message = strings.TrimSpace(message); message != "" {
		args = append(args, "-mesg", message)
	}

	args = append(args, r.layout(opts.Layout).args(true)...)

	r.Close()
	r.logger.Debug("showing selection dialog", "prompt", prompt, "choices", len(choices))
	stdout, code, err := r.runner.Run(ctx, r.executable, args, input)
	if err != nil {
		return 0, 0, err
	}

	switch {
	case code == exitAccept:
		key = KeyAccept
	case code == exitCancel:
		return KeyCancel, KeyCancel, nil
	case code > customKeyBase:
		key = code - customKeyBase
		if exitOrdinals[key] {
			return 0, 0, ErrExitRequested
		}
	default:
		return 0, 0, &ExitError{Code: code}
	}

	stdout = strings.TrimSpace(stdout)
	if stdout == "" {
		return KeyCancel, key, nil
	}
	index, convErr := strconv.Atoi(stdout)
	if convErr != nil {
		return 0, 0, fmt.Errorf("malformed selection index %q: %w", stdout, convErr)
	}
	// rofi reports -1 when a key was pressed with no row selected.
	if index < -1 || index >= len(choices) {
		return 0, 0, fmt.Errorf("selection index %d out of range for %d choices", index, len(choices))
	}

	r.logger.Debug("selection made", "index", index, "key", key)
	return index, key, nil
}
