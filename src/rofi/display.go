package rofi

import "context"

// Message shows a plain message window and blocks until the user
// dismisses it. Fullscreen mode is not supported by message windows
// and is ignored.
func (r *Rofi) Message(ctx context.Context, message string, layout *Options) error {
	return r.messageWindow(ctx, message, layout)
}

// Error shows an error window and blocks until the user dismisses it.
func (r *Rofi) Error(ctx context.Context, message string, layout *Options) error {
	r.logger.Debug("showing error window", "message", message)
	return r.messageWindow(ctx, message, layout)
}

func (r *Rofi) messageWindow(ctx context.Context, message string, layout *Options) error {
	args := append([]string{"-e", message}, r.layout(layout).args(false)...)

	r.Close()
	_, code, err := r.runner.Run(ctx, r.executable, args, "")
	if err != nil {
		return err
	}
	// Either the accept or the cancel key dismisses a message window.
	if code != exitAccept && code != exitCancel {
		return &ExitError{Code: code}
	}
	return nil
}

// Status shows a status message and returns immediately, leaving the
// window up while work continues in the caller. The window is closed
// by Close, or implicitly when the next dialog is shown. Fullscreen
// mode is not supported for status windows and is ignored.
func (r *Rofi) Status(message string, layout *Options) error {
	args := append([]string{"-e", message}, r.layout(layout).args(false)...)

	r.Close()
	proc, err := r.runner.Start(r.executable, args)
	if err != nil {
		return err
	}
	r.status = proc
	r.logger.Debug("status window shown", "message", message)
	return nil
}
