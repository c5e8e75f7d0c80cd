package rofi

import (
	"errors"
	"fmt"
)

// ErrExitRequested is returned when the user presses one of the
// configured exit hotkeys. Callers should treat it as a request to
// shut the application down.
var ErrExitRequested = errors.New("exit hotkey pressed")

// ExitError reports an exit code from the external tool that does not
// map to acceptance, cancellation, or a bound key. It usually means an
// incompatible rofi version.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("unexpected rofi exit code %d", e.Code)
}
