package rofi

import (
	"fmt"
	"sort"
	"strconv"
)

// KeyBinding binds a key combination to a custom ordinal slot in a
// selection dialog. Ordinal 0 is reserved for the default accept key
// and -1 for cancellation; custom bindings occupy 1 and up.
type KeyBinding struct {
	// Key is the combination, for example "Alt+x" or "Delete". Letter
	// keys must be lowercase, i.e. "Alt+a" not "Alt+A".
	Key string

	// Label is a short description of the action shown at the top of
	// the dialog. Empty means the binding is set but not displayed.
	Label string
}

// bindingArgs builds the -kb-custom flags for the user's bindings and
// the instance exit hotkeys. It returns the flags, the display lines
// to merge into the message text, and the set of ordinals occupied by
// exit hotkeys. Exit hotkeys take the first free ordinals from 10
// upward so they never collide with user bindings.
func bindingArgs(keys map[int]KeyBinding, exitHotkeys []string) (args []string, display []string, exitOrdinals map[int]bool, err error) {
	ordinals := make([]int, 0, len(keys))
	for ordinal := range keys {
		if ordinal < 1 {
			return nil, nil, nil, fmt.Errorf("custom key ordinal must be 1 or greater, got %d", ordinal)
		}
		ordinals = append(ordinals, ordinal)
	}
	sort.Ints(ordinals)

	for _, ordinal := range ordinals {
		binding := keys[ordinal]
		args = append(args, "-kb-custom-"+strconv.Itoa(ordinal), binding.Key)
		if binding.Label != "" {
			display = append(display, fmt.Sprintf("<b>%s</b>: %s", binding.Key, binding.Label))
		}
	}

	exitOrdinals = make(map[int]bool, len(exitHotkeys))
	next := 10
	for _, hotkey := range exitHotkeys {
		for _, used := keys[next]; used; _, used = keys[next] {
			next++
		}
		exitOrdinals[next] = true
		args = append(args, "-kb-custom-"+strconv.Itoa(next), hotkey)
		next++
	}

	return args, display, exitOrdinals, nil
}
