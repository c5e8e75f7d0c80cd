package rofi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Built-in validators for the typed entry dialogs. Each produces the
// human-readable message shown as the dialog subtitle when the entered
// text is rejected.

func textValidator(allowBlank, keepWhitespace bool) Validator[string] {
	return func(text string) (string, string) {
		if !keepWhitespace {
			text = strings.TrimSpace(text)
		}
		if !allowBlank && text == "" {
			return "", "A value is required."
		}
		return text, ""
	}
}

func integerValidator(min, max *int64) Validator[int64] {
	return func(text string) (int64, string) {
		value, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return 0, "Please enter an integer value."
		}
		if min != nil && value < *min {
			return 0, fmt.Sprintf("The minimum allowable value is %d.", *min)
		}
		if max != nil && value > *max {
			return 0, fmt.Sprintf("The maximum allowable value is %d.", *max)
		}
		return value, ""
	}
}

func floatValidator(min, max *float64) Validator[float64] {
	return func(text string) (float64, string) {
		value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return 0, "Please enter a floating point value."
		}
		if min != nil && value < *min {
			return 0, fmt.Sprintf("The minimum allowable value is %v.", *min)
		}
		if max != nil && value > *max {
			return 0, fmt.Sprintf("The maximum allowable value is %v.", *max)
		}
		return value, ""
	}
}

func decimalValidator(min, max *decimal.Decimal) Validator[decimal.Decimal] {
	return func(text string) (decimal.Decimal, string) {
		value, err := decimal.NewFromString(strings.TrimSpace(text))
		if err != nil {
			return decimal.Decimal{}, "Please enter a decimal value."
		}
		if min != nil && value.LessThan(*min) {
			return decimal.Decimal{}, fmt.Sprintf("The minimum allowable value is %s.", min.String())
		}
		if max != nil && value.GreaterThan(*max) {
			return decimal.Decimal{}, fmt.Sprintf("The maximum allowable value is %s.", max.String())
		}
		return value, ""
	}
}

// timeValidator tries each layout in order; the first that parses the
// whole input wins. When none parse, a single message naming every
// accepted format is returned.
func timeValidator(layouts []string, noun string) Validator[time.Time] {
	return func(text string) (time.Time, string) {
		text = strings.TrimSpace(text)
		for _, layout := range layouts {
			if value, err := time.Parse(layout, text); err == nil {
				return value, ""
			}
		}
		return time.Time{}, fmt.Sprintf("Please enter a %s in one of these formats: %s.", noun, strings.Join(layouts, ", "))
	}
}

// checkBounds rejects bound pairs where the maximum is not above the
// minimum. Passing such a pair is a programming error, not a
// validation failure.
func checkBounds[T any](min, max *T, above func(a, b T) bool) error {
	if min != nil && max != nil && !above(*max, *min) {
		return fmt.Errorf("maximum limit must be greater than the minimum limit")
	}
	return nil
}
