package rofi

import "strings"

// Replacer never rescans replacement text, so the ampersand entity is
// not escaped a second time.
var pangoEscaper = strings.NewReplacer(
	"&", "&amp;",
	"\"", "&quot;",
	"'", "&apos;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape makes a string safe for embedding as literal text in a
// Pango-markup message. Apply it before adding any markup of your own.
func Escape(s string) string {
	return pangoEscaper.Replace(s)
}
