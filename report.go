package ampconv

import (
	"strconv"
	"strings"
)

// FormatActions formats actions as a human-readable report.
// Entries keep the order of actions and are separated by newlines.
func FormatActions(actions []ActionTaken) string {
	if len(actions) == 0 {
		return ""
	}

	var b strings.Builder
	for _, a := range actions {
		b.WriteString("Line ")
		if a.Line > 0 {
			b.WriteString(strconv.Itoa(a.Line))
		} else {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(a.Context)
		b.WriteString("\n ACTION TAKEN: ")
		b.WriteString(a.Subject)
		b.WriteString(" ")
		b.WriteString(a.Kind.Description())
		b.WriteString(".\n")
	}
	return b.String()
}
