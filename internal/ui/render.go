package ui

import (
	"fmt"
	"sort"
	"strings"
)

// OK renders the success marker printed after an acknowledged command.
func OK() string {
	return SuccessStyle.Render("OK")
}

// Errorf renders a styled error line.
func Errorf(format string, args ...interface{}) string {
	return ErrorStyle.Render("ERROR") + " - " + fmt.Sprintf(format, args...)
}

// KeyValues renders a map as aligned "Key: value" lines, sorted by key.
func KeyValues(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	width := 0
	for k := range fields {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		pad := strings.Repeat(" ", width-len(k))
		b.WriteString(KeyStyle.Render(k+":") + pad + " " + ValueStyle.Render(fields[k]) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
