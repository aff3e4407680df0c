package template

import (
	"strings"
	"time"
)

// Render substitutes {{name}} placeholders with the literal values in data.
// Placeholders with no matching key are left untouched so a typo in a
// message template is visible instead of silently blanked.
func Render(tmpl string, data map[string]string) string {
	out := tmpl
	for key, value := range data {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	return out
}

// FormatDate renders dates the way messages expect them, dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatTime renders a 24h clock time, HH:MM.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}
