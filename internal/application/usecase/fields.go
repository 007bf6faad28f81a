package usecase

import "strings"

// Optional trims s and maps the empty string to nil, the NULL of nullable text columns.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
