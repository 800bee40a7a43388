// Package normalize holds small input canonicalization helpers shared by
// stores and handlers.
package normalize

import "strings"

// Email lowercases and trims an email address so lookups and the unique
// index treat "User@Example.com " and "user@example.com" as the same key.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace and collapses interior runs of
// whitespace to a single space.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
