package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean prepares raw input text for tokenization.
// It applies Unicode NFC normalization, converts line endings to \n,
// collapses runs of whitespace to single spaces, and trims the edges.
// Empty input stays empty; callers treat an empty string as "no sentences".
func Clean(s string) string {
	s = norm.NFC.String(s)

	// Normalize line endings: CRLF → LF, then bare CR → LF.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	s = strings.Join(strings.Fields(s), " ")

	return s
}
