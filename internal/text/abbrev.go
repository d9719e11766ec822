package text

import (
	"fmt"
	"strings"
)

// ErrBadAbbreviation reports a malformed abbreviation table, e.g. a
// self-referential expansion. It is a startup configuration error; input
// text itself never triggers it.
type ErrBadAbbreviation struct {
	Key    string
	Reason string
}

func (e *ErrBadAbbreviation) Error() string {
	return fmt.Sprintf("abbreviation %q: %s", e.Key, e.Reason)
}

// validateAbbreviations rejects tables whose expansions loop back onto a
// key, directly or through a chain. Expansion words that are themselves
// keys are followed; a cycle makes in-place expansion non-terminating.
func validateAbbreviations(table map[string]string) error {
	for key, expansion := range table {
		if strings.TrimSpace(expansion) == "" {
			return &ErrBadAbbreviation{Key: key, Reason: "empty expansion"}
		}
		if err := walkExpansion(table, key, key, map[string]bool{key: true}); err != nil {
			return err
		}
	}
	return nil
}

func walkExpansion(table map[string]string, root, key string, seen map[string]bool) error {
	for _, word := range strings.Fields(table[key]) {
		next, ok := table[word]
		if !ok {
			continue
		}
		if seen[word] {
			return &ErrBadAbbreviation{Key: root, Reason: fmt.Sprintf("expansion cycle through %q", word)}
		}
		seen[word] = true
		_ = next
		if err := walkExpansion(table, root, word, seen); err != nil {
			return err
		}
		delete(seen, word)
	}
	return nil
}

// expandAbbreviation returns the expansion words for chunk, following
// acyclic chains of keys. ok is false when chunk is not an abbreviation.
// The table has been validated at construction, so recursion terminates.
func (t *Tokenizer) expandAbbreviation(chunk string) (words []string, ok bool) {
	expansion, found := t.opts.Abbreviations[chunk]
	if !found {
		return nil, false
	}
	for _, w := range strings.Fields(expansion) {
		if nested, nestedOK := t.expandAbbreviation(w); nestedOK {
			words = append(words, nested...)
		} else {
			words = append(words, w)
		}
	}
	return words, true
}

// DefaultAbbreviations is the built-in English abbreviation table.
func DefaultAbbreviations() map[string]string {
	return map[string]string{
		"Mr.":   "Mister",
		"Mrs.":  "Missus",
		"Ms.":   "Miss",
		"Dr.":   "Doctor",
		"St.":   "Saint",
		"Jr.":   "Junior",
		"Sr.":   "Senior",
		"vs.":   "versus",
		"etc.":  "et cetera",
		"e.g.":  "for example",
		"i.e.":  "that is",
		"No.":   "Number",
		"dept.": "department",
		"govt.": "government",
	}
}
