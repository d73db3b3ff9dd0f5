package patterns

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// KeywordSet is an ordered list of whole-word terms. At each word start,
// terms are tried in list order, so the earliest position in the text wins
// and ties go to the earlier term.
type KeywordSet struct {
	name  string
	terms []string
}

// NewKeywordSet builds a keyword set. Terms are stored lowercase.
func NewKeywordSet(name string, terms ...string) *KeywordSet {
	lowered := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			lowered = append(lowered, t)
		}
	}
	return &KeywordSet{name: name, terms: lowered}
}

// Name returns the category name of the set.
func (k *KeywordSet) Name() string { return k.name }

// Terms returns a copy of the terms in priority order.
func (k *KeywordSet) Terms() []string { return slices.Clone(k.terms) }

// FindFirst returns the leftmost whole-word term in text.
func (k *KeywordSet) FindFirst(text string) (string, bool) {
	for i := 0; i < len(text); {
		if t, ok := k.termAt(text, i); ok {
			return t, true
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return "", false
}

// FindAll returns every non-overlapping whole-word term in text, in order of
// appearance, without duplicates.
func (k *KeywordSet) FindAll(text string) []string {
	var found []string
	for i := 0; i < len(text); {
		if t, ok := k.termAt(text, i); ok {
			if !slices.Contains(found, t) {
				found = append(found, t)
			}
			i += len(t)
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return found
}

func (k *KeywordSet) termAt(text string, i int) (string, bool) {
	if i > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:i])
		if isWordRune(prev) {
			return "", false
		}
	}
	rest := text[i:]
	for _, t := range k.terms {
		if !strings.HasPrefix(rest, t) {
			continue
		}
		if end := i + len(t); end < len(text) {
			next, _ := utf8.DecodeRuneInString(text[end:])
			if isWordRune(next) {
				continue
			}
		}
		return t, true
	}
	return "", false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
