// Package textfilter swaps unwanted words in player-chosen text, such as names, for milder ones
// before the text is shown in a shared channel.
package textfilter

import (
	"cmp"
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter replaces whole words, ignoring case. The zero value is not usable; build one with New.
type Filter struct {
	words        []string // Longest first, so "jesus christ" wins over "christ"
	patterns     map[string]*regexp.Regexp
	replacements map[string]string
	title        cases.Caser
}

// New compiles a filter from a word -> replacement table. Title-cased matches are re-cased with the
// rules of tag.
func New(replacements map[string]string, tag language.Tag) *Filter {
	f := &Filter{
		patterns:     make(map[string]*regexp.Regexp, len(replacements)),
		replacements: make(map[string]string, len(replacements)),
		title:        cases.Title(tag),
	}
	for word, repl := range replacements {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		f.replacements[word] = repl
		f.patterns[word] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `s?\b`)
	}
	f.words = slices.SortedFunc(maps.Keys(f.replacements), func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return f
}

// Clean returns text with every listed word replaced, keeping the case pattern of each match.
// A plural "s" on a match is kept on the replacement.
func (f *Filter) Clean(text string) string {
	for _, word := range f.words {
		repl := f.replacements[word]
		n := utf8.RuneCountInString(word)
		text = f.patterns[word].ReplaceAllStringFunc(text, func(match string) string {
			if utf8.RuneCountInString(match) > n {
				return f.matchCase(match[:len(match)-1], repl) + match[len(match)-1:]
			}
			return f.matchCase(match, repl)
		})
	}
	return text
}

// Contains reports whether text has any listed word in it.
func (f *Filter) Contains(text string) bool {
	return slices.ContainsFunc(f.words, func(w string) bool {
		return f.patterns[w].MatchString(text)
	})
}

func (f *Filter) matchCase(original, replacement string) string {
	switch {
	case strings.ToUpper(original) == original:
		return strings.ToUpper(replacement)
	case strings.ToLower(original) == original:
		return strings.ToLower(replacement)
	case f.title.String(strings.ToLower(original)) == original:
		return f.title.String(replacement)
	}

	// Mixed case: copy the case letter by letter, lower case past the end of the original.
	orig := []rune(original)
	out := []rune(replacement)
	for i, r := range out {
		if i < len(orig) && unicode.IsUpper(orig[i]) {
			out[i] = unicode.ToUpper(r)
		} else {
			out[i] = unicode.ToLower(r)
		}
	}
	return string(out)
}
