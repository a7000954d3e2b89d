package usecase

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// tokenize lower-cases text in NFC form and splits it into words with edge
// punctuation removed. Vietnamese input arrives both precomposed and
// decomposed depending on the keyboard, so normalization comes first.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(norm.NFC.String(text)))
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:\"'()[]")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// normalize is the string form of tokenize.
func normalize(text string) string {
	return strings.Join(tokenize(text), " ")
}

// phraseAt reports whether phrase (already split into words) starts at
// tokens[i].
func phraseAt(tokens []string, i int, phrase []string) bool {
	if i+len(phrase) > len(tokens) {
		return false
	}
	for j, w := range phrase {
		if tokens[i+j] != w {
			return false
		}
	}
	return true
}

// vocabulary is a set of phrases matched on word boundaries. Phrases are
// kept longest first so that stripping removes "tạm dừng" before "dừng".
type vocabulary [][]string

func newVocabulary(phrases ...[]string) vocabulary {
	var v vocabulary
	for _, list := range phrases {
		for _, p := range list {
			v = append(v, strings.Fields(p))
		}
	}
	sort.SliceStable(v, func(i, j int) bool { return len(v[i]) > len(v[j]) })
	return v
}

// in reports whether any phrase occurs in tokens.
func (v vocabulary) in(tokens []string) bool {
	for i := range tokens {
		for _, p := range v {
			if phraseAt(tokens, i, p) {
				return true
			}
		}
	}
	return false
}

// at reports whether one of the phrases starts at tokens[i].
func (v vocabulary) at(tokens []string, i int) bool {
	for _, p := range v {
		if phraseAt(tokens, i, p) {
			return true
		}
	}
	return false
}

// prefixOf reports whether tokens start with one of the phrases.
func (v vocabulary) prefixOf(tokens []string) bool {
	return v.at(tokens, 0)
}

// strip removes every occurrence of the phrases from tokens.
func (v vocabulary) strip(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		matched := false
		for _, p := range v {
			if phraseAt(tokens, i, p) {
				i += len(p)
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, tokens[i])
			i++
		}
	}
	return out
}
