// Package kb holds the curated pregnancy-safety knowledge base and the
// query normalizer that maps free text onto it. Lookups are pure: the
// store is built once at startup and never mutated.
package kb

import (
	"sort"
	"strings"

	"bumpwise/apimodels"
)

// fuzzyLenTolerance bounds how many trailing characters two words may
// differ by and still count as the same root ("peanut" vs "peanuts").
// Kept small so short words don't collide with coincidentally similar
// longer ones.
const fuzzyLenTolerance = 2

type Store struct {
	records   map[string]apimodels.Outcome
	aliases   map[string]string
	keys      []string // sorted record keys, for deterministic scan order
	aliasKeys []string
}

func New() *Store {
	s := &Store{
		records: records,
		aliases: aliases,
	}
	for k := range s.records {
		s.keys = append(s.keys, k)
	}
	sort.Strings(s.keys)
	for a := range s.aliases {
		s.aliasKeys = append(s.aliasKeys, a)
	}
	sort.Strings(s.aliasKeys)
	return s
}

// Canonicalize lowercases, trims, and collapses internal whitespace. The
// result is the form every comparison (and the cache key) uses.
func Canonicalize(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// Normalize maps a raw query to the canonical record key it resolves to,
// or "" when nothing matches. Strategies apply in strict precedence
// order; the first match wins.
func (s *Store) Normalize(raw string) string {
	q := Canonicalize(raw)
	if q == "" {
		return ""
	}

	// 1. Exact key match.
	if _, ok := s.records[q]; ok {
		return q
	}

	// 2. Word-bounded fuzzy match: every word of the key must be matched
	// by some query word. Substring containment is deliberately not used;
	// "apple" inside "pineapple" must not match.
	queryWords := strings.Fields(q)
	for _, key := range s.keys {
		if wordsMatch(strings.Fields(key), queryWords) {
			return key
		}
	}

	// 3. Display name: first segment before "/", or the full name.
	for _, key := range s.keys {
		item := strings.ToLower(s.records[key].Item)
		first := strings.TrimSpace(strings.SplitN(item, "/", 2)[0])
		if q == first || q == item {
			return key
		}
	}

	// 4. Alias exact match.
	if key, ok := s.aliases[q]; ok {
		return key
	}

	// 5. Alias word-bounded match with simple plural equivalence.
	for _, alias := range s.aliasKeys {
		if aliasWordsMatch(strings.Fields(alias), queryWords) {
			return s.aliases[alias]
		}
	}

	return ""
}

// Lookup resolves a raw query to a copy of its record, or nil when the
// knowledge base has no answer.
func (s *Store) Lookup(raw string) *apimodels.Outcome {
	key := s.Normalize(raw)
	if key == "" {
		return nil
	}
	rec := s.records[key]
	out := rec // struct copy; slices are shared but never mutated
	out.NormalizeLists()
	return &out
}

// Hint returns the display name of a matching record, or "" when there
// is none. Used to seed the provider prompt when an image forces the
// provider path past a known query term.
func (s *Store) Hint(raw string) string {
	key := s.Normalize(raw)
	if key == "" {
		return ""
	}
	return s.records[key].Item
}

// Len reports how many records the store holds.
func (s *Store) Len() int { return len(s.records) }

func wordsMatch(keyWords, queryWords []string) bool {
	for _, kw := range keyWords {
		matched := false
		for _, qw := range queryWords {
			if closeMatch(kw, qw) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return len(keyWords) > 0
}

// closeMatch accepts identical words and same-root plural/singular
// variants: one word is a prefix of the other and the lengths differ by
// at most fuzzyLenTolerance.
func closeMatch(a, b string) bool {
	if a == b {
		return true
	}
	if strings.HasPrefix(a, b) && len(a)-len(b) <= fuzzyLenTolerance {
		return true
	}
	if strings.HasPrefix(b, a) && len(b)-len(a) <= fuzzyLenTolerance {
		return true
	}
	return false
}

// aliasWordsMatch is the stricter variant used for aliases: words must be
// identical or differ by exactly a trailing "s".
func aliasWordsMatch(aliasWords, queryWords []string) bool {
	for _, aw := range aliasWords {
		matched := false
		for _, qw := range queryWords {
			if qw == aw || qw == aw+"s" || qw+"s" == aw {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return len(aliasWords) > 0
}
