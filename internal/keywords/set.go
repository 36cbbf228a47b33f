package keywords

import "slices"

// Set is an unordered collection of unique keywords.
type Set map[string]struct{}

// NewSet returns a set holding words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

func (s Set) Add(word string) {
	s[word] = struct{}{}
}

func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Intersect returns the members of s that are also in other.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	out := make(Set, len(small))
	for w := range small {
		if large.Has(w) {
			out.Add(w)
		}
	}
	return out
}

// Difference returns the members of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set, len(s))
	for w := range s {
		if !other.Has(w) {
			out.Add(w)
		}
	}
	return out
}

// Sorted returns the members in ascending order. The result is never nil.
func (s Set) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
