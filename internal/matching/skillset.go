package matching

import "sort"

// SkillSet is a set of canonical lowercase skill tokens.
type SkillSet map[string]struct{}

func NewSkillSet(tokens ...string) SkillSet {
	s := make(SkillSet, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

func (s SkillSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

func (s SkillSet) Len() int {
	return len(s)
}

// Sorted returns the tokens in alphabetical order.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := make(SkillSet)
	for t := range s {
		if other.Has(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

// Difference returns the tokens of s that are not in other.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	out := make(SkillSet)
	for t := range s {
		if !other.Has(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

// countIn returns how many of tokens are present in s.
func (s SkillSet) countIn(tokens []string) int {
	n := 0
	for _, t := range tokens {
		if s.Has(t) {
			n++
		}
	}
	return n
}

// missingFrom returns tokens not present in s, preserving order.
func (s SkillSet) missingFrom(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}
