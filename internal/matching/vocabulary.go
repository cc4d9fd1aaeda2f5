package matching

import (
	"sort"
	"strings"
	"sync"
)

type Role string

const (
	RoleBackend   Role = "backend"
	RoleFrontend  Role = "frontend"
	RoleFullstack Role = "fullstack"
)

// RoleProfile lists the skills that count as core and plus for a role.
// Both slices are kept sorted.
type RoleProfile struct {
	Core []string
	Plus []string
}

// Vocabulary is the read-only configuration shared by the normalizer and the scorer.
type Vocabulary struct {
	stopwords map[string]struct{}
	synonyms  map[string]string
	phrases   []phraseSynonym
	roles     map[Role]RoleProfile
}

type phraseSynonym struct {
	words []string
	to    string
}

// NewVocabulary copies its inputs, so later changes to the caller's maps do not leak in.
// Synonym keys containing a space or a hyphen are matched as token sequences.
func NewVocabulary(stopwords []string, synonyms map[string]string, roles map[Role]RoleProfile) *Vocabulary {
	v := &Vocabulary{
		stopwords: make(map[string]struct{}, len(stopwords)),
		synonyms:  make(map[string]string, len(synonyms)),
		roles:     make(map[Role]RoleProfile, len(roles)),
	}
	for _, w := range stopwords {
		v.stopwords[strings.ToLower(w)] = struct{}{}
	}
	for from, to := range synonyms {
		from, to = strings.ToLower(from), strings.ToLower(to)
		if words := strings.FieldsFunc(from, isPhraseSeparator); len(words) > 1 {
			v.phrases = append(v.phrases, phraseSynonym{words: words, to: to})
			continue
		}
		v.synonyms[from] = to
	}
	// longest phrase first so "django rest framework" wins over "rest framework"
	sort.Slice(v.phrases, func(i, j int) bool {
		if len(v.phrases[i].words) != len(v.phrases[j].words) {
			return len(v.phrases[i].words) > len(v.phrases[j].words)
		}
		return strings.Join(v.phrases[i].words, " ") < strings.Join(v.phrases[j].words, " ")
	})
	for role, p := range roles {
		v.roles[role] = RoleProfile{Core: sortedCopy(p.Core), Plus: sortedCopy(p.Plus)}
	}
	return v
}

var defaultVocabulary = sync.OnceValue(func() *Vocabulary {
	return NewVocabulary(
		[]string{
			"and", "or", "the", "a", "an", "to", "in", "of", "for", "with",
			"on", "at", "is", "are", "as", "be", "job", "role", "developer",
			"engineer", "test", "start",
		},
		map[string]string{
			"django-rest-framework": "drf",
			"django rest framework": "drf",
			"rest api":              "api",
			"restful":               "api",
			"postgres":              "postgresql",
			"postgre":               "postgresql",
			"js":                    "javascript",
		},
		map[Role]RoleProfile{
			RoleBackend: {
				Core: []string{"python", "django", "drf", "api", "sql"},
				Plus: []string{"celery", "redis", "docker", "postgresql", "mysql", "aws"},
			},
			RoleFrontend: {
				Core: []string{"javascript", "html", "css", "react"},
				Plus: []string{"redux", "tailwind", "webpack"},
			},
			RoleFullstack: {
				Core: []string{"python", "django", "javascript", "react"},
				Plus: []string{"docker", "api"},
			},
		},
	)
})

// DefaultVocabulary returns the built-in tables. The value is shared and must not be modified.
func DefaultVocabulary() *Vocabulary {
	return defaultVocabulary()
}

func (v *Vocabulary) IsStopword(token string) bool {
	_, ok := v.stopwords[token]
	return ok
}

// Normalize maps a token to its canonical form. Chains are followed until a
// fixed point so Normalize(Normalize(t)) == Normalize(t) for any table.
func (v *Vocabulary) Normalize(token string) string {
	for i := 0; i <= len(v.synonyms); i++ {
		next, ok := v.synonyms[token]
		if !ok || next == token {
			return token
		}
		token = next
	}
	return token
}

// Profile returns the skills for role, falling back to backend for unknown roles.
func (v *Vocabulary) Profile(role Role) RoleProfile {
	p, ok := v.roles[role]
	if !ok {
		p = v.roles[RoleBackend]
	}
	return RoleProfile{Core: sortedCopy(p.Core), Plus: sortedCopy(p.Plus)}
}

// expandPhrases adds the canonical token of every multi-word synonym found in
// a token stream. The words of the phrase stay in the stream.
func (v *Vocabulary) expandPhrases(tokens []string) []string {
	if len(v.phrases) == 0 {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		matched := false
		for _, p := range v.phrases {
			if hasPrefix(tokens[i:], p.words) {
				out = append(out, p.to)
				out = append(out, p.words...)
				i += len(p.words)
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

func hasPrefix(tokens, words []string) bool {
	if len(tokens) < len(words) {
		return false
	}
	for i, w := range words {
		if tokens[i] != w {
			return false
		}
	}
	return true
}

func isPhraseSeparator(r rune) bool {
	return r == ' ' || r == '-'
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}
