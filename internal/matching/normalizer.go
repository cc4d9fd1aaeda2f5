package matching

import (
	"regexp"
	"strings"
)

var skillTokenRe = regexp.MustCompile(`[a-z+#.]{2,}`)

// Normalizer turns free text into a SkillSet using a Vocabulary.
type Normalizer struct {
	vocab *Vocabulary
}

// NewNormalizer uses the default vocabulary when vocab is nil.
func NewNormalizer(vocab *Vocabulary) *Normalizer {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Normalizer{vocab: vocab}
}

func (n *Normalizer) Vocabulary() *Vocabulary {
	return n.vocab
}

// ExtractSkills never fails; empty text yields an empty set.
func (n *Normalizer) ExtractSkills(text string) SkillSet {
	skills := make(SkillSet)
	if text == "" {
		return skills
	}
	tokens := n.vocab.expandPhrases(skillTokenRe.FindAllString(strings.ToLower(text), -1))
	for _, tok := range tokens {
		if n.vocab.IsStopword(tok) {
			continue
		}
		tok = n.vocab.Normalize(tok)
		if len(tok) < 2 || n.vocab.IsStopword(tok) {
			continue
		}
		skills[tok] = struct{}{}
	}
	return skills
}
