package matching

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenShape = regexp.MustCompile(`^[a-zA-Z+#.]{2,}$`)

func TestExtractSkills_Properties(t *testing.T) {
	n := NewNormalizer(nil)
	vocab := n.Vocabulary()
	inputs := []string{
		"",
		"   ",
		"a b c",
		"Senior Backend Engineer: Python, Django REST Framework, Postgres, JS",
		"C++ and C# developer. Node.js, React.js & TypeScript!!",
		"django-rest-framework restful rest api postgre",
		"the and or job role developer engineer test start",
		"12345 ??? ---",
	}
	for _, in := range inputs {
		for tok := range n.ExtractSkills(in) {
			assert.Regexp(t, tokenShape, tok, "input %q", in)
			assert.False(t, vocab.IsStopword(tok), "stopword %q leaked from %q", tok, in)
			assert.Equal(t, tok, vocab.Normalize(tok), "token %q is not canonical", tok)
		}
	}
}

func TestExtractSkills_Synonyms(t *testing.T) {
	n := NewNormalizer(nil)

	got := n.ExtractSkills("Postgres and JS, plus Django REST Framework and a RESTful REST API")
	assert.True(t, got.Has("postgresql"))
	assert.True(t, got.Has("javascript"))
	assert.True(t, got.Has("drf"))
	assert.True(t, got.Has("api"))
	assert.False(t, got.Has("postgres"))
	assert.False(t, got.Has("js"))
	assert.False(t, got.Has("restful"))
}

func TestExtractSkills_PhraseKeepsItsWords(t *testing.T) {
	n := NewNormalizer(nil)

	got := n.ExtractSkills("Built APIs with Django REST Framework")
	assert.True(t, got.Has("drf"))
	assert.True(t, got.Has("django"))
	assert.True(t, got.Has("rest"))
	assert.True(t, got.Has("framework"))

	got = n.ExtractSkills("Experienced Python Django developer with REST API and PostgreSQL")
	assert.Equal(t, []string{"api", "django", "experienced", "postgresql", "python", "rest"}, got.Sorted())
}

func TestExtractSkills_PhraseRespectsWordBoundaries(t *testing.T) {
	n := NewNormalizer(nil)

	got := n.ExtractSkills("interest api")
	assert.True(t, got.Has("interest"))
	assert.True(t, got.Has("api"))
}

func TestExtractSkills_EmptyAndDuplicates(t *testing.T) {
	n := NewNormalizer(nil)

	assert.Equal(t, 0, n.ExtractSkills("").Len())
	got := n.ExtractSkills("python PYTHON Python")
	assert.Equal(t, []string{"python"}, got.Sorted())
}

func TestVocabulary_IsImmutableCopy(t *testing.T) {
	syn := map[string]string{"k8s": "kubernetes"}
	roles := map[Role]RoleProfile{RoleBackend: {Core: []string{"go", "sql"}}}
	v := NewVocabulary([]string{"and"}, syn, roles)

	syn["k8s"] = "changed"
	roles[RoleBackend].Core[0] = "changed"

	assert.Equal(t, "kubernetes", v.Normalize("k8s"))
	assert.Equal(t, []string{"go", "sql"}, v.Profile(RoleBackend).Core)

	p := v.Profile(RoleBackend)
	p.Core[0] = "mutated"
	assert.Equal(t, "go", v.Profile(RoleBackend).Core[0])
}

func TestVocabulary_NormalizeFollowsChains(t *testing.T) {
	v := NewVocabulary(nil, map[string]string{"a1": "b1", "b1": "c1"}, nil)
	require.Equal(t, "c1", v.Normalize("a1"))
	assert.Equal(t, v.Normalize("a1"), v.Normalize(v.Normalize("a1")))
}

func TestInferRole(t *testing.T) {
	tests := []struct {
		title string
		want  Role
	}{
		{"Backend Engineer", RoleBackend},
		{"Senior FRONTEND developer", RoleFrontend},
		{"Full Stack Developer", RoleFullstack},
		{"Fullstack Engineer", RoleFullstack},
		{"Backend / Full stack", RoleBackend},
		{"Frontend or Full-stack", RoleFrontend},
		{"Data Scientist", RoleBackend},
		{"", RoleBackend},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, InferRole(tt.title))
		})
	}
}
