package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullReport_BackendResume(t *testing.T) {
	s := NewScorer(nil)

	r := s.FullReport(
		"Experienced Python Django developer with REST API and PostgreSQL",
		"Backend Engineer",
		"",
		"python, django, sql, aws",
	)

	assert.Equal(t, RoleBackend, r.Breakdown.RoleDetected)
	// core 3/5*40=24, plus 1/6*20=3.33, keywords 2*2=4, strength 10
	assert.Equal(t, 41, r.AtsScore)
	assert.Equal(t, 24, r.Breakdown.CoreSkills)
	assert.Equal(t, 3, r.Breakdown.PlusSkills)
	assert.Equal(t, 4, r.Breakdown.Keywords)
	assert.Equal(t, 10, r.Breakdown.ResumeStrength)
	assert.Equal(t, []string{"drf", "sql", "aws", "celery", "docker", "mysql", "redis"}, r.MissingSkills)
	assert.NotContains(t, r.MissingSkills, "python")
	assert.NotContains(t, r.MissingSkills, "django")
}

func TestFullReport_PhraseSkillsCountAsPresent(t *testing.T) {
	s := NewScorer(nil)

	r := s.FullReport("Python, Django REST Framework, SQL, REST API", "Backend Engineer", "", "python, django, sql")

	// core 5/5*40=40, plus 0, keywords 3*2=6, strength 10
	assert.Equal(t, 56, r.AtsScore)
	assert.Equal(t, 40, r.Breakdown.CoreSkills)
	assert.Equal(t, 6, r.Breakdown.Keywords)
	assert.NotContains(t, r.MissingSkills, "django")
	assert.Equal(t, []string{"aws", "celery", "docker", "mysql", "postgresql", "redis"}, r.MissingSkills)
}

func TestFullReport_ScoreAlwaysWithinBounds(t *testing.T) {
	s := NewScorer(nil)
	rich := "python django drf api sql celery redis docker postgresql mysql aws " +
		"javascript react html css kubernetes terraform graphql"

	cases := []struct {
		name                       string
		resume, title, desc, skill string
	}{
		{"all empty", "", "", "", ""},
		{"empty resume", "", "Backend Engineer", "build apis", "python, sql"},
		{"empty job", rich, "", "", ""},
		{"rich backend", rich, "Backend Engineer", rich, rich},
		{"rich frontend", rich, "Frontend Engineer", rich, rich},
		{"noise", "!!!", "???", "...", ",,,"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := s.FullReport(tc.resume, tc.title, tc.desc, tc.skill)
			assert.GreaterOrEqual(t, r.AtsScore, 20)
			assert.LessOrEqual(t, r.AtsScore, 95)
			assert.LessOrEqual(t, len(r.MissingSkills), 8)
			assert.Len(t, r.Improvements, 4)
			assert.Len(t, r.InterviewQuestions, 4)
		})
	}

	assert.Equal(t, 20, s.FullReport("", "", "", "").AtsScore)
	assert.Equal(t, 95, s.FullReport(rich, "Backend Engineer", rich, rich).AtsScore)
}

func TestFullReport_MissingSkillsCoreFirstAndCapped(t *testing.T) {
	s := NewScorer(nil)

	r := s.FullReport("", "Backend Engineer", "", "")
	require.Len(t, r.MissingSkills, 8)
	assert.Equal(t, []string{"api", "django", "drf", "python", "sql", "aws", "celery", "docker"}, r.MissingSkills)

	r = s.FullReport("react", "Frontend Engineer", "", "")
	assert.Equal(t, []string{"css", "html", "javascript", "redux", "tailwind", "webpack"}, r.MissingSkills)
}

func TestFullReport_DeterministicAdvice(t *testing.T) {
	s := NewScorer(nil)

	r := s.FullReport("", "Backend Engineer", "", "")
	assert.Equal(t, "Strengthen core backend skills like: api, django, drf.", r.Improvements[0])
	assert.Equal(t, "What are the core responsibilities of a backend developer?", r.InterviewQuestions[0].Q)

	again := s.FullReport("", "Backend Engineer", "", "")
	assert.Equal(t, r, again)

	fs := s.FullReport("", "Full Stack Engineer", "", "")
	assert.Equal(t, "Strengthen core fullstack skills like: django, javascript, python.", fs.Improvements[0])
}

func TestFullReport_EmptyCoreProfile(t *testing.T) {
	vocab := NewVocabulary(nil, nil, map[Role]RoleProfile{RoleBackend: {}})
	s := NewScorer(NewNormalizer(vocab))

	r := s.FullReport("go", "Backend Engineer", "", "go")
	assert.Equal(t, 20, r.AtsScore)
	assert.Empty(t, r.MissingSkills)
}

func TestProxyScore(t *testing.T) {
	s := NewScorer(nil)

	assert.Equal(t, 0, s.ProxyScore(RankedMatch{}))
	assert.Equal(t, 43, s.ProxyScore(RankedMatch{Breakdown: ScoreBreakdown{SkillsScore: 42.51}}))
	assert.Equal(t, 100, s.ProxyScore(RankedMatch{Breakdown: ScoreBreakdown{SkillsScore: 100}}))
}
