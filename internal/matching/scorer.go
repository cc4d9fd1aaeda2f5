package matching

import (
	"fmt"
	"math"
	"strings"
)

const (
	atsFloor        = 20
	atsCeiling      = 95
	maxMissingSkill = 8

	coreWeight    = 40.0
	plusWeight    = 20.0
	keywordCap    = 20.0
	keywordPerHit = 2.0
)

type AtsBreakdown struct {
	RoleDetected   Role `json:"role_detected"`
	CoreSkills     int  `json:"core_skills"`
	PlusSkills     int  `json:"plus_skills"`
	Keywords       int  `json:"keywords"`
	ResumeStrength int  `json:"resume_strength"`
}

type InterviewQuestion struct {
	Q           string `json:"q"`
	IdealAnswer string `json:"ideal_answer"`
}

// AtsReport is the rule-based compatibility report for one resume/job pair.
type AtsReport struct {
	AtsScore           int                 `json:"ats_score"`
	Breakdown          AtsBreakdown        `json:"ats_breakdown"`
	MissingSkills      []string            `json:"missing_skills"`
	Improvements       []string            `json:"improvements"`
	InterviewQuestions []InterviewQuestion `json:"interview_questions"`
}

// Scorer produces ATS scores in two modes: FullReport runs the rule-based
// engine over raw text, ProxyScore derives a cheap score from a RankedMatch
// and is meant for batch rebuilds.
type Scorer struct {
	normalizer *Normalizer
}

func NewScorer(normalizer *Normalizer) *Scorer {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	return &Scorer{normalizer: normalizer}
}

func (s *Scorer) FullReport(resumeText, jobTitle, jobDescription, jobSkills string) AtsReport {
	resumeSkills := s.normalizer.ExtractSkills(resumeText)
	jobWords := s.normalizer.ExtractSkills(jobTitle + " " + jobDescription + " " + jobSkills)

	role := InferRole(jobTitle)
	profile := s.normalizer.Vocabulary().Profile(role)

	coreScore := float64(resumeSkills.countIn(profile.Core)) / float64(max(1, len(profile.Core))) * coreWeight
	plusScore := float64(resumeSkills.countIn(profile.Plus)) / float64(max(1, len(profile.Plus))) * plusWeight
	keywordScore := math.Min(keywordCap, keywordPerHit*float64(resumeSkills.Intersect(jobWords).Len()))
	structureScore := resumeStrength(resumeSkills.Len())

	raw := coreScore + plusScore + keywordScore + float64(structureScore)
	atsScore := int(math.Round(clamp(raw, atsFloor, atsCeiling)))

	missing := append(resumeSkills.missingFrom(profile.Core), resumeSkills.missingFrom(profile.Plus)...)

	return AtsReport{
		AtsScore: atsScore,
		Breakdown: AtsBreakdown{
			RoleDetected:   role,
			CoreSkills:     int(math.Round(coreScore)),
			PlusSkills:     int(math.Round(plusScore)),
			Keywords:       int(math.Round(keywordScore)),
			ResumeStrength: structureScore,
		},
		MissingSkills:      capList(missing, maxMissingSkill),
		Improvements:       improvements(role, profile.Core),
		InterviewQuestions: interviewQuestions(role),
	}
}

// ProxyScore is the skills-field similarity of m rounded to an integer in [0,100].
func (s *Scorer) ProxyScore(m RankedMatch) int {
	return int(math.Round(clamp(m.Breakdown.SkillsScore, 0, 100)))
}

// resumeStrength is a step function of the number of distinct skills found.
func resumeStrength(skillCount int) int {
	switch {
	case skillCount >= 12:
		return 20
	case skillCount >= 8:
		return 15
	case skillCount >= 5:
		return 10
	default:
		return 5
	}
}

func improvements(role Role, core []string) []string {
	return []string{
		fmt.Sprintf("Strengthen core %s skills like: %s.", role, strings.Join(capList(core, 3), ", ")),
		"Add 1-2 measurable projects with clear tech stack and outcomes.",
		"Mirror important keywords from the job description.",
		"Add GitHub, LinkedIn, and deployed project links.",
	}
}

func interviewQuestions(role Role) []InterviewQuestion {
	return []InterviewQuestion{
		{
			Q: fmt.Sprintf("What are the core responsibilities of a %s developer?", role),
			IdealAnswer: fmt.Sprintf("Design, build, and maintain scalable %s systems "+
				"with clean architecture, performance, and best practices.", role),
		},
		{
			Q: "How do you design scalable APIs?",
			IdealAnswer: "Use REST principles, proper status codes, pagination, " +
				"authentication, caching, and optimized database queries.",
		},
		{
			Q: "What is the N+1 query problem?",
			IdealAnswer: "When a query triggers additional queries per item; " +
				"solved by eager loading related rows in a single query.",
		},
		{
			Q: "How do you debug production issues?",
			IdealAnswer: "Check logs, reproduce the issue, narrow down the root cause, " +
				"add tests, and deploy a minimal safe fix.",
		},
	}
}
