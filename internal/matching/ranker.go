package matching

import (
	"sort"
	"sync"
)

const (
	skillsWeight = 0.55
	titleWeight  = 0.25
	descWeight   = 0.20

	maxSkillList = 25
)

// JobDocument is the text of a job as seen by the ranker.
type JobDocument struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
}

// ScoreBreakdown holds per-field similarities, each on a 0-100 scale.
type ScoreBreakdown struct {
	SkillsScore float64 `json:"skills_score"`
	TitleScore  float64 `json:"title_score"`
	DescScore   float64 `json:"desc_score"`
}

// RankedMatch is one job scored against a resume. Score is always in [0,100].
type RankedMatch struct {
	Job           JobDocument    `json:"job"`
	Score         float64        `json:"score"`
	MatchedSkills []string       `json:"matched_skills"`
	MissingSkills []string       `json:"missing_skills"`
	Breakdown     ScoreBreakdown `json:"breakdown"`
}

type Ranker struct {
	normalizer  *Normalizer
	maxFeatures int
}

func NewRanker(normalizer *Normalizer) *Ranker {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	return &Ranker{normalizer: normalizer, maxFeatures: DefaultMaxFeatures}
}

// RankJobs scores resumeText against every job and returns the matches sorted
// by score descending. Jobs with equal scores keep their input order.
func (r *Ranker) RankJobs(resumeText string, jobs []JobDocument) []RankedMatch {
	if len(jobs) == 0 {
		return []RankedMatch{}
	}

	titles := make([]string, len(jobs))
	descs := make([]string, len(jobs))
	skills := make([]string, len(jobs))
	for i, j := range jobs {
		titles[i], descs[i], skills[i] = j.Title, j.Description, j.Skills
	}

	var titleSims, descSims, skillSims []float64
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		titleSims = similaritiesToQuery(resumeText, titles, r.maxFeatures)
	}()
	go func() {
		defer wg.Done()
		descSims = similaritiesToQuery(resumeText, descs, r.maxFeatures)
	}()
	go func() {
		defer wg.Done()
		skillSims = similaritiesToQuery(resumeText, skills, r.maxFeatures)
	}()
	wg.Wait()

	resumeSkills := r.normalizer.ExtractSkills(resumeText)
	ranked := make([]RankedMatch, len(jobs))
	for i, job := range jobs {
		jobSkills := r.normalizer.ExtractSkills(job.Skills)
		final := skillsWeight*skillSims[i] + titleWeight*titleSims[i] + descWeight*descSims[i]
		ranked[i] = RankedMatch{
			Job:           job,
			Score:         round2(clamp(final*100, 0, 100)),
			MatchedSkills: capList(resumeSkills.Intersect(jobSkills).Sorted(), maxSkillList),
			MissingSkills: capList(jobSkills.Difference(resumeSkills).Sorted(), maxSkillList),
			Breakdown: ScoreBreakdown{
				SkillsScore: round2(skillSims[i] * 100),
				TitleScore:  round2(titleSims[i] * 100),
				DescScore:   round2(descSims[i] * 100),
			},
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})
	return ranked
}

func capList(in []string, n int) []string {
	if len(in) > n {
		return in[:n]
	}
	return in
}
