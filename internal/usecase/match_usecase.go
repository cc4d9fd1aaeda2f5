package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fadilmartias/cv-matcher/internal/matching"
	"github.com/fadilmartias/cv-matcher/internal/model"
	"github.com/fadilmartias/cv-matcher/internal/repository"
	"github.com/fadilmartias/cv-matcher/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BuildResult struct {
	Created int  `json:"created"`
	Updated int  `json:"updated"`
	JobID   uint `json:"job_id"`
}

// TopMatchesQuery carries the raw query parameters of TopMatchesForJob.
// MinScore and Limit are ignored when they do not parse or Limit is negative;
// Limit "0" returns no reports. Every MustHave entry may hold several keywords
// separated by commas or newlines.
type TopMatchesQuery struct {
	JobID    uint
	Owner    *uuid.UUID
	MinScore string
	MustHave []string
	Limit    string
}

type MatchUsecase struct {
	db         *gorm.DB
	jobRepo    *repository.JobRepository
	resumeRepo *repository.ResumeRepository
	reportRepo *repository.MatchReportRepository
	ranker     *matching.Ranker
	scorer     *matching.Scorer
	generators []service.TextGenerator
	log        *zap.Logger
}

func NewMatchUsecase(db *gorm.DB, jobRepo *repository.JobRepository, resumeRepo *repository.ResumeRepository, reportRepo *repository.MatchReportRepository, ranker *matching.Ranker, scorer *matching.Scorer, log *zap.Logger) *MatchUsecase {
	return &MatchUsecase{
		db:         db,
		jobRepo:    jobRepo,
		resumeRepo: resumeRepo,
		reportRepo: reportRepo,
		ranker:     ranker,
		scorer:     scorer,
		log:        log.Named("match"),
	}
}

// BuildReportsForJob scores every resume (or only owner's) against one job
// and upserts a MatchReport per pair. All writes happen in one transaction.
func (uc *MatchUsecase) BuildReportsForJob(ctx context.Context, jobID uint, owner *uuid.UUID) (BuildResult, error) {
	result := BuildResult{JobID: jobID}

	err := uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reports := uc.reportRepo.WithTx(tx)

		job, err := uc.jobRepo.WithTx(tx).FindJobByID(ctx, jobID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrJobNotFound, jobID)
			}
			return fmt.Errorf("load job %d: %w", jobID, err)
		}
		doc := []matching.JobDocument{jobDocument(*job)}

		resumes, err := uc.resumeRepo.WithTx(tx).ListResumes(ctx, owner)
		if err != nil {
			return fmt.Errorf("load resumes: %w", err)
		}

		for _, res := range resumes {
			ranked := uc.ranker.RankJobs(res.Content, doc)
			var top matching.RankedMatch
			if len(ranked) > 0 {
				top = ranked[0]
			}

			existing, err := reports.FindByPair(ctx, res.ID, job.ID)
			if err != nil {
				return fmt.Errorf("find report resume=%d job=%d: %w", res.ID, job.ID, err)
			}

			report := &model.MatchReport{
				ResumeID:           res.ID,
				JobID:              job.ID,
				Score:              reportScore(top.Score),
				AtsScore:           uc.scorer.ProxyScore(top),
				MissingSkills:      datatypes.JSONSlice[string](nonNil(top.MissingSkills)),
				Improvements:       datatypes.JSONSlice[string]{},
				InterviewQuestions: datatypes.JSONSlice[matching.InterviewQuestion]{},
			}
			if err := reports.UpsertScores(ctx, report); err != nil {
				return fmt.Errorf("upsert report resume=%d job=%d: %w", res.ID, job.ID, err)
			}

			if existing == nil {
				result.Created++
			} else {
				result.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return BuildResult{JobID: jobID}, err
	}

	uc.log.Info("match reports rebuilt",
		zap.Uint("job_id", jobID),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
	)
	return result, nil
}

// TopMatchesForJob rebuilds the owner's reports for the job and returns them
// filtered and ordered by score descending, then id descending.
func (uc *MatchUsecase) TopMatchesForJob(ctx context.Context, q TopMatchesQuery) ([]model.MatchReport, error) {
	if q.Owner == nil || *q.Owner == uuid.Nil {
		return nil, ErrOwnerRequired
	}

	if _, err := uc.BuildReportsForJob(ctx, q.JobID, q.Owner); err != nil {
		return nil, err
	}

	reports, err := uc.reportRepo.QueryForJob(ctx, repository.ReportFilter{
		JobID:    q.JobID,
		OwnerID:  *q.Owner,
		MinScore: ParseMinScore(q.MinScore),
		MustHave: NormalizeKeywords(q.MustHave...),
		Limit:    ParseLimit(q.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("query reports for job %d: %w", q.JobID, err)
	}
	return reports, nil
}

// reportScore clamps a ranker score to [0,100] with two decimals.
func reportScore(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return math.Round(math.Max(0, math.Min(100, score))*100) / 100
}

// ParseMinScore returns nil for blank or non-numeric input.
func ParseMinScore(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseLimit returns nil (no limit) for blank, non-numeric or negative input.
func ParseLimit(raw string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// NormalizeKeywords splits every entry on commas and newlines and drops blanks.
func NormalizeKeywords(entries ...string) []string {
	var out []string
	for _, e := range entries {
		for _, kw := range strings.FieldsFunc(e, func(r rune) bool { return r == ',' || r == '\n' || r == '\r' }) {
			if kw = strings.TrimSpace(kw); kw != "" {
				out = append(out, kw)
			}
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// RebuildAllJobs runs BuildReportsForJob for every job, one transaction per
// job. A failing job is logged and skipped; the totals cover the rest.
func (uc *MatchUsecase) RebuildAllJobs(ctx context.Context) (BuildResult, error) {
	jobs, err := uc.jobRepo.GetJobs(ctx)
	if err != nil {
		return BuildResult{}, fmt.Errorf("load jobs: %w", err)
	}

	var total BuildResult
	var failed int
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		result, err := uc.BuildReportsForJob(ctx, job.ID, nil)
		if err != nil {
			failed++
			uc.log.Error("rebuild failed", zap.Uint("job_id", job.ID), zap.Error(err))
			continue
		}
		total.Created += result.Created
		total.Updated += result.Updated
	}
	if failed > 0 {
		return total, fmt.Errorf("rebuild failed for %d of %d jobs", failed, len(jobs))
	}
	return total, nil
}
