package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/fadilmartias/cv-matcher/internal/matching"
	"github.com/fadilmartias/cv-matcher/internal/model"
	"github.com/fadilmartias/cv-matcher/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// JobAtsMatch is one row of MyMatches.
type JobAtsMatch struct {
	JobID              uint                         `json:"job_id"`
	JobTitle           string                       `json:"job_title"`
	AtsScore           int                          `json:"ats_score"`
	MissingSkills      []string                     `json:"missing_skills"`
	Improvements       []string                     `json:"improvements"`
	InterviewQuestions []matching.InterviewQuestion `json:"interview_questions"`
}

type MyMatchesResult struct {
	ResumeID    uint          `json:"resume_id"`
	ResumeTitle string        `json:"resume_title"`
	Matches     []JobAtsMatch `json:"matches"`
}

// RankingUsecase serves the ephemeral scoring operations; nothing it
// computes is persisted.
type RankingUsecase struct {
	jobRepo    *repository.JobRepository
	resumeRepo *repository.ResumeRepository
	ranker     *matching.Ranker
	scorer     *matching.Scorer
	log        *zap.Logger
}

func NewRankingUsecase(jobRepo *repository.JobRepository, resumeRepo *repository.ResumeRepository, ranker *matching.Ranker, scorer *matching.Scorer, log *zap.Logger) *RankingUsecase {
	return &RankingUsecase{
		jobRepo:    jobRepo,
		resumeRepo: resumeRepo,
		ranker:     ranker,
		scorer:     scorer,
		log:        log.Named("ranking"),
	}
}

// RankJobsForResume ranks every job against one of owner's resumes.
func (uc *RankingUsecase) RankJobsForResume(ctx context.Context, resumeID uint, owner uuid.UUID) ([]matching.RankedMatch, error) {
	res, err := uc.ownedResume(ctx, resumeID, owner)
	if err != nil {
		return nil, err
	}
	jobs, err := uc.jobRepo.GetJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}

	ranked := uc.ranker.RankJobs(res.Content, jobDocuments(jobs))
	uc.log.Debug("ranked jobs for resume",
		zap.Uint("resume_id", resumeID),
		zap.Int("jobs", len(ranked)),
	)
	return ranked, nil
}

// AtsReportForResume runs the full rule-based report for one pair.
func (uc *RankingUsecase) AtsReportForResume(ctx context.Context, resumeID, jobID uint, owner uuid.UUID) (matching.AtsReport, error) {
	res, err := uc.ownedResume(ctx, resumeID, owner)
	if err != nil {
		return matching.AtsReport{}, err
	}
	job, err := uc.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return matching.AtsReport{}, fmt.Errorf("%w: id %d", ErrJobNotFound, jobID)
		}
		return matching.AtsReport{}, fmt.Errorf("load job %d: %w", jobID, err)
	}
	return uc.scorer.FullReport(res.Content, job.Title, job.Description, job.Skills), nil
}

// MyMatches scores owner's most recent resume against every job with the full
// ATS report, best first. Equal scores keep job id order.
func (uc *RankingUsecase) MyMatches(ctx context.Context, owner uuid.UUID) (*MyMatchesResult, error) {
	res, err := uc.resumeRepo.LatestResume(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("load latest resume: %w", err)
	}
	if res == nil {
		return nil, ErrNoResume
	}
	jobs, err := uc.jobRepo.GetJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}

	matches := make([]JobAtsMatch, 0, len(jobs))
	for _, job := range jobs {
		report := uc.scorer.FullReport(res.Content, job.Title, job.Description, job.Skills)
		matches = append(matches, JobAtsMatch{
			JobID:              job.ID,
			JobTitle:           job.Title,
			AtsScore:           report.AtsScore,
			MissingSkills:      report.MissingSkills,
			Improvements:       report.Improvements,
			InterviewQuestions: report.InterviewQuestions,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].AtsScore > matches[j].AtsScore
	})

	return &MyMatchesResult{ResumeID: res.ID, ResumeTitle: res.Title, Matches: matches}, nil
}

func (uc *RankingUsecase) ownedResume(ctx context.Context, resumeID uint, owner uuid.UUID) (*model.Resume, error) {
	if owner == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	res, err := uc.resumeRepo.FindOwnedResume(ctx, resumeID, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrResumeNotFound, resumeID)
		}
		return nil, fmt.Errorf("load resume %d: %w", resumeID, err)
	}
	return res, nil
}
