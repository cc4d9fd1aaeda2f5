package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fadilmartias/cv-matcher/internal/model"
	"github.com/fadilmartias/cv-matcher/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const recentItems = 5

// TextExtractor turns an uploaded file into lowercase plain text. It returns
// an empty string when nothing can be read.
type TextExtractor func(path string) string

type DashboardStats struct {
	TotalResumes  int64          `json:"total_resumes"`
	TotalJobs     int64          `json:"total_jobs"`
	TotalReports  int64          `json:"total_reports"`
	RecentJobs    []model.Job    `json:"recent_jobs"`
	RecentResumes []model.Resume `json:"recent_resumes"`
}

type ResumeUsecase struct {
	resumeRepo *repository.ResumeRepository
	jobRepo    *repository.JobRepository
	reportRepo *repository.MatchReportRepository
	extract    TextExtractor
	log        *zap.Logger
}

func NewResumeUsecase(resumeRepo *repository.ResumeRepository, jobRepo *repository.JobRepository, reportRepo *repository.MatchReportRepository, extract TextExtractor, log *zap.Logger) *ResumeUsecase {
	return &ResumeUsecase{
		resumeRepo: resumeRepo,
		jobRepo:    jobRepo,
		reportRepo: reportRepo,
		extract:    extract,
		log:        log.Named("resume"),
	}
}

// CreateResume stores a resume for a file already saved at filePath. A file
// without readable text is still stored, with empty content.
func (uc *ResumeUsecase) CreateResume(ctx context.Context, owner uuid.UUID, title, filePath string) (*model.Resume, error) {
	if owner == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	if len(title) > 100 {
		return nil, fmt.Errorf("%w: title must be at most 100 characters", ErrInvalidArgument)
	}

	content := uc.extract(filePath)
	if content == "" {
		uc.log.Warn("no text extracted from resume", zap.String("path", filePath))
	}

	res := &model.Resume{
		UserID:   owner,
		Title:    title,
		FilePath: filePath,
		Content:  content,
	}
	if err := uc.resumeRepo.CreateResume(ctx, res); err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}
	uc.log.Info("resume stored",
		zap.Uint("resume_id", res.ID),
		zap.Int("content_len", len(content)),
	)
	return res, nil
}

func (uc *ResumeUsecase) ListResumes(ctx context.Context, owner uuid.UUID) ([]model.Resume, error) {
	if owner == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	resumes, err := uc.resumeRepo.ListResumes(ctx, &owner)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	return resumes, nil
}

func (uc *ResumeUsecase) GetResume(ctx context.Context, id uint, owner uuid.UUID) (*model.Resume, error) {
	if owner == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	res, err := uc.resumeRepo.FindOwnedResume(ctx, id, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrResumeNotFound, id)
		}
		return nil, fmt.Errorf("load resume %d: %w", id, err)
	}
	return res, nil
}

// DeleteResume removes the resume, its match reports and the stored file.
func (uc *ResumeUsecase) DeleteResume(ctx context.Context, id uint, owner uuid.UUID) error {
	res, err := uc.GetResume(ctx, id, owner)
	if err != nil {
		return err
	}
	if err := uc.resumeRepo.DeleteResume(ctx, id, owner); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", ErrResumeNotFound, id)
		}
		return fmt.Errorf("delete resume %d: %w", id, err)
	}
	if res.FilePath != "" {
		if err := os.Remove(res.FilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			uc.log.Warn("resume file not removed", zap.String("path", res.FilePath), zap.Error(err))
		}
	}
	return nil
}

func (uc *ResumeUsecase) DashboardStats(ctx context.Context, owner uuid.UUID) (*DashboardStats, error) {
	if owner == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	var stats DashboardStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if stats.TotalResumes, err = uc.resumeRepo.CountResumes(gctx, owner); err != nil {
			return fmt.Errorf("count resumes: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if stats.TotalJobs, err = uc.jobRepo.CountJobs(gctx); err != nil {
			return fmt.Errorf("count jobs: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if stats.TotalReports, err = uc.reportRepo.CountByOwner(gctx, owner); err != nil {
			return fmt.Errorf("count reports: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if stats.RecentJobs, err = uc.jobRepo.RecentJobs(gctx, recentItems); err != nil {
			return fmt.Errorf("recent jobs: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if stats.RecentResumes, err = uc.resumeRepo.RecentResumes(gctx, owner, recentItems); err != nil {
			return fmt.Errorf("recent resumes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
