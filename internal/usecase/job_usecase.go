package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/cv-matcher/internal/model"
	"github.com/fadilmartias/cv-matcher/internal/repository"
	"github.com/fadilmartias/cv-matcher/internal/response"
	"github.com/fadilmartias/cv-matcher/internal/service"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultSemanticTopK = 5

type JobInput struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Skills      string `json:"skills" form:"skills"`
}

func (in JobInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	if len(in.Title) > 150 {
		return fmt.Errorf("%w: title must be at most 150 characters", ErrInvalidArgument)
	}
	return nil
}

type JobPage struct {
	Jobs       []model.Job
	Pagination *response.Pagination
}

type JobUsecase struct {
	jobRepo    *repository.JobRepository
	resumeRepo *repository.ResumeRepository
	embedder   service.Embedder
	log        *zap.Logger
}

// NewJobUsecase accepts a nil embedder; semantic search is then unavailable.
func NewJobUsecase(jobRepo *repository.JobRepository, resumeRepo *repository.ResumeRepository, embedder service.Embedder, log *zap.Logger) *JobUsecase {
	return &JobUsecase{
		jobRepo:    jobRepo,
		resumeRepo: resumeRepo,
		embedder:   embedder,
		log:        log.Named("job"),
	}
}

func (uc *JobUsecase) CreateJob(ctx context.Context, in JobInput) (*model.Job, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	job := &model.Job{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Skills:      in.Skills,
	}
	if err := uc.jobRepo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	uc.embedJob(ctx, job)
	return job, nil
}

func (uc *JobUsecase) UpdateJob(ctx context.Context, id uint, in JobInput) (*model.Job, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	job, err := uc.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	job.Title = strings.TrimSpace(in.Title)
	job.Description = in.Description
	job.Skills = in.Skills
	if err := uc.jobRepo.UpdateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("update job %d: %w", id, err)
	}
	uc.embedJob(ctx, job)
	return job, nil
}

func (uc *JobUsecase) GetJob(ctx context.Context, id uint) (*model.Job, error) {
	job, err := uc.jobRepo.FindJobByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrJobNotFound, id)
		}
		return nil, fmt.Errorf("load job %d: %w", id, err)
	}
	return job, nil
}

func (uc *JobUsecase) ListJobs(ctx context.Context, search string, page, pageSize int) (*JobPage, error) {
	page, pageSize = response.NormalizePage(page, pageSize)
	jobs, total, err := uc.jobRepo.ListJobs(ctx, search, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return &JobPage{
		Jobs:       jobs,
		Pagination: response.NewPagination(page, pageSize, total, len(jobs)),
	}, nil
}

// DeleteJob removes the job; its match reports go with it.
func (uc *JobUsecase) DeleteJob(ctx context.Context, id uint) error {
	if err := uc.jobRepo.DeleteJob(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", ErrJobNotFound, id)
		}
		return fmt.Errorf("delete job %d: %w", id, err)
	}
	return nil
}

// SemanticJobs returns the topK jobs whose embeddings are closest to the
// resume's. Non-positive topK falls back to a default.
func (uc *JobUsecase) SemanticJobs(ctx context.Context, resumeID uint, owner uuid.UUID, topK int) ([]model.Job, error) {
	if uc.embedder == nil {
		return nil, ErrNoEmbedder
	}
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
	if strings.TrimSpace(res.Content) == "" {
		return nil, fmt.Errorf("%w: resume %d has no extracted text", ErrInvalidArgument, resumeID)
	}
	if topK <= 0 {
		topK = defaultSemanticTopK
	}

	embedding, err := uc.embedder.GenerateEmbedding(ctx, res.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: embed resume: %v", ErrUnavailable, err)
	}
	jobs, err := uc.jobRepo.SearchJobs(ctx, pgvector.NewVector(embedding), topK)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	return jobs, nil
}

// embedJob stores the job's embedding. Failures are logged and never fail the write.
func (uc *JobUsecase) embedJob(ctx context.Context, job *model.Job) {
	if uc.embedder == nil {
		return
	}
	text := job.Title + "\n" + job.Skills + "\n" + job.Description
	embedding, err := uc.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		uc.log.Warn("job embedding failed", zap.Uint("job_id", job.ID), zap.Error(err))
		return
	}
	vec := pgvector.NewVector(embedding)
	if err := uc.jobRepo.UpdateEmbedding(ctx, job.ID, vec); err != nil {
		uc.log.Warn("job embedding not saved", zap.Uint("job_id", job.ID), zap.Error(err))
		return
	}
	job.Embedding = &vec
}
