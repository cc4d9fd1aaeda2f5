package repository

import (
	"context"
	"strings"

	"github.com/fadilmartias/cv-matcher/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// WithTx returns a repository bound to tx.
func (r *JobRepository) WithTx(tx *gorm.DB) *JobRepository {
	return &JobRepository{tx}
}

// SearchJobs returns the jobs closest to embedding by cosine distance.
// Jobs without an embedding are skipped. Postgres with pgvector only.
func (r *JobRepository) SearchJobs(ctx context.Context, embedding pgvector.Vector, topK int) ([]model.Job, error) {
	var jobs []model.Job

	err := r.db.WithContext(ctx).Raw(`
        SELECT *
        FROM jobs
        WHERE embedding IS NOT NULL
        ORDER BY embedding <=> ?
        LIMIT ?
    `, embedding, topK).Scan(&jobs).Error

	return jobs, err
}

func (r *JobRepository) CreateJob(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) UpdateJob(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *JobRepository) UpdateEmbedding(ctx context.Context, id uint, embedding pgvector.Vector) error {
	return r.db.WithContext(ctx).Model(&model.Job{}).Where("id = ?", id).
		UpdateColumn("embedding", embedding).Error
}

func (r *JobRepository) DeleteJob(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Job{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *JobRepository) FindJobByID(ctx context.Context, id uint) (*model.Job, error) {
	var j model.Job
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepository) GetJobs(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).Order("id ASC").Find(&jobs).Error
	return jobs, err
}

// ListJobs pages through jobs newest first, optionally filtered by a search
// term over title, description and skills.
func (r *JobRepository) ListJobs(ctx context.Context, search string, page, pageSize int) ([]model.Job, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Job{})
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + escapeLike(strings.ToLower(s)) + "%"
		q = q.Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(skills) LIKE ? ESCAPE '\'`, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []model.Job
	err := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepository) RecentJobs(ctx context.Context, n int) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(n).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) CountJobs(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).Count(&n).Error
	return n, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
