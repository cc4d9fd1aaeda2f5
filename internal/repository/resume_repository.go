package repository

import (
	"context"

	"github.com/fadilmartias/cv-matcher/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db}
}

func (r *ResumeRepository) WithTx(tx *gorm.DB) *ResumeRepository {
	return &ResumeRepository{tx}
}

func (r *ResumeRepository) CreateResume(ctx context.Context, resume *model.Resume) error {
	return r.db.WithContext(ctx).Create(resume).Error
}

// DeleteResume removes the resume only when it belongs to owner.
func (r *ResumeRepository) DeleteResume(ctx context.Context, id uint, owner uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, owner).Delete(&model.Resume{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindOwnedResume returns gorm.ErrRecordNotFound when the resume does not exist
// or belongs to another user.
func (r *ResumeRepository) FindOwnedResume(ctx context.Context, id uint, owner uuid.UUID) (*model.Resume, error) {
	var res model.Resume
	err := r.db.WithContext(ctx).First(&res, "id = ? AND user_id = ?", id, owner).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ListResumes returns every resume, or only owner's when owner is non-nil, in id order.
func (r *ResumeRepository) ListResumes(ctx context.Context, owner *uuid.UUID) ([]model.Resume, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if owner != nil {
		q = q.Where("user_id = ?", *owner)
	}
	var resumes []model.Resume
	err := q.Find(&resumes).Error
	return resumes, err
}

// LatestResume returns nil, nil when owner has no resume.
func (r *ResumeRepository) LatestResume(ctx context.Context, owner uuid.UUID) (*model.Resume, error) {
	var res model.Resume
	err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&res).Error
	if err != nil {
		return nil, err
	}
	if res.ID == 0 {
		return nil, nil
	}
	return &res, nil
}

func (r *ResumeRepository) RecentResumes(ctx context.Context, owner uuid.UUID, n int) ([]model.Resume, error) {
	var resumes []model.Resume
	err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at DESC, id DESC").
		Limit(n).
		Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepository) CountResumes(ctx context.Context, owner uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Resume{}).Where("user_id = ?", owner).Count(&n).Error
	return n, err
}
