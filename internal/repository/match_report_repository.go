package repository

import (
	"context"
	"strings"

	"github.com/fadilmartias/cv-matcher/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// scoringColumns are overwritten on every rebuild of a pair.
var scoringColumns = []string{"score", "ats_score", "missing_skills", "updated_at"}

type MatchReportRepository struct {
	db *gorm.DB
}

func NewMatchReportRepository(db *gorm.DB) *MatchReportRepository {
	return &MatchReportRepository{db}
}

func (r *MatchReportRepository) WithTx(tx *gorm.DB) *MatchReportRepository {
	return &MatchReportRepository{tx}
}

// FindByPair returns nil, nil when the pair has no report yet.
func (r *MatchReportRepository) FindByPair(ctx context.Context, resumeID, jobID uint) (*model.MatchReport, error) {
	var report model.MatchReport
	err := r.db.WithContext(ctx).
		Where("resume_id = ? AND job_id = ?", resumeID, jobID).
		Limit(1).
		Find(&report).Error
	if err != nil {
		return nil, err
	}
	if report.ID == 0 {
		return nil, nil
	}
	return &report, nil
}

// UpsertScores inserts the report or, when the pair already exists,
// overwrites its scoring columns in place. Concurrent writers for the same
// pair resolve to the last one.
func (r *MatchReportRepository) UpsertScores(ctx context.Context, report *model.MatchReport) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "resume_id"}, {Name: "job_id"}},
			DoUpdates: clause.AssignmentColumns(scoringColumns),
		}).
		Create(report).Error
}

// UpdateEnrichment writes the advisory and generated text fields of a report.
func (r *MatchReportRepository) UpdateEnrichment(ctx context.Context, report *model.MatchReport) error {
	return r.db.WithContext(ctx).
		Model(&model.MatchReport{ID: report.ID}).
		Select("improvements", "interview_questions", "tailored_summary", "cover_letter", "updated_at").
		Updates(report).Error
}

// ReportFilter narrows QueryForJob. Zero values disable a filter.
type ReportFilter struct {
	JobID    uint
	OwnerID  uuid.UUID
	MinScore *float64
	MustHave []string
	// Limit caps the result count when set; zero yields no rows.
	Limit *int
}

// QueryForJob returns the owner's reports for one job, best first. Ties on
// score are broken by id descending.
func (r *MatchReportRepository) QueryForJob(ctx context.Context, f ReportFilter) ([]model.MatchReport, error) {
	if f.Limit != nil && *f.Limit <= 0 {
		return []model.MatchReport{}, nil
	}

	q := r.db.WithContext(ctx).
		Model(&model.MatchReport{}).
		Select("match_reports.*").
		Joins("JOIN resumes ON resumes.id = match_reports.resume_id").
		Where("match_reports.job_id = ? AND resumes.user_id = ?", f.JobID, f.OwnerID)

	if f.MinScore != nil {
		q = q.Where("match_reports.score >= ?", *f.MinScore)
	}
	for _, kw := range f.MustHave {
		q = q.Where(`LOWER(resumes.content) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(kw))+"%")
	}
	q = q.Order("match_reports.score DESC, match_reports.id DESC")
	if f.Limit != nil {
		q = q.Limit(*f.Limit)
	}

	var reports []model.MatchReport
	err := q.Preload("Resume").Preload("Job").Find(&reports).Error
	return reports, err
}

func (r *MatchReportRepository) CountByOwner(ctx context.Context, owner uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.MatchReport{}).
		Joins("JOIN resumes ON resumes.id = match_reports.resume_id").
		Where("resumes.user_id = ?", owner).
		Count(&n).Error
	return n, err
}
