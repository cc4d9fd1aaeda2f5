package model

import (
	"time"

	"github.com/fadilmartias/cv-matcher/internal/matching"
	"gorm.io/datatypes"
)

// MatchReport is the persisted scoring record of one (resume, job) pair.
// At most one row exists per pair.
type MatchReport struct {
	ID                 uint                                            `gorm:"primaryKey" json:"id"`
	ResumeID           uint                                            `gorm:"not null;uniqueIndex:idx_match_reports_resume_job" json:"resume_id"`
	JobID              uint                                            `gorm:"not null;uniqueIndex:idx_match_reports_resume_job;index" json:"job_id"`
	Resume             Resume                                          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Job                Job                                             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Score              float64                                         `gorm:"type:float;default:0" json:"score"`
	AtsScore           int                                             `gorm:"default:0" json:"ats_score"`
	MissingSkills      datatypes.JSONSlice[string]                     `json:"missing_skills"`
	Improvements       datatypes.JSONSlice[string]                     `json:"improvements"`
	TailoredSummary    string                                          `gorm:"type:text" json:"tailored_summary"`
	CoverLetter        string                                          `gorm:"type:text" json:"cover_letter"`
	InterviewQuestions datatypes.JSONSlice[matching.InterviewQuestion] `json:"interview_questions"`
	CreatedAt          time.Time                                       `json:"created_at"`
	UpdatedAt          time.Time                                       `json:"updated_at"`
}

func (m *MatchReport) TableName() string {
	return "match_reports"
}
