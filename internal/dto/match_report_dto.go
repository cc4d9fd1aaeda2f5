package dto

import (
	"time"

	"github.com/fadilmartias/cv-matcher/internal/matching"
	"github.com/fadilmartias/cv-matcher/internal/model"
)

// MatchReportDTO is a match report with the titles of its resume and job.
type MatchReportDTO struct {
	ID                 uint                         `json:"id"`
	ResumeID           uint                         `json:"resume_id"`
	ResumeTitle        string                       `json:"resume_title"`
	JobID              uint                         `json:"job_id"`
	JobTitle           string                       `json:"job_title"`
	Score              float64                      `json:"score"`
	AtsScore           int                          `json:"ats_score"`
	MissingSkills      []string                     `json:"missing_skills"`
	Improvements       []string                     `json:"improvements"`
	TailoredSummary    string                       `json:"tailored_summary,omitempty"`
	CoverLetter        string                       `json:"cover_letter,omitempty"`
	InterviewQuestions []matching.InterviewQuestion `json:"interview_questions"`
	UpdatedAt          time.Time                    `json:"updated_at"`
}

func NewMatchReportDTO(r model.MatchReport) MatchReportDTO {
	return MatchReportDTO{
		ID:                 r.ID,
		ResumeID:           r.ResumeID,
		ResumeTitle:        r.Resume.Title,
		JobID:              r.JobID,
		JobTitle:           r.Job.Title,
		Score:              r.Score,
		AtsScore:           r.AtsScore,
		MissingSkills:      emptyIfNil(r.MissingSkills),
		Improvements:       emptyIfNil(r.Improvements),
		TailoredSummary:    r.TailoredSummary,
		CoverLetter:        r.CoverLetter,
		InterviewQuestions: emptyIfNil(r.InterviewQuestions),
		UpdatedAt:          r.UpdatedAt,
	}
}

func NewMatchReportDTOs(reports []model.MatchReport) []MatchReportDTO {
	out := make([]MatchReportDTO, len(reports))
	for i, r := range reports {
		out[i] = NewMatchReportDTO(r)
	}
	return out
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
