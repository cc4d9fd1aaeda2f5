package dto

import (
	"time"

	"github.com/fadilmartias/cv-matcher/internal/model"
)

type JobDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Skills      string    `json:"skills"`
	HasVector   bool      `json:"has_vector"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewJobDTO(j model.Job) JobDTO {
	return JobDTO{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Skills:      j.Skills,
		HasVector:   j.Embedding != nil,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func NewJobDTOs(jobs []model.Job) []JobDTO {
	out := make([]JobDTO, len(jobs))
	for i, j := range jobs {
		out[i] = NewJobDTO(j)
	}
	return out
}
