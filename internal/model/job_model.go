package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type Job struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Title       string           `gorm:"type:varchar(150)" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	Skills      string           `gorm:"type:text" json:"skills"` // comma separated
	Embedding   *pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
