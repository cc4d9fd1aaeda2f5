package model

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Title     string    `gorm:"type:varchar(100)" json:"title"`
	FilePath  string    `gorm:"type:text" json:"file_path"`
	Content   string    `gorm:"type:text" json:"-"` // extracted lowercase text
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}
