package testutil

import (
	"context"
	"testing"

	"github.com/fadilmartias/cv-matcher/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func SeedJob(tb testing.TB, ctx context.Context, db *gorm.DB, title, description, skills string) *model.Job {
	tb.Helper()
	j := &model.Job{
		Title:       title,
		Description: description,
		Skills:      skills,
	}
	if err := db.WithContext(ctx).Create(j).Error; err != nil {
		tb.Fatalf("seed job: %v", err)
	}
	return j
}

// SeedResume stores a resume whose content is already extracted text.
func SeedResume(tb testing.TB, ctx context.Context, db *gorm.DB, owner uuid.UUID, title, content string) *model.Resume {
	tb.Helper()
	r := &model.Resume{
		UserID:   owner,
		Title:    title,
		FilePath: "",
		Content:  content,
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed resume: %v", err)
	}
	return r
}

func CountReports(tb testing.TB, db *gorm.DB) int64 {
	tb.Helper()
	var n int64
	if err := db.Model(&model.MatchReport{}).Count(&n).Error; err != nil {
		tb.Fatalf("count reports: %v", err)
	}
	return n
}
