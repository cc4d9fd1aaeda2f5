package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fadilmartias/cv-matcher/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResumeUsecase(t *testing.T, f *fixture, text string) *ResumeUsecase {
	t.Helper()
	extract := func(string) string { return text }
	return NewResumeUsecase(f.resumes, f.jobs, f.reports, extract, testutil.Logger(t))
}

func TestCreateResume(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := uuid.New()
	uc := newResumeUsecase(t, f, strongPlain)

	_, err := uc.CreateResume(ctx, uuid.Nil, "cv", "cv.pdf")
	assert.True(t, errors.Is(err, ErrOwnerRequired))

	_, err = uc.CreateResume(ctx, owner, " ", "cv.pdf")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = uc.CreateResume(ctx, owner, strings.Repeat("x", 101), "cv.pdf")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	res, err := uc.CreateResume(ctx, owner, " My CV ", "cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "My CV", res.Title)
	assert.Equal(t, strongPlain, res.Content)
	assert.Equal(t, owner, res.UserID)

	list, err := uc.ListResumes(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateResume_UnreadableFileIsStored(t *testing.T) {
	f := newFixture(t)
	uc := newResumeUsecase(t, f, "")

	res, err := uc.CreateResume(context.Background(), uuid.New(), "scan", "scan.pdf")
	require.NoError(t, err)
	assert.Empty(t, res.Content)
}

func TestDeleteResume(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := uuid.New()
	uc := newResumeUsecase(t, f, strongPlain)

	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o600))
	res, err := uc.CreateResume(ctx, owner, "cv", path)
	require.NoError(t, err)

	job := f.backendJob(t)
	_, err = f.matches.BuildReportsForJob(ctx, job.ID, &owner)
	require.NoError(t, err)

	assert.True(t, errors.Is(uc.DeleteResume(ctx, res.ID, uuid.New()), ErrResumeNotFound))

	require.NoError(t, uc.DeleteResume(ctx, res.ID, owner))
	assert.NoFileExists(t, path)
	assert.Equal(t, int64(0), testutil.CountReports(t, f.db))

	_, err = uc.GetResume(ctx, res.ID, owner)
	assert.True(t, errors.Is(err, ErrResumeNotFound))
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := uuid.New()
	uc := newResumeUsecase(t, f, "")

	_, err := uc.DashboardStats(ctx, uuid.Nil)
	assert.True(t, errors.Is(err, ErrOwnerRequired))

	for i := 0; i < 6; i++ {
		f.backendJob(t)
	}
	f.resume(t, owner, "a", strongPlain)
	f.resume(t, owner, "b", weak)
	f.resume(t, uuid.New(), "foreign", strongPlain)

	_, err = f.matches.BuildReportsForJob(ctx, 1, &owner)
	require.NoError(t, err)

	stats, err := uc.DashboardStats(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalResumes)
	assert.Equal(t, int64(6), stats.TotalJobs)
	assert.Equal(t, int64(2), stats.TotalReports)
	assert.Len(t, stats.RecentJobs, 5)
	assert.Len(t, stats.RecentResumes, 2)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = uc.DashboardStats(cancelled, owner)
	assert.ErrorIs(t, err, context.Canceled)
}
