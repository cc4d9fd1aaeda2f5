package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fadilmartias/cv-matcher/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListJobs(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewJobRepository(db)

	for i := 1; i <= 3; i++ {
		testutil.SeedJob(t, ctx, db, fmt.Sprintf("Backend Developer %d", i), "apis", "python, django")
	}
	testutil.SeedJob(t, ctx, db, "Frontend Developer", "ui work", "react, css")

	jobs, total, err := repo.ListJobs(ctx, "", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, jobs, 2)

	jobs, total, err = repo.ListJobs(ctx, "REACT", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Frontend Developer", jobs[0].Title)

	_, total, err = repo.ListJobs(ctx, "%", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestGetJobs_IDOrder(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewJobRepository(db)

	a := testutil.SeedJob(t, ctx, db, "A", "", "")
	b := testutil.SeedJob(t, ctx, db, "B", "", "")

	jobs, err := repo.GetJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, a.ID, jobs[0].ID)
	assert.Equal(t, b.ID, jobs[1].ID)

	n, err := repo.CountJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewJobRepository(db)

	job := testutil.SeedJob(t, ctx, db, "A", "", "")
	require.NoError(t, repo.DeleteJob(ctx, job.ID))

	err := repo.DeleteJob(ctx, job.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.FindJobByID(ctx, job.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}
