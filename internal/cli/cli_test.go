package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/fadilmartias/cv-matcher/internal/matching"
	"github.com/fadilmartias/cv-matcher/internal/testutil"
	"github.com/fadilmartias/cv-matcher/internal/usecase"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	d := newDeps(db, testutil.Logger(t))

	orig := depsFactory
	depsFactory = func(context.Context) (*deps, error) { return d, nil }
	t.Cleanup(func() { depsFactory = orig })

	owner := uuid.New()
	job := testutil.SeedJob(t, ctx, db, "Backend Developer", "Build APIs with Django", "python, django, sql")
	res := testutil.SeedResume(t, ctx, db, owner, "cv", "python django rest api developer")

	t.Run("rebuild", func(t *testing.T) {
		out, err := run(t, "rebuild", "--job", fmt.Sprint(job.ID))
		require.NoError(t, err)
		var result usecase.BuildResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, usecase.BuildResult{Created: 1, JobID: job.ID}, result)

		out, err = run(t, "rebuild", "--job", fmt.Sprint(job.ID), "--owner", owner.String())
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, usecase.BuildResult{Updated: 1, JobID: job.ID}, result)
	})

	t.Run("rebuild rejects bad owner", func(t *testing.T) {
		_, err := run(t, "rebuild", "--job", fmt.Sprint(job.ID), "--owner", "nope")
		assert.Error(t, err)
	})

	t.Run("rank", func(t *testing.T) {
		out, err := run(t, "rank", "--resume", fmt.Sprint(res.ID), "--owner", owner.String())
		require.NoError(t, err)
		var ranked []matching.RankedMatch
		require.NoError(t, json.Unmarshal([]byte(out), &ranked))
		require.Len(t, ranked, 1)
		assert.Equal(t, job.ID, ranked[0].Job.ID)
	})

	t.Run("ats", func(t *testing.T) {
		out, err := run(t, "ats", "--resume", fmt.Sprint(res.ID), "--job", fmt.Sprint(job.ID), "--owner", owner.String())
		require.NoError(t, err)
		var report matching.AtsReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, matching.RoleBackend, report.Breakdown.RoleDetected)
	})

	t.Run("missing job", func(t *testing.T) {
		_, err := run(t, "rebuild", "--job", "999", "--owner", "")
		assert.ErrorIs(t, err, usecase.ErrJobNotFound)
	})

	t.Run("rebuild all", func(t *testing.T) {
		out, err := run(t, "rebuild", "--all", "--job", "0", "--owner", "")
		require.NoError(t, err)
		var result usecase.BuildResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, usecase.BuildResult{Updated: 1}, result)
	})

	t.Run("rebuild needs exactly one target", func(t *testing.T) {
		_, err := run(t, "rebuild", "--all", "--job", fmt.Sprint(job.ID), "--owner", "")
		assert.Error(t, err)

		_, err = run(t, "rebuild", "--all=false", "--job", "0", "--owner", "")
		assert.Error(t, err)

		_, err = run(t, "rebuild", "--all", "--job", "0", "--owner", owner.String())
		assert.Error(t, err)
	})
}
