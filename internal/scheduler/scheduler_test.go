package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fadilmartias/cv-matcher/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRebuilder struct {
	calls    int
	deadline bool
	err      error
}

func (f *fakeRebuilder) RebuildAllJobs(ctx context.Context) (usecase.BuildResult, error) {
	f.calls++
	_, f.deadline = ctx.Deadline()
	return usecase.BuildResult{Created: 1}, f.err
}

func TestNew(t *testing.T) {
	c, err := New("*/5 * * * *", time.Minute, &fakeRebuilder{}, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)

	_, err = New("every tuesday", time.Minute, &fakeRebuilder{}, zap.NewNop())
	assert.Error(t, err)
}

func TestRunOnce(t *testing.T) {
	r := &fakeRebuilder{}
	RunOnce(context.Background(), time.Minute, r, zap.NewNop())
	assert.Equal(t, 1, r.calls)
	assert.True(t, r.deadline)

	r = &fakeRebuilder{err: errors.New("boom")}
	RunOnce(context.Background(), 0, r, zap.NewNop())
	assert.Equal(t, 1, r.calls)
	assert.False(t, r.deadline)
}
