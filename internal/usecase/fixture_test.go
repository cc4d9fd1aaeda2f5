package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/cv-matcher/internal/matching"
	"github.com/fadilmartias/cv-matcher/internal/model"
	"github.com/fadilmartias/cv-matcher/internal/repository"
	"github.com/fadilmartias/cv-matcher/internal/testutil"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	backendTitle  = "Python Django Developer"
	backendDesc   = "Build Django REST APIs with Python and PostgreSQL"
	backendSkills = "python, django, docker, postgresql"

	strongDocker = "python django developer build django rest apis with python and postgresql docker"
	strongPlain  = "python django developer build django rest apis with python and postgresql"
	weak         = "react css html designer"
)

type fixture struct {
	db      *gorm.DB
	jobs    *repository.JobRepository
	resumes *repository.ResumeRepository
	reports *repository.MatchReportRepository
	matches *MatchUsecase
	ranking *RankingUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)

	f := &fixture{
		db:      db,
		jobs:    repository.NewJobRepository(db),
		resumes: repository.NewResumeRepository(db),
		reports: repository.NewMatchReportRepository(db),
	}
	normalizer := matching.NewNormalizer(nil)
	ranker := matching.NewRanker(normalizer)
	scorer := matching.NewScorer(normalizer)
	f.matches = NewMatchUsecase(db, f.jobs, f.resumes, f.reports, ranker, scorer, log)
	f.ranking = NewRankingUsecase(f.jobs, f.resumes, ranker, scorer, log)
	return f
}

func (f *fixture) backendJob(t *testing.T) *model.Job {
	t.Helper()
	return testutil.SeedJob(t, context.Background(), f.db, backendTitle, backendDesc, backendSkills)
}

func (f *fixture) resume(t *testing.T, owner uuid.UUID, title, content string) *model.Resume {
	t.Helper()
	return testutil.SeedResume(t, context.Background(), f.db, owner, title, content)
}

type fakeGenerator struct {
	name  string
	text  string
	err   error
	calls int
}

func (g *fakeGenerator) Name() string { return g.name }

func (g *fakeGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	g.calls++
	return g.text, g.err
}

type fakeEmbedder struct {
	vec []float32
	err error
}

func (e *fakeEmbedder) GenerateEmbedding(_ context.Context, _ string) ([]float32, error) {
	return e.vec, e.err
}

var errBoom = errors.New("boom")
