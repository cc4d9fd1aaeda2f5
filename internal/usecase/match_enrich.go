package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/cv-matcher/internal/logger"
	"github.com/fadilmartias/cv-matcher/internal/matching"
	"github.com/fadilmartias/cv-matcher/internal/model"
	"github.com/fadilmartias/cv-matcher/internal/service"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const maxPromptResume = 6000

const enrichPrompt = `You are helping a candidate apply for a job.

JOB TITLE: %s
JOB DESCRIPTION:
%s
REQUIRED SKILLS: %s

RESUME:
%s

DETECTED ROLE: %s
MISSING SKILLS: %s

Write a tailored professional summary (3-4 sentences) that highlights the
resume's strengths for this job, and a short cover letter (at most 200 words).
Do not invent experience that is not in the resume.

Return a JSON object with this exact structure:
{
  "tailored_summary": "<summary>",
  "cover_letter": "<cover letter>"
}`

// EnrichResult reports which generator, if any, produced the text fields.
type EnrichResult struct {
	Report    model.MatchReport `json:"report"`
	Generator string            `json:"generator,omitempty"`
}

// WithGenerators sets the language models tried in order by Enrich.
func (uc *MatchUsecase) WithGenerators(gens ...service.TextGenerator) *MatchUsecase {
	uc.generators = gens
	return uc
}

// Enrich fills the advisory fields of one pair's report from the full ATS
// report and, when a generator is configured, a tailored summary and cover
// letter. The report is built first if the pair has none.
func (uc *MatchUsecase) Enrich(ctx context.Context, resumeID, jobID uint, owner uuid.UUID) (*EnrichResult, error) {
	if owner == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	res, err := uc.resumeRepo.FindOwnedResume(ctx, resumeID, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrResumeNotFound, resumeID)
		}
		return nil, fmt.Errorf("load resume %d: %w", resumeID, err)
	}

	report, err := uc.reportRepo.FindByPair(ctx, resumeID, jobID)
	if err != nil {
		return nil, fmt.Errorf("find report: %w", err)
	}
	if report == nil {
		if _, err := uc.BuildReportsForJob(ctx, jobID, &owner); err != nil {
			return nil, err
		}
		if report, err = uc.reportRepo.FindByPair(ctx, resumeID, jobID); err != nil {
			return nil, fmt.Errorf("find report: %w", err)
		}
		if report == nil {
			return nil, fmt.Errorf("%w: resume %d job %d", ErrReportNotFound, resumeID, jobID)
		}
	}

	job, err := uc.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrJobNotFound, jobID)
		}
		return nil, fmt.Errorf("load job %d: %w", jobID, err)
	}

	ats := uc.scorer.FullReport(res.Content, job.Title, job.Description, job.Skills)
	report.Improvements = datatypes.JSONSlice[string](ats.Improvements)
	report.InterviewQuestions = datatypes.JSONSlice[matching.InterviewQuestion](ats.InterviewQuestions)

	result := &EnrichResult{}
	prompt := fmt.Sprintf(enrichPrompt,
		job.Title, job.Description, job.Skills,
		logger.Truncate(res.Content, maxPromptResume),
		ats.Breakdown.RoleDetected, strings.Join(ats.MissingSkills, ", "),
	)
	var genErr error
	for _, gen := range uc.generators {
		summary, letter, err := generateApplicationText(ctx, gen, prompt)
		if err != nil {
			uc.log.Warn("generator failed", zap.String("generator", gen.Name()), zap.Error(err))
			genErr = err
			continue
		}
		report.TailoredSummary = summary
		report.CoverLetter = letter
		result.Generator = gen.Name()
		genErr = nil
		break
	}

	if err := uc.reportRepo.UpdateEnrichment(ctx, report); err != nil {
		return nil, fmt.Errorf("update report %d: %w", report.ID, err)
	}
	// the rule-based fields are saved even when every generator failed
	if genErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLMUnavailable, genErr)
	}

	uc.log.Info("match report enriched",
		zap.Uint("report_id", report.ID),
		zap.String("generator", result.Generator),
	)
	result.Report = *report
	return result, nil
}

func generateApplicationText(ctx context.Context, gen service.TextGenerator, prompt string) (string, string, error) {
	text, err := gen.GenerateText(ctx, prompt)
	if err != nil {
		return "", "", err
	}
	text = stripCodeFence(text)
	if !gjson.Valid(text) {
		return "", "", fmt.Errorf("response is not valid JSON")
	}
	summary := strings.TrimSpace(gjson.Get(text, "tailored_summary").String())
	letter := strings.TrimSpace(gjson.Get(text, "cover_letter").String())
	if summary == "" && letter == "" {
		return "", "", fmt.Errorf("response has no summary or cover letter")
	}
	return summary, letter, nil
}

// stripCodeFence removes a surrounding ```json fence that models often add.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
