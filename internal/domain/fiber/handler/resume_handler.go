package handler

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/cv-matcher/internal/dto"
	"github.com/fadilmartias/cv-matcher/internal/middleware"
	"github.com/fadilmartias/cv-matcher/internal/usecase"
	"github.com/fadilmartias/cv-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxResumeSize = 5 * 1024 * 1024

type ResumeHandler struct {
	resumes   *usecase.ResumeUsecase
	ranking   *usecase.RankingUsecase
	matches   *usecase.MatchUsecase
	jobs      *usecase.JobUsecase
	uploadDir string
}

func NewResumeHandler(resumes *usecase.ResumeUsecase, ranking *usecase.RankingUsecase, matches *usecase.MatchUsecase, jobs *usecase.JobUsecase, uploadDir string) *ResumeHandler {
	return &ResumeHandler{
		resumes:   resumes,
		ranking:   ranking,
		matches:   matches,
		jobs:      jobs,
		uploadDir: uploadDir,
	}
}

func (h *ResumeHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/dashboard/stats", middleware.RequireOwner(), h.DashboardStats)

	g := app.Group("/resumes", middleware.RequireOwner())
	g.Post("/", middleware.RateLimiter(5, time.Minute), h.Upload)
	g.Get("/", h.List)
	g.Get("/my-matches", h.MyMatches)
	g.Get("/:id", h.Get)
	g.Delete("/:id", h.Delete)
	g.Get("/:id/rank", h.Rank)
	g.Get("/:id/ats/:jobId", h.Ats)
	g.Post("/:id/reports/:jobId/enrich", middleware.RateLimiter(10, time.Minute), h.Enrich)
	g.Get("/:id/semantic-jobs", h.SemanticJobs)
}

func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required", nil)
	}
	if file.Size > maxResumeSize {
		return badRequest(c, "file size is too large (max 5MB)", nil)
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return badRequest(c, "only PDF files are supported", nil)
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return fail(c, "cannot save file", err)
	}
	savePath := filepath.Join(h.uploadDir, uuid.NewString()+".pdf")
	if err := c.SaveFile(file, savePath); err != nil {
		return fail(c, "cannot save file", err)
	}

	title := c.FormValue("title")
	if strings.TrimSpace(title) == "" {
		title = strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	}

	res, err := h.resumes.CreateResume(c.UserContext(), middleware.OwnerFrom(c), title, savePath)
	if err != nil {
		_ = os.Remove(savePath)
		return fail(c, "failed to store resume", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success upload resume",
		Data:    res,
		Meta:    fiber.Map{"has_text": res.Content != ""},
	})
}

func (h *ResumeHandler) List(c *fiber.Ctx) error {
	resumes, err := h.resumes.ListResumes(c.UserContext(), middleware.OwnerFrom(c))
	if err != nil {
		return fail(c, "failed to list resumes", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get resumes",
		Data:    resumes,
	})
}

func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid resume id", nil)
	}
	res, err := h.resumes.GetResume(c.UserContext(), id, middleware.OwnerFrom(c))
	if err != nil {
		return fail(c, "failed to get resume", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get resume",
		Data:    res,
	})
}

func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid resume id", nil)
	}
	if err := h.resumes.DeleteResume(c.UserContext(), id, middleware.OwnerFrom(c)); err != nil {
		return fail(c, "failed to delete resume", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success delete resume",
	})
}

func (h *ResumeHandler) MyMatches(c *fiber.Ctx) error {
	result, err := h.ranking.MyMatches(c.UserContext(), middleware.OwnerFrom(c))
	if err != nil {
		return fail(c, "failed to get matches", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get matches",
		Data:    result,
	})
}

func (h *ResumeHandler) Rank(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid resume id", nil)
	}
	ranked, err := h.ranking.RankJobsForResume(c.UserContext(), id, middleware.OwnerFrom(c))
	if err != nil {
		return fail(c, "failed to rank jobs", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success rank jobs",
		Data:    ranked,
	})
}

func (h *ResumeHandler) Ats(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid resume id", nil)
	}
	jobID, ok := paramID(c, "jobId")
	if !ok {
		return badRequest(c, "invalid job id", nil)
	}
	report, err := h.ranking.AtsReportForResume(c.UserContext(), id, jobID, middleware.OwnerFrom(c))
	if err != nil {
		return fail(c, "failed to build ATS report", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get ATS report",
		Data:    report,
	})
}

func (h *ResumeHandler) Enrich(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid resume id", nil)
	}
	jobID, ok := paramID(c, "jobId")
	if !ok {
		return badRequest(c, "invalid job id", nil)
	}
	result, err := h.matches.Enrich(c.UserContext(), id, jobID, middleware.OwnerFrom(c))
	if err != nil {
		return fail(c, "failed to enrich match report", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success enrich match report",
		Data:    dto.NewMatchReportDTO(result.Report),
		Meta:    fiber.Map{"generator": result.Generator},
	})
}

func (h *ResumeHandler) SemanticJobs(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid resume id", nil)
	}
	jobs, err := h.jobs.SemanticJobs(c.UserContext(), id, middleware.OwnerFrom(c), c.QueryInt("limit", 0))
	if err != nil {
		return fail(c, "failed to search jobs", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success search jobs",
		Data:    dto.NewJobDTOs(jobs),
	})
}

func (h *ResumeHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.resumes.DashboardStats(c.UserContext(), middleware.OwnerFrom(c))
	if err != nil {
		return fail(c, "failed to get dashboard stats", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get dashboard stats",
		Data:    stats,
	})
}
