package handler

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/cv-matcher/internal/dto"
	"github.com/fadilmartias/cv-matcher/internal/middleware"
	"github.com/fadilmartias/cv-matcher/internal/usecase"
	"github.com/fadilmartias/cv-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	jobs    *usecase.JobUsecase
	matches *usecase.MatchUsecase
}

func NewJobHandler(jobs *usecase.JobUsecase, matches *usecase.MatchUsecase) *JobHandler {
	return &JobHandler{jobs: jobs, matches: matches}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/jobs")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.Get)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	g.Get("/:id/matches", middleware.RequireOwner(), h.Matches)
	g.Post("/:id/reports/rebuild", middleware.RequireOwner(), h.Rebuild)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	page, err := h.jobs.ListJobs(c.UserContext(), c.Query("search"), c.QueryInt("page", 1), c.QueryInt("page_size", 0))
	if err != nil {
		return fail(c, "failed to list jobs", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success get jobs",
		Data:       dto.NewJobDTOs(page.Jobs),
		Pagination: page.Pagination,
	})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	in, formErr := parseJobForm(c)
	if formErr != nil {
		return invalidForm(c, formErr)
	}
	job, err := h.jobs.CreateJob(c.UserContext(), in)
	if err != nil {
		return fail(c, "failed to create job", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create job",
		Data:    dto.NewJobDTO(*job),
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid job id", nil)
	}
	job, err := h.jobs.GetJob(c.UserContext(), id)
	if err != nil {
		return fail(c, "failed to get job", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get job",
		Data:    dto.NewJobDTO(*job),
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid job id", nil)
	}
	in, formErr := parseJobForm(c)
	if formErr != nil {
		return invalidForm(c, formErr)
	}
	job, err := h.jobs.UpdateJob(c.UserContext(), id, in)
	if err != nil {
		return fail(c, "failed to update job", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update job",
		Data:    dto.NewJobDTO(*job),
	})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid job id", nil)
	}
	if err := h.jobs.DeleteJob(c.UserContext(), id); err != nil {
		return fail(c, "failed to delete job", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success delete job",
	})
}

// Matches rebuilds the caller's reports for the job and returns the best ones.
// must_have may be repeated or comma separated.
func (h *JobHandler) Matches(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid job id", nil)
	}
	owner := middleware.OwnerFrom(c)

	var mustHave []string
	for _, v := range c.Context().QueryArgs().PeekMulti("must_have") {
		mustHave = append(mustHave, string(v))
	}

	reports, err := h.matches.TopMatchesForJob(c.UserContext(), usecase.TopMatchesQuery{
		JobID:    id,
		Owner:    &owner,
		MinScore: c.Query("min_score"),
		MustHave: mustHave,
		Limit:    c.Query("limit"),
	})
	if err != nil {
		return fail(c, "failed to get matches", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get matches",
		Data:    dto.NewMatchReportDTOs(reports),
	})
}

func (h *JobHandler) Rebuild(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid job id", nil)
	}
	owner := middleware.OwnerFrom(c)
	result, err := h.matches.BuildReportsForJob(c.UserContext(), id, &owner)
	if err != nil {
		return fail(c, "failed to rebuild match reports", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success rebuild match reports",
		Data:    result,
	})
}

func parseJobForm(c *fiber.Ctx) (usecase.JobInput, *util.FormError) {
	var in usecase.JobInput
	if err := c.BodyParser(&in); err != nil {
		return in, util.NewFormError("invalid request body", map[string]string{"body": err.Error()})
	}
	errs := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		errs["title"] = "title is required"
	} else if len(in.Title) > 150 {
		errs["title"] = fmt.Sprintf("title must be at most %d characters", 150)
	}
	if len(errs) > 0 {
		return in, util.NewFormError("validation failed", errs)
	}
	return in, nil
}
