package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vectore-agency/vectore-api/internal/api/handler/v1/request"
	"github.com/vectore-agency/vectore-api/internal/api/handler/v1/response"
	"github.com/vectore-agency/vectore-api/internal/domain"
	"github.com/vectore-agency/vectore-api/internal/service"
)

type ProjectService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, project domain.Project) (domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) (domain.Project, error)
	DeleteProject(ctx context.Context, id uint) error
}

type ProjectHandler struct {
	svc  ProjectService
	uSvc UserService
}

func NewProjectHandler(svc ProjectService, uSvc UserService) *ProjectHandler {
	return &ProjectHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListProjects godoc
// @Summary      List portfolio projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   domain.Project
// @Failure      500  {object}  response.Err
// @Router       /projects [get]
func (h *ProjectHandler) HandleListProjects(ctx *gin.Context) {
	projects, err := h.svc.ListProjects(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListProjects -> h.svc.ListProjects -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// HandleCreateProject godoc
// @Summary      Create a portfolio project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateProjectRequest  true  "request body"
// @Success      201      {object}  domain.Project
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /projects [post]
// @Security BearerAuth
func (h *ProjectHandler) HandleCreateProject(ctx *gin.Context) {
	if _, respErr := getAdminFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateProject(ctx.Request.Context(), projectFromRequest(0, req))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateProject -> h.svc.CreateProject -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateProject godoc
// @Summary      Update a portfolio project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        projectID  path      int                           true  "project id"
// @Param        request    body      request.UpdateProjectRequest  true  "request body"
// @Success      200        {object}  domain.Project
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /projects/{projectID} [put]
// @Security BearerAuth
func (h *ProjectHandler) HandleUpdateProject(ctx *gin.Context) {
	if _, respErr := getAdminFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	projectID, err := parseIDParam(ctx, "projectID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateProjectRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateProject(ctx.Request.Context(), projectFromRequest(projectID, req.CreateProjectRequest))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("project", "id", projectID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateProject -> h.svc.UpdateProject -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteProject godoc
// @Summary      Delete a portfolio project
// @Tags         projects
// @Produce      json
// @Param        projectID  path  int  true  "project id"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /projects/{projectID} [delete]
// @Security BearerAuth
func (h *ProjectHandler) HandleDeleteProject(ctx *gin.Context) {
	if _, respErr := getAdminFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	projectID, err := parseIDParam(ctx, "projectID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteProject(ctx.Request.Context(), projectID); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("project", "id", projectID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteProject -> h.svc.DeleteProject -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

func projectFromRequest(id uint, req request.CreateProjectRequest) domain.Project {
	images := make([]domain.ProjectImage, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, domain.ProjectImage{URL: img.URL, Caption: img.Caption})
	}

	return domain.Project{
		ID:          id,
		Title:       req.Title,
		Client:      req.Client,
		Category:    req.Category,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Images:      images,
		Tags:        req.Tags,
		Date:        req.Date,
		IsFeatured:  req.IsFeatured,
	}
}
