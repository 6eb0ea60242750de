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

type TestimonialService interface {
	ListActiveTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	ListAllTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uint) error
}

type TestimonialHandler struct {
	svc  TestimonialService
	uSvc UserService
}

func NewTestimonialHandler(svc TestimonialService, uSvc UserService) *TestimonialHandler {
	return &TestimonialHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListTestimonials godoc
// @Summary      List active testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}   domain.Testimonial
// @Failure      500  {object}  response.Err
// @Router       /testimonials [get]
func (h *TestimonialHandler) HandleListTestimonials(ctx *gin.Context) {
	testimonials, err := h.svc.ListActiveTestimonials(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListTestimonials -> h.svc.ListActiveTestimonials -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, testimonials)
}

// HandleListAllTestimonials godoc
// @Summary      List all testimonials, including hidden ones
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}   domain.Testimonial
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /testimonials/all [get]
// @Security BearerAuth
func (h *TestimonialHandler) HandleListAllTestimonials(ctx *gin.Context) {
	if _, respErr := getAdminFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	testimonials, err := h.svc.ListAllTestimonials(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAllTestimonials -> h.svc.ListAllTestimonials -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, testimonials)
}

// HandleCreateTestimonial godoc
// @Summary      Create a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateTestimonialRequest  true  "request body"
// @Success      201      {object}  domain.Testimonial
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /testimonials [post]
// @Security BearerAuth
func (h *TestimonialHandler) HandleCreateTestimonial(ctx *gin.Context) {
	if _, respErr := getAdminFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateTestimonialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateTestimonial(ctx.Request.Context(), testimonialFromRequest(0, req))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTestimonial -> h.svc.CreateTestimonial -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateTestimonial godoc
// @Summary      Update a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        testimonialID  path      int                               true  "testimonial id"
// @Param        request        body      request.UpdateTestimonialRequest  true  "request body"
// @Success      200            {object}  domain.Testimonial
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /testimonials/{testimonialID} [put]
// @Security BearerAuth
func (h *TestimonialHandler) HandleUpdateTestimonial(ctx *gin.Context) {
	if _, respErr := getAdminFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	testimonialID, err := parseIDParam(ctx, "testimonialID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateTestimonialRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateTestimonial(ctx.Request.Context(), testimonialFromRequest(testimonialID, req.CreateTestimonialRequest))
	if err != nil {
		if errors.Is(err, service.ErrTestimonialNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("testimonial", "id", testimonialID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateTestimonial -> h.svc.UpdateTestimonial -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteTestimonial godoc
// @Summary      Delete a testimonial
// @Tags         testimonials
// @Produce      json
// @Param        testimonialID  path  int  true  "testimonial id"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /testimonials/{testimonialID} [delete]
// @Security BearerAuth
func (h *TestimonialHandler) HandleDeleteTestimonial(ctx *gin.Context) {
	if _, respErr := getAdminFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	testimonialID, err := parseIDParam(ctx, "testimonialID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteTestimonial(ctx.Request.Context(), testimonialID); err != nil {
		if errors.Is(err, service.ErrTestimonialNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("testimonial", "id", testimonialID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteTestimonial -> h.svc.DeleteTestimonial -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

func testimonialFromRequest(id uint, req request.CreateTestimonialRequest) domain.Testimonial {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return domain.Testimonial{
		ID:           id,
		ClientName:   req.ClientName,
		BusinessName: req.BusinessName,
		Comment:      req.Comment,
		Photo:        req.Photo,
		IsActive:     isActive,
		Order:        req.Order,
	}
}
