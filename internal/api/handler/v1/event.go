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

type EventService interface {
	GetActiveEvent(ctx context.Context) (domain.Event, error)
	Join(ctx context.Context, eventID uint, name, phone, ip string) (service.JoinResult, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetStats(ctx context.Context, eventID uint) (domain.EventStats, error)
	Draw(ctx context.Context, eventID uint) (domain.WinnerInfo, error)
}

type EventHandler struct {
	svc  EventService
	uSvc UserService
}

func NewEventHandler(svc EventService, uSvc UserService) *EventHandler {
	return &EventHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetActiveEvent godoc
// @Summary      Get the currently active giveaway
// @Description  Returns the joinable event, if any. An expired or missing event is reported as active=false, not as an error.
// @Tags         events
// @Produce      json
// @Success      200  {object}  response.ActiveEventResponse
// @Failure      500  {object}  response.Err
// @Router       /events/active [get]
func (h *EventHandler) HandleGetActiveEvent(ctx *gin.Context) {
	event, err := h.svc.GetActiveEvent(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoActiveEvent) {
			ctx.JSON(http.StatusOK, response.ActiveEventResponse{Success: true})

			return
		}
		if errors.Is(err, service.ErrActiveEventExpired) {
			ctx.JSON(http.StatusOK, response.ActiveEventResponse{Success: true, Code: "EXPIRED"})

			return
		}

		err = fmt.Errorf("v1.HandleGetActiveEvent -> h.svc.GetActiveEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.ActiveEventResponse{
		Success: true,
		Active:  true,
		Data:    response.NewPublicEvent(event),
	})
}

// HandleJoinEvent godoc
// @Summary      Join a giveaway
// @Description  Registers a name and phone for the event and returns the issued ticket. A repeat phone gets its existing ticket back.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                       true  "event id"
// @Param        request  body      request.JoinEventRequest  true  "request body"
// @Success      200      {object}  response.JoinEventResponse
// @Success      201      {object}  response.JoinEventResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/join [post]
func (h *EventHandler) HandleJoinEvent(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.JoinEventRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.Join(ctx.Request.Context(), eventID, req.Name, req.Phone, ctx.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound), errors.Is(err, service.ErrEventNotActive):
			response.RenderErr(ctx, &response.Err{
				StatusCode: http.StatusNotFound,
				Message:    "Evento no disponible",
			})
		case errors.Is(err, service.ErrEventExpired):
			response.RenderErr(ctx, &response.Err{
				StatusCode: http.StatusBadRequest,
				Message:    "El evento ha finalizado",
			})
		case errors.Is(err, service.ErrRateLimitExceeded):
			response.RenderErr(ctx, &response.Err{
				StatusCode: http.StatusBadRequest,
				Message:    "Límite de registros alcanzado para esta conexión",
			})
		default:
			err = fmt.Errorf("v1.HandleJoinEvent -> h.svc.Join -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	if result.AlreadyRegistered {
		ctx.JSON(http.StatusOK, response.JoinEventResponse{
			Success:           true,
			Message:           "Ya estás participando",
			TicketID:          result.TicketID,
			AlreadyRegistered: true,
		})

		return
	}

	ctx.JSON(http.StatusCreated, response.JoinEventResponse{
		Success:  true,
		Message:  "Registro exitoso",
		TicketID: result.TicketID,
	})
}

// HandleListEvents godoc
// @Summary      List all giveaways
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events [get]
// @Security BearerAuth
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	if _, respErr := getAdminFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleCreateEvent godoc
// @Summary      Create a giveaway
// @Description  Creates a new event. Marking it active deactivates every other event first.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEventRequest  true  "request body"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	if _, respErr := getAdminFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Prize:       req.Prize,
		PrizeImage:  req.PrizeImage,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
		Terms:       req.Terms,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateEvent godoc
// @Summary      Update a giveaway
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                         true  "event id"
// @Param        request  body      request.UpdateEventRequest  true  "request body"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [put]
// @Security BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	if _, respErr := getAdminFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateEventRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), domain.Event{
		ID:          eventID,
		Title:       req.Title,
		Description: req.Description,
		Prize:       req.Prize,
		PrizeImage:  req.PrizeImage,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
		Terms:       req.Terms,
	})
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleGetEventStats godoc
// @Summary      Get entry count and recent participants
// @Description  Returns the total number of entries plus the 50 most recent for the admin preview.
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200  {object}  response.EventStatsResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/stats [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetEventStats(ctx *gin.Context) {
	if _, respErr := getAdminFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	stats, err := h.svc.GetStats(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleGetEventStats -> h.svc.GetStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.EventStatsResponse{
		Success: true,
		Total:   stats.Total,
		Recent:  stats.Recent,
	})
}

// HandleDrawWinner godoc
// @Summary      Draw the giveaway winner
// @Description  Picks one participant uniformly at random, closes the event and returns the winner with a masked phone number. A second draw returns 409.
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200  {object}  response.DrawWinnerResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/draw [post]
// @Security BearerAuth
func (h *EventHandler) HandleDrawWinner(ctx *gin.Context) {
	if _, respErr := getAdminFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	winner, err := h.svc.Draw(ctx.Request.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "id", eventID))
		case errors.Is(err, service.ErrNoParticipants):
			response.RenderErr(ctx, &response.Err{
				StatusCode: http.StatusBadRequest,
				Message:    "No hay participantes",
			})
		case errors.Is(err, service.ErrAlreadyDrawn):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyDrawn))
		default:
			err = fmt.Errorf("v1.HandleDrawWinner -> h.svc.Draw -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.DrawWinnerResponse{
		Success: true,
		Winner:  winner,
	})
}
