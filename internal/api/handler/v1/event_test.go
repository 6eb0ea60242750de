package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectore-agency/vectore-api/internal/api/middleware"
	"github.com/vectore-agency/vectore-api/internal/domain"
	"github.com/vectore-agency/vectore-api/internal/service"
)

type stubEventService struct {
	getActiveEvent func(ctx context.Context) (domain.Event, error)
	join           func(ctx context.Context, eventID uint, name, phone, ip string) (service.JoinResult, error)
	listEvents     func(ctx context.Context) ([]domain.Event, error)
	createEvent    func(ctx context.Context, event domain.Event) (domain.Event, error)
	updateEvent    func(ctx context.Context, event domain.Event) (domain.Event, error)
	getStats       func(ctx context.Context, eventID uint) (domain.EventStats, error)
	draw           func(ctx context.Context, eventID uint) (domain.WinnerInfo, error)
}

func (s *stubEventService) GetActiveEvent(ctx context.Context) (domain.Event, error) {
	return s.getActiveEvent(ctx)
}

func (s *stubEventService) Join(ctx context.Context, eventID uint, name, phone, ip string) (service.JoinResult, error) {
	return s.join(ctx, eventID, name, phone, ip)
}

func (s *stubEventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.listEvents(ctx)
}

func (s *stubEventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	return s.createEvent(ctx, event)
}

func (s *stubEventService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	return s.updateEvent(ctx, event)
}

func (s *stubEventService) GetStats(ctx context.Context, eventID uint) (domain.EventStats, error) {
	return s.getStats(ctx, eventID)
}

func (s *stubEventService) Draw(ctx context.Context, eventID uint) (domain.WinnerInfo, error) {
	return s.draw(ctx, eventID)
}

type stubUserService struct {
	user domain.User
	err  error
}

func (s *stubUserService) GetUser(context.Context, uint) (domain.User, error) {
	return s.user, s.err
}

var adminUserService = &stubUserService{user: domain.User{ID: 1, Role: "admin"}}

// newEventRouter mounts the handler the way the server does. actor, when
// non-nil, is injected into the request context as the authenticated user.
func newEventRouter(h *EventHandler, actor *stubUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	if actor != nil {
		router.Use(func(ctx *gin.Context) {
			ctx.Set(middleware.ContextKeyUserID, actor.user.ID)
		})
	}

	router.GET("/events/active", h.HandleGetActiveEvent)
	router.POST("/events/:eventID/join", h.HandleJoinEvent)
	router.GET("/events", h.HandleListEvents)
	router.POST("/events", h.HandleCreateEvent)
	router.PUT("/events/:eventID", h.HandleUpdateEvent)
	router.GET("/events/:eventID/stats", h.HandleGetEventStats)
	router.POST("/events/:eventID/draw", h.HandleDrawWinner)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestHandleGetActiveEvent(t *testing.T) {
	t.Run("returns the public event shape", func(t *testing.T) {
		svc := &stubEventService{
			getActiveEvent: func(context.Context) (domain.Event, error) {
				winnerID := uint(7)
				return domain.Event{
					ID:       3,
					Title:    "Sorteo Navidad",
					Prize:    "Polo personalizado",
					EndDate:  time.Date(2024, time.December, 24, 23, 59, 0, 0, time.UTC),
					IsActive: true,
					WinnerID: &winnerID,
				}, nil
			},
		}
		router := newEventRouter(NewEventHandler(svc, adminUserService), nil)

		recorder := doJSON(t, router, http.MethodGet, "/events/active", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, true, body["active"])

		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Sorteo Navidad", data["title"])
		assert.NotContains(t, data, "winner_id")
		assert.NotContains(t, data, "is_active")
	})

	t.Run("no active event is a success", func(t *testing.T) {
		svc := &stubEventService{
			getActiveEvent: func(context.Context) (domain.Event, error) {
				return domain.Event{}, service.ErrNoActiveEvent
			},
		}
		router := newEventRouter(NewEventHandler(svc, adminUserService), nil)

		recorder := doJSON(t, router, http.MethodGet, "/events/active", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, false, body["active"])
		assert.NotContains(t, body, "data")
	})

	t.Run("a lapsed active event reports EXPIRED", func(t *testing.T) {
		svc := &stubEventService{
			getActiveEvent: func(context.Context) (domain.Event, error) {
				return domain.Event{}, service.ErrActiveEventExpired
			},
		}
		router := newEventRouter(NewEventHandler(svc, adminUserService), nil)

		recorder := doJSON(t, router, http.MethodGet, "/events/active", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, false, body["active"])
		assert.Equal(t, "EXPIRED", body["code"])
	})
}

func TestHandleJoinEvent(t *testing.T) {
	joinBody := `{"name":"María López","phone":"987654321"}`

	t.Run("new registration", func(t *testing.T) {
		svc := &stubEventService{
			join: func(_ context.Context, eventID uint, name, phone, ip string) (service.JoinResult, error) {
				assert.EqualValues(t, 3, eventID)
				assert.Equal(t, "María López", name)
				assert.Equal(t, "987654321", phone)
				assert.NotEmpty(t, ip)

				return service.JoinResult{TicketID: "VEC-123"}, nil
			},
		}
		router := newEventRouter(NewEventHandler(svc, adminUserService), nil)

		recorder := doJSON(t, router, http.MethodPost, "/events/3/join", joinBody)

		require.Equal(t, http.StatusCreated, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Registro exitoso", body["message"])
		assert.Equal(t, "VEC-123", body["ticket_id"])
		assert.NotContains(t, body, "already_registered")
	})

	t.Run("repeat registration is a success", func(t *testing.T) {
		svc := &stubEventService{
			join: func(context.Context, uint, string, string, string) (service.JoinResult, error) {
				return service.JoinResult{TicketID: "VEC-123", AlreadyRegistered: true}, nil
			},
		}
		router := newEventRouter(NewEventHandler(svc, adminUserService), nil)

		recorder := doJSON(t, router, http.MethodPost, "/events/3/join", joinBody)

		require.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, "Ya estás participando", body["message"])
		assert.Equal(t, "VEC-123", body["ticket_id"])
		assert.Equal(t, true, body["already_registered"])
	})

	t.Run("service errors map to public messages", func(t *testing.T) {
		tests := []struct {
			name        string
			err         error
			wantStatus  int
			wantMessage string
		}{
			{"unknown event", service.ErrEventNotFound, http.StatusNotFound, "Evento no disponible"},
			{"inactive event", service.ErrEventNotActive, http.StatusNotFound, "Evento no disponible"},
			{"ended event", service.ErrEventExpired, http.StatusBadRequest, "El evento ha finalizado"},
			{"saturated ip", service.ErrRateLimitExceeded, http.StatusBadRequest, "Límite de registros alcanzado para esta conexión"},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				svc := &stubEventService{
					join: func(context.Context, uint, string, string, string) (service.JoinResult, error) {
						return service.JoinResult{}, tc.err
					},
				}
				router := newEventRouter(NewEventHandler(svc, adminUserService), nil)

				recorder := doJSON(t, router, http.MethodPost, "/events/3/join", joinBody)

				require.Equal(t, tc.wantStatus, recorder.Code)
				body := decodeBody(t, recorder)
				assert.Equal(t, false, body["success"])
				assert.Equal(t, tc.wantMessage, body["message"])
			})
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name   string
			target string
			body   string
		}{
			{"bad event id", "/events/abc/join", joinBody},
			{"malformed json", "/events/3/join", `{"name":`},
			{"missing name", "/events/3/join", `{"phone":"987654321"}`},
			{"short phone", "/events/3/join", `{"name":"María","phone":"123"}`},
			{"letters in phone", "/events/3/join", `{"name":"María","phone":"98x65y321"}`},
		}

		svc := &stubEventService{
			join: func(context.Context, uint, string, string, string) (service.JoinResult, error) {
				t.Fatal("join should not be reached")

				return service.JoinResult{}, nil
			},
		}
		router := newEventRouter(NewEventHandler(svc, adminUserService), nil)

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				recorder := doJSON(t, router, http.MethodPost, tc.target, tc.body)

				assert.Equal(t, http.StatusBadRequest, recorder.Code)
			})
		}
	})
}

func TestHandleDrawWinner(t *testing.T) {
	t.Run("returns the masked winner", func(t *testing.T) {
		svc := &stubEventService{
			draw: func(_ context.Context, eventID uint) (domain.WinnerInfo, error) {
				assert.EqualValues(t, 3, eventID)

				return domain.WinnerInfo{
					Name:        "María López",
					TicketID:    "VEC-123",
					PhoneMasked: "******321",
				}, nil
			},
		}
		router := newEventRouter(NewEventHandler(svc, adminUserService), adminUserService)

		recorder := doJSON(t, router, http.MethodPost, "/events/3/draw", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		winner, ok := body["winner"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "María López", winner["name"])
		assert.Equal(t, "******321", winner["phone_masked"])
	})

	t.Run("empty event", func(t *testing.T) {
		svc := &stubEventService{
			draw: func(context.Context, uint) (domain.WinnerInfo, error) {
				return domain.WinnerInfo{}, service.ErrNoParticipants
			},
		}
		router := newEventRouter(NewEventHandler(svc, adminUserService), adminUserService)

		recorder := doJSON(t, router, http.MethodPost, "/events/3/draw", "")

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "No hay participantes", decodeBody(t, recorder)["message"])
	})

	t.Run("second draw conflicts", func(t *testing.T) {
		svc := &stubEventService{
			draw: func(context.Context, uint) (domain.WinnerInfo, error) {
				return domain.WinnerInfo{}, service.ErrAlreadyDrawn
			},
		}
		router := newEventRouter(NewEventHandler(svc, adminUserService), adminUserService)

		recorder := doJSON(t, router, http.MethodPost, "/events/3/draw", "")

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("requires authentication", func(t *testing.T) {
		router := newEventRouter(NewEventHandler(&stubEventService{}, adminUserService), nil)

		recorder := doJSON(t, router, http.MethodPost, "/events/3/draw", "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("requires the admin role", func(t *testing.T) {
		visitor := &stubUserService{user: domain.User{ID: 2, Role: "viewer"}}
		router := newEventRouter(NewEventHandler(&stubEventService{}, visitor), visitor)

		recorder := doJSON(t, router, http.MethodPost, "/events/3/draw", "")

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestHandleGetEventStats(t *testing.T) {
	svc := &stubEventService{
		getStats: func(_ context.Context, eventID uint) (domain.EventStats, error) {
			return domain.EventStats{
				Total: 120,
				Recent: []domain.Participant{
					{ID: 120, EventID: eventID, Name: "María", Phone: "987654321", TicketID: "VEC-123", IPAddress: "10.0.0.1"},
				},
			}, nil
		},
	}
	router := newEventRouter(NewEventHandler(svc, adminUserService), adminUserService)

	recorder := doJSON(t, router, http.MethodGet, "/events/3/stats", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.EqualValues(t, 120, body["total"])

	recent, ok := body["recent"].([]interface{})
	require.True(t, ok)
	require.Len(t, recent, 1)

	entry := recent[0].(map[string]interface{})
	assert.Equal(t, "María", entry["name"])
	// The source address never leaves the admin API.
	assert.NotContains(t, entry, "IPAddress")
	assert.NotContains(t, entry, "ip_address")
}

func TestHandleCreateEvent(t *testing.T) {
	t.Run("creates and returns 201", func(t *testing.T) {
		svc := &stubEventService{
			createEvent: func(_ context.Context, event domain.Event) (domain.Event, error) {
				assert.Equal(t, "Sorteo Navidad", event.Title)
				assert.True(t, event.IsActive)
				event.ID = 5

				return event, nil
			},
		}
		router := newEventRouter(NewEventHandler(svc, adminUserService), adminUserService)

		recorder := doJSON(t, router, http.MethodPost, "/events",
			`{"title":"Sorteo Navidad","prize":"Polo personalizado","end_date":"2024-12-24T23:59:00Z","is_active":true}`)

		require.Equal(t, http.StatusCreated, recorder.Code)
		body := decodeBody(t, recorder)
		assert.EqualValues(t, 5, body["id"])
	})

	t.Run("rejects a missing prize", func(t *testing.T) {
		router := newEventRouter(NewEventHandler(&stubEventService{}, adminUserService), adminUserService)

		recorder := doJSON(t, router, http.MethodPost, "/events",
			`{"title":"Sorteo Navidad","end_date":"2024-12-24T23:59:00Z"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandleUpdateEvent(t *testing.T) {
	t.Run("unknown event", func(t *testing.T) {
		svc := &stubEventService{
			updateEvent: func(context.Context, domain.Event) (domain.Event, error) {
				return domain.Event{}, service.ErrEventNotFound
			},
		}
		router := newEventRouter(NewEventHandler(svc, adminUserService), adminUserService)

		recorder := doJSON(t, router, http.MethodPut, "/events/42",
			`{"title":"Sorteo Navidad","prize":"Polo","end_date":"2024-12-24T23:59:00Z"}`)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("applies the edit", func(t *testing.T) {
		svc := &stubEventService{
			updateEvent: func(_ context.Context, event domain.Event) (domain.Event, error) {
				assert.EqualValues(t, 3, event.ID)
				assert.Equal(t, "Sorteo Navidad 2024", event.Title)

				return event, nil
			},
		}
		router := newEventRouter(NewEventHandler(svc, adminUserService), adminUserService)

		recorder := doJSON(t, router, http.MethodPut, "/events/3",
			`{"title":"Sorteo Navidad 2024","prize":"Polo","end_date":"2024-12-24T23:59:00Z"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
