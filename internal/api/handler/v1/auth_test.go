package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectore-agency/vectore-api/internal/config"
	"github.com/vectore-agency/vectore-api/internal/domain"
	"github.com/vectore-agency/vectore-api/internal/pkg/jwthelper"
	"github.com/vectore-agency/vectore-api/internal/service"
)

type stubAuthService struct {
	login func(ctx context.Context, email, password string) (domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	return s.login(ctx, email, password)
}

func newAuthRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(&config.APIConfig{JWTSigningKey: "test-signing-key"}, svc)

	router := gin.New()
	router.POST("/auth/login", h.HandleLogin)

	return router
}

func TestHandleLogin(t *testing.T) {
	t.Run("returns a usable token", func(t *testing.T) {
		svc := &stubAuthService{
			login: func(_ context.Context, email, password string) (domain.User, error) {
				assert.Equal(t, "admin@vectore.com", email)
				assert.Equal(t, "Admin123!", password)

				return domain.User{ID: 1, Email: email, Role: "admin"}, nil
			},
		}
		router := newAuthRouter(svc)

		recorder := doJSON(t, router, http.MethodPost, "/auth/login",
			`{"email":"admin@vectore.com","password":"Admin123!"}`)

		require.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		require.NotEmpty(t, body["token"])

		claims, err := jwthelper.ParseToken([]byte("test-signing-key"), body["token"].(string))
		require.NoError(t, err)
		assert.EqualValues(t, 1, claims.UserID)
		assert.Equal(t, "admin", claims.Role)

		user := body["user"].(map[string]interface{})
		assert.Equal(t, "admin@vectore.com", user["email"])
		assert.NotContains(t, user, "password")
	})

	t.Run("bad credentials", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
		}{
			{"unknown email", service.ErrUserNotFound},
			{"wrong password", service.ErrWrongPassword},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				svc := &stubAuthService{
					login: func(context.Context, string, string) (domain.User, error) {
						return domain.User{}, tc.err
					},
				}
				router := newAuthRouter(svc)

				recorder := doJSON(t, router, http.MethodPost, "/auth/login",
					`{"email":"admin@vectore.com","password":"whatever1"}`)

				require.Equal(t, http.StatusUnauthorized, recorder.Code)
				assert.Equal(t, "invalid credentials", decodeBody(t, recorder)["message"])
			})
		}
	})

	t.Run("invalid request body", func(t *testing.T) {
		router := newAuthRouter(&stubAuthService{})

		recorder := doJSON(t, router, http.MethodPost, "/auth/login",
			`{"email":"not-an-email","password":"Admin123!"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
