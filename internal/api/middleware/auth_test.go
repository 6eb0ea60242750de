package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectore-agency/vectore-api/internal/pkg/jwthelper"
)

func newProtectedRouter(signingKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", NewAuthenticator(signingKey).VerifyJWT(), func(ctx *gin.Context) {
		userID := ctx.GetUint(ContextKeyUserID)
		ctx.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return router
}

func TestVerifyJWT(t *testing.T) {
	const signingKey = "test-signing-key"

	t.Run("valid token passes the user id along", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(signingKey), 42, "admin")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		newProtectedRouter(signingKey).ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"user_id":42}`, recorder.Body.String())
	})

	t.Run("rejects bad headers", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte("another-key"), 42, "admin")
		require.NoError(t, err)

		tests := []struct {
			name   string
			header string
		}{
			{"missing header", ""},
			{"not a bearer token", "Basic abc"},
			{"wrong signing key", "Bearer " + token},
			{"garbage token", "Bearer not.a.token"},
		}

		router := newProtectedRouter(signingKey)

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodGet, "/protected", nil)
				if tc.header != "" {
					req.Header.Set("Authorization", tc.header)
				}
				recorder := httptest.NewRecorder()

				router.ServeHTTP(recorder, req)

				assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			})
		}
	})
}
