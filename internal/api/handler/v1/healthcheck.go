package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         healthcheck
// @Produce      json
// @Success      200
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Vectore API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
