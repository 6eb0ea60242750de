package v1

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vectore-agency/vectore-api/internal/api/handler/v1/response"
	"github.com/vectore-agency/vectore-api/internal/api/middleware"
	"github.com/vectore-agency/vectore-api/internal/domain"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

var errNotAuthenticated = errors.New("not authenticated")

func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	value, ok := ctx.Get(middleware.ContextKeyUserID)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errNotAuthenticated)
	}

	userID, ok := value.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errNotAuthenticated)
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, response.ErrUnauthorized(errNotAuthenticated)
	}

	return user, nil
}

// getAdminFromContext resolves the actor and enforces the admin role, which
// every back-office endpoint requires.
func getAdminFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	user, respErr := getUserFromContext(ctx, uSvc)
	if respErr != nil {
		return domain.User{}, respErr
	}

	if !user.IsAdmin() {
		return domain.User{}, response.ErrPermissionDenied(fmt.Errorf("user %v is not an administrator", user.ID))
	}

	return user, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %v", name)
	}

	return uint(id), nil
}
