package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pacificreef/constants"
	"pacificreef/errors"
	"pacificreef/response"
)

// getPaginationParams parses page/limit query params with defaults.
func getPaginationParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = constants.DefaultPage
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = constants.DefaultLimit
	}
	return page, limit
}

// handleServiceError maps an AppError to the response envelope.
func handleServiceError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeNotFound:
		response.NotFound(c)
	case errors.ErrCodeInvalidState:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeDBError:
		response.ServerError(c)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken:
		response.Unauthorized(c)
	default:
		response.BadRequest(c, appErr.Message)
	}
}
