package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pacificreef/constants"
	"pacificreef/dto"
	"pacificreef/models"
	"pacificreef/response"
	"pacificreef/services"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUsers lists users, optionally filtered by role and/or status.
func (uc *UserController) GetUsers(c *gin.Context) {
	roleParam := c.Query("role")
	statusParam := c.Query("status")

	var (
		users []models.User
		err   error
	)

	switch {
	case roleParam != "" && statusParam != "":
		role, roleErr := strconv.Atoi(roleParam)
		status, statusErr := strconv.Atoi(statusParam)
		if roleErr != nil || statusErr != nil {
			response.BadRequest(c, "invalid role or status filter")
			return
		}
		users, err = uc.userService.FindByRoleAndStatus(c.Request.Context(), role, status)
	case roleParam != "":
		role, roleErr := strconv.Atoi(roleParam)
		if roleErr != nil {
			response.BadRequest(c, "invalid role filter")
			return
		}
		users, err = uc.userService.FindByRole(c.Request.Context(), role)
	case statusParam != "":
		status, statusErr := strconv.Atoi(statusParam)
		if statusErr != nil {
			response.BadRequest(c, "invalid status filter")
			return
		}
		users, err = uc.userService.FindByStatus(c.Request.Context(), status)
	default:
		users, err = uc.userService.FindByStatus(c.Request.Context(), constants.UserStatusActive)
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toUserResponses(users))
}

func (uc *UserController) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	user, err := uc.userService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(user))
}

// SearchUsers matches the query against first and last names and offers
// fuzzy suggestions when the exact search comes back thin.
func (uc *UserController) SearchUsers(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.BadRequest(c, "name query param is required")
		return
	}

	users, err := uc.userService.SearchByName(c.Request.Context(), name)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	result := dto.NameSearchResponse{Users: toUserResponses(users)}
	if len(users) == 0 {
		suggestions, sErr := uc.userService.SuggestNames(c.Request.Context(), name)
		if sErr == nil {
			result.Suggestions = suggestions
		}
	}

	response.Success(c, result)
}

func (uc *UserController) GetUserStats(c *gin.Context) {
	ctx := c.Request.Context()

	admins, err := uc.userService.CountByRole(ctx, constants.RoleAdmin)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	clients, err := uc.userService.CountByRole(ctx, constants.RoleClient)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	active, err := uc.userService.CountByStatus(ctx, constants.UserStatusActive)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	inactive, err := uc.userService.CountByStatus(ctx, constants.UserStatusInactive)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.UserStatsResponse{
		Admins:   admins,
		Clients:  clients,
		Active:   active,
		Inactive: inactive,
	})
}

// GetInactiveUsers lists users with no login in the given number of days
// (default 30).
func (uc *UserController) GetInactiveUsers(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		response.BadRequest(c, "invalid days filter")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	users, err := uc.userService.FindInactiveSince(c.Request.Context(), cutoff)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toUserResponses(users))
}

func toUserResponses(users []models.User) []dto.UserResponse {
	results := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		results = append(results, dto.NewUserResponse(&users[i]))
	}
	return results
}
