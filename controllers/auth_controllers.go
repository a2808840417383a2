package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pacificreef/dto"
	"pacificreef/response"
	"pacificreef/services"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (ac *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := ac.authService.Login(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, resp)
}

func (ac *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := ac.authService.Register(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(user))
}

func (ac *AuthController) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	ac.authService.Logout(c.Request.Context(), token)

	for _, cookie := range c.Request.Cookies() {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func (ac *AuthController) Refresh(c *gin.Context) {
	var input dto.RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	accessToken, err := ac.authService.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"accessToken": accessToken})
}

func (ac *AuthController) GoogleLogin(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := ac.authService.GoogleLogin(c.Request.Context(), input.IDToken)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, resp)
}
