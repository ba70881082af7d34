package controller

import (
	"errors"
	"net/http"

	"pathfinder_backend/internal/service"
	"pathfinder_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register godoc
// @Summary Create an account
// @Description Registers a new user and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} util.Response{data=TokenResponse}
// @Failure 400 {object} util.Response
// @Router /auth/register [post]
func (ctl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	token, err := ctl.authService.Register(req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.BadRequest(c, "Email already registered")
			return
		}
		util.LogInternalError(c, err)
		return
	}

	util.Created(c, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} util.Response{data=TokenResponse}
// @Failure 401 {object} util.Response
// @Router /auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	token, err := ctl.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(c, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		util.LogInternalError(c, err)
		return
	}

	util.Success(c, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me godoc
// @Summary Current user profile
// @Description Returns the authenticated user with badges and completions
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Failure 401 {object} util.Response
// @Router /auth/me [get]
func (ctl *AuthController) Me(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	profile, err := ctl.authService.Profile(claims.Subject)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.Unauthorized(c)
			return
		}
		util.LogInternalError(c, err)
		return
	}

	util.Success(c, profile)
}
