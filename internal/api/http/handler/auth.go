package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookly-app/bookly-server/internal/logger"
	"github.com/bookly-app/bookly-server/internal/model"
	"github.com/bookly-app/bookly-server/internal/service"
)

// AuthService defines user registration and session operations.
type AuthService interface {
	Signup(ctx context.Context, params service.SignupParams) (model.User, error)
	Login(ctx context.Context, email, password string) (model.User, service.TokenPair, error)
	Refresh(ctx context.Context, claims *model.TokenClaims) (string, error)
	Logout(ctx context.Context, claims *model.TokenClaims) error
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type signupRequest struct {
	Username  string `json:"username" binding:"required,max=200"`
	Email     string `json:"email" binding:"required,email,max=300"`
	Password  string `json:"password" binding:"required,min=3"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	UID        uuid.UUID `json:"uid"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type loginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         loginUserView `json:"user"`
}

type loginUserView struct {
	Email string    `json:"email"`
	UID   uuid.UUID `json:"uid"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		UID:        user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// Signup handles POST /auth/signup.
func (h *Auth) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), service.SignupParams{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.logger.Error("Auth handler: signup failed", "email", req.Email, "error", err.Error())
		newErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles POST /auth/login.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, pair, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed", "email", req.Email, "error", err.Error())
		newErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		User:         loginUserView{Email: user.Email, UID: user.ID},
	})
}

// RefreshToken handles GET /auth/refresh_token. The refresh guard has already
// validated the token and put its claims into the context.
func (h *Auth) RefreshToken(c *gin.Context) {
	claims, ok := h.contextManager.GetClaimsFromContext(c.Request.Context())
	if !ok {
		newErrorResponse(c, model.ErrTokenInvalid)
		return
	}

	access, err := h.authService.Refresh(c.Request.Context(), claims)
	if err != nil {
		h.logger.Error("Auth handler: refresh failed", "user_id", claims.Subject.UID, "error", err.Error())
		newErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": access})
}

// Logout handles GET /auth/logout by revoking the presented token's jti.
func (h *Auth) Logout(c *gin.Context) {
	claims, ok := h.contextManager.GetClaimsFromContext(c.Request.Context())
	if !ok {
		newErrorResponse(c, model.ErrTokenInvalid)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		h.logger.Error("Auth handler: logout failed", "user_id", claims.Subject.UID, "error", err.Error())
		newErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}
