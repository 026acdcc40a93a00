package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arklim/access-pass-service/internal/repository"
	"github.com/arklim/access-pass-service/internal/transport/http/middleware"
	"github.com/arklim/access-pass-service/internal/usecase"
)

// AuthHandler serves registration, login, and identity lookups.
type AuthHandler struct {
	auth *usecase.AuthService
}

// NewAuthHandler builds a new auth handler instance.
func NewAuthHandler(auth *usecase.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates an account together with its initial pass and returns the
// created user and an access token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "all registration fields are required"))
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Age:         req.Age,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Password:    req.Password,
		PassLevel:   req.PassLevel,
	})
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrInvalidLevel, Status: http.StatusBadRequest, Message: "pass level must be between 1 and 5"},
			{Err: usecase.ErrInvalidInput, Status: http.StatusBadRequest},
		}, http.StatusInternalServerError, "failed to register user")
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		User:  toUserPayload(user),
		Token: token,
	})
}

// Login authenticates by (first name, last name, password) and returns an
// access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "first name, last name, and password are required"))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.FirstName, req.LastName, req.Password)
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "user not found"},
			{Err: usecase.ErrInvalidPassword, Status: http.StatusBadRequest, Message: "invalid password"},
			{Err: usecase.ErrInvalidInput, Status: http.StatusBadRequest},
		}, http.StatusInternalServerError, "failed to log in")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Me returns the authenticated user's own record.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetAuthenticatedUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, NewErrorResponse(c, "invalid authentication"))
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "user not found"},
		}, http.StatusInternalServerError, "failed to load user")
		return
	}

	c.JSON(http.StatusOK, toUserPayload(*user))
}
