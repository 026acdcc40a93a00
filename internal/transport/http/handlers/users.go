package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arklim/access-pass-service/internal/repository"
	"github.com/arklim/access-pass-service/internal/usecase"
)

// UserHandler serves user CRUD endpoints.
type UserHandler struct {
	users *usecase.UserService
}

// NewUserHandler builds a new user handler instance.
func NewUserHandler(users *usecase.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns all users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to list users"))
		return
	}

	payload := make([]UserPayload, 0, len(users))
	for _, user := range users {
		payload = append(payload, toUserPayload(user))
	}

	c.JSON(http.StatusOK, payload)
}

// Get returns a single user by id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "user not found"},
		}, http.StatusInternalServerError, "failed to load user")
		return
	}

	c.JSON(http.StatusOK, toUserPayload(*user))
}

// Create adds a user record without issuing a token.
func (h *UserHandler) Create(c *gin.Context) {
	var req UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "all user fields are required"))
		return
	}

	user, err := h.users.Create(c.Request.Context(), usecase.CreateUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Age:         req.Age,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Password:    req.Password,
		PassID:      req.PassID,
	})
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "pass not found"},
			{Err: usecase.ErrInvalidInput, Status: http.StatusBadRequest},
		}, http.StatusInternalServerError, "failed to create user")
		return
	}

	c.JSON(http.StatusCreated, toUserPayload(user))
}

// Update applies a partial update to a user.
func (h *UserHandler) Update(c *gin.Context) {
	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid user payload"))
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), usecase.UpdateUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Age:         req.Age,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Password:    req.Password,
		PassID:      req.PassID,
	})
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "user or pass not found"},
			{Err: usecase.ErrInvalidInput, Status: http.StatusBadRequest},
		}, http.StatusInternalServerError, "failed to update user")
		return
	}

	c.JSON(http.StatusOK, toUserPayload(user))
}

// Delete removes a user.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "user not found"},
		}, http.StatusInternalServerError, "failed to delete user")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "user deleted"})
}
