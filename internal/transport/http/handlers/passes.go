package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arklim/access-pass-service/internal/repository"
	"github.com/arklim/access-pass-service/internal/transport/http/middleware"
	"github.com/arklim/access-pass-service/internal/usecase"
)

// PassHandler serves pass CRUD and the "my pass" lookup.
type PassHandler struct {
	passes *usecase.PassService
}

// NewPassHandler builds a new pass handler instance.
func NewPassHandler(passes *usecase.PassService) *PassHandler {
	return &PassHandler{passes: passes}
}

// List returns all passes.
func (h *PassHandler) List(c *gin.Context) {
	passes, err := h.passes.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to list passes"))
		return
	}

	payload := make([]PassPayload, 0, len(passes))
	for _, pass := range passes {
		payload = append(payload, toPassPayload(pass))
	}

	c.JSON(http.StatusOK, payload)
}

// Get returns a single pass by id.
func (h *PassHandler) Get(c *gin.Context) {
	pass, err := h.passes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "pass not found"},
		}, http.StatusInternalServerError, "failed to load pass")
		return
	}

	c.JSON(http.StatusOK, toPassPayload(*pass))
}

// Create issues a new pass for an existing user and repoints the user's
// credential at it.
func (h *PassHandler) Create(c *gin.Context) {
	var req PassCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "userId and level are required"))
		return
	}

	pass, err := h.passes.Create(c.Request.Context(), req.UserID, req.Level)
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrInvalidLevel, Status: http.StatusBadRequest, Message: "pass level must be between 1 and 5"},
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "user not found"},
		}, http.StatusInternalServerError, "failed to create pass")
		return
	}

	c.JSON(http.StatusCreated, toPassPayload(pass))
}

// Update changes the level of an existing pass.
func (h *PassHandler) Update(c *gin.Context) {
	var req PassUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "level is required"))
		return
	}

	pass, err := h.passes.UpdateLevel(c.Request.Context(), c.Param("id"), req.Level)
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrInvalidLevel, Status: http.StatusBadRequest, Message: "pass level must be between 1 and 5"},
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "pass not found"},
		}, http.StatusInternalServerError, "failed to update pass")
		return
	}

	c.JSON(http.StatusOK, toPassPayload(pass))
}

// Delete removes a pass and detaches it from every user holding it.
func (h *PassHandler) Delete(c *gin.Context) {
	if err := h.passes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "pass not found"},
		}, http.StatusInternalServerError, "failed to delete pass")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "pass deleted"})
}

// Mine returns the pass held by the authenticated user.
func (h *PassHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetAuthenticatedUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, NewErrorResponse(c, "invalid authentication"))
		return
	}

	pass, err := h.passes.UserPass(c.Request.Context(), userID)
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "user not found"},
			{Err: usecase.ErrNoPass, Status: http.StatusNotFound, Message: "no pass found"},
		}, http.StatusInternalServerError, "failed to load pass")
		return
	}

	c.JSON(http.StatusOK, toPassPayload(pass))
}
