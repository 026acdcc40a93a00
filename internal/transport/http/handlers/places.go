package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arklim/access-pass-service/internal/repository"
	"github.com/arklim/access-pass-service/internal/usecase"
)

// PlaceHandler serves place CRUD and the access-decision endpoints.
type PlaceHandler struct {
	places *usecase.PlaceService
	access *usecase.AccessService
}

// NewPlaceHandler builds a new place handler instance.
func NewPlaceHandler(places *usecase.PlaceService, access *usecase.AccessService) *PlaceHandler {
	return &PlaceHandler{places: places, access: access}
}

// List returns all places.
func (h *PlaceHandler) List(c *gin.Context) {
	places, err := h.places.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to list places"))
		return
	}

	payload := make([]PlacePayload, 0, len(places))
	for _, place := range places {
		payload = append(payload, toPlacePayload(place))
	}

	c.JSON(http.StatusOK, payload)
}

// Get returns a single place by id.
func (h *PlaceHandler) Get(c *gin.Context) {
	place, err := h.places.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "place not found"},
		}, http.StatusInternalServerError, "failed to load place")
		return
	}

	c.JSON(http.StatusOK, toPlacePayload(*place))
}

// Create registers a new place.
func (h *PlaceHandler) Create(c *gin.Context) {
	var req PlaceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "all place fields are required"))
		return
	}

	place, err := h.places.Create(c.Request.Context(), usecase.CreatePlaceInput{
		Address:           req.Address,
		PhoneNumber:       req.PhoneNumber,
		RequiredPassLevel: req.RequiredPassLevel,
		RequiredAgeLevel:  *req.RequiredAgeLevel,
	})
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrInvalidLevel, Status: http.StatusBadRequest, Message: "required pass level must be between 1 and 5"},
			{Err: usecase.ErrInvalidInput, Status: http.StatusBadRequest},
		}, http.StatusBadRequest, "invalid place payload")
		return
	}

	c.JSON(http.StatusCreated, toPlacePayload(place))
}

// Update applies a partial update to a place.
func (h *PlaceHandler) Update(c *gin.Context) {
	var req PlaceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid place payload"))
		return
	}

	place, err := h.places.Update(c.Request.Context(), c.Param("id"), usecase.UpdatePlaceInput{
		Address:           req.Address,
		PhoneNumber:       req.PhoneNumber,
		RequiredPassLevel: req.RequiredPassLevel,
		RequiredAgeLevel:  req.RequiredAgeLevel,
	})
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrInvalidLevel, Status: http.StatusBadRequest, Message: "required pass level must be between 1 and 5"},
			{Err: usecase.ErrInvalidInput, Status: http.StatusBadRequest},
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "place not found"},
		}, http.StatusInternalServerError, "failed to update place")
		return
	}

	c.JSON(http.StatusOK, toPlacePayload(place))
}

// Delete removes a place.
func (h *PlaceHandler) Delete(c *gin.Context) {
	if err := h.places.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "place not found"},
		}, http.StatusInternalServerError, "failed to delete place")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "place deleted"})
}

// CheckAccess decides whether the user may enter the place. A negative
// decision is reported as 403 with an explicit boolean payload; a user with
// no resolvable pass yields a 403 error payload instead.
func (h *PlaceHandler) CheckAccess(c *gin.Context) {
	allowed, err := h.access.Check(c.Request.Context(), c.Param("userId"), c.Param("placeId"))
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "user or place not found"},
			{Err: usecase.ErrNoPass, Status: http.StatusForbidden, Message: "access denied"},
		}, http.StatusInternalServerError, "failed to check access")
		return
	}

	if !allowed {
		c.JSON(http.StatusForbidden, AccessResponse{Access: false})
		return
	}

	c.JSON(http.StatusOK, AccessResponse{Access: true})
}

// AccessiblePlaces lists every place the user's pass and age qualify for.
func (h *PlaceHandler) AccessiblePlaces(c *gin.Context) {
	places, err := h.access.AccessiblePlaces(c.Request.Context(), c.Param("userId"))
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "user not found"},
			{Err: usecase.ErrNoPass, Status: http.StatusForbidden, Message: "no pass found"},
		}, http.StatusInternalServerError, "failed to list accessible places")
		return
	}

	payload := make([]PlacePayload, 0, len(places))
	for _, place := range places {
		payload = append(payload, toPlacePayload(place))
	}

	c.JSON(http.StatusOK, payload)
}
