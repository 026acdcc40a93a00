package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arklim/access-pass-service/internal/core/domain"
)

// ErrorResponse represents a generic error payload with trace ID for debugging.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// NewErrorResponse creates an error response with trace ID from context
func NewErrorResponse(c *gin.Context, errorMsg string) ErrorResponse {
	traceID, _ := c.Get("trace_id")
	traceIDStr, _ := traceID.(string)

	return ErrorResponse{
		Error:   errorMsg,
		TraceID: traceIDStr,
	}
}

// MessageResponse represents a simple message payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserPayload describes a user as returned by the API. Password material is
// never included.
type UserPayload struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Age         int     `json:"age"`
	PhoneNumber string  `json:"phone_number"`
	Address     string  `json:"address"`
	PassID      *string `json:"pass_id,omitempty"`
}

func toUserPayload(user domain.User) UserPayload {
	return UserPayload{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Age:         user.Age,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		PassID:      user.PassID,
	}
}

// PassPayload describes a clearance pass as returned by the API.
type PassPayload struct {
	ID        string     `json:"id"`
	Level     int        `json:"level"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toPassPayload(pass domain.Pass) PassPayload {
	return PassPayload{
		ID:        pass.ID,
		Level:     pass.Level,
		CreatedAt: pass.CreatedAt,
		UpdatedAt: pass.UpdatedAt,
	}
}

// PlacePayload describes a protected place as returned by the API.
type PlacePayload struct {
	ID                string `json:"id"`
	Address           string `json:"address"`
	PhoneNumber       string `json:"phone_number"`
	RequiredPassLevel int    `json:"required_pass_level"`
	RequiredAgeLevel  int    `json:"required_age_level"`
}

func toPlacePayload(place domain.Place) PlacePayload {
	return PlacePayload{
		ID:                place.ID,
		Address:           place.Address,
		PhoneNumber:       place.PhoneNumber,
		RequiredPassLevel: place.RequiredPassLevel,
		RequiredAgeLevel:  place.RequiredAgeLevel,
	}
}

// RegisterRequest defines the payload for account registration.
type RegisterRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Age         int    `json:"age" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PassLevel   int    `json:"pass_level" binding:"required"`
}

// RegisterResponse is returned for a successful registration.
type RegisterResponse struct {
	User  UserPayload `json:"user"`
	Token string      `json:"token"`
}

// LoginRequest defines the payload for the login endpoint. Identity is keyed
// on the (first name, last name) pair.
type LoginRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token string `json:"token"`
}

// PassCreateRequest issues a new pass bound to an existing user.
type PassCreateRequest struct {
	UserID string `json:"userId" binding:"required"`
	Level  int    `json:"level" binding:"required"`
}

// PassUpdateRequest changes the level of an existing pass.
type PassUpdateRequest struct {
	Level int `json:"level" binding:"required"`
}

// PlaceCreateRequest registers a new place. All fields are required; the age
// requirement may legitimately be zero, hence the pointer.
type PlaceCreateRequest struct {
	Address           string `json:"address" binding:"required"`
	PhoneNumber       string `json:"phone_number" binding:"required"`
	RequiredPassLevel int    `json:"required_pass_level" binding:"required"`
	RequiredAgeLevel  *int   `json:"required_age_level" binding:"required"`
}

// PlaceUpdateRequest carries a partial place update; omitted fields keep
// their current value.
type PlaceUpdateRequest struct {
	Address           *string `json:"address"`
	PhoneNumber       *string `json:"phone_number"`
	RequiredPassLevel *int    `json:"required_pass_level"`
	RequiredAgeLevel  *int    `json:"required_age_level"`
}

// UserCreateRequest adds a user record directly, outside registration.
type UserCreateRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Age         int     `json:"age" binding:"required"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	PassID      *string `json:"pass_id"`
}

// UserUpdateRequest carries a partial user update; omitted fields keep their
// current value.
type UserUpdateRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Age         *int    `json:"age"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	Password    *string `json:"password"`
	PassID      *string `json:"pass_id"`
}

// AccessResponse carries the result of an access decision.
type AccessResponse struct {
	Access bool `json:"access"`
}

// HealthResponse reports liveness information.
type HealthResponse struct {
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
}

// ReadinessResponse reports the readiness of each backing dependency.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
