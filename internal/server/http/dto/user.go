package dto

import "github.com/polkiloo/userhub/internal/domain/model"

// UserRequest describes create and update payloads.
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse describes a stored user.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrorResponse carries a human readable failure reason.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToModel maps request payload onto a domain user.
func (r UserRequest) ToModel() *model.User {
	return &model.User{Name: r.Name, Email: r.Email}
}

// NewUserResponse maps a domain user onto response payload.
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
