package dto

// LoginRequest describes username/password payload. It is not consumed by
// any route.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
