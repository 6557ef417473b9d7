package dto

// LoginRequest represents the request body for login. Password is required
// unless Trial is set.
type LoginRequest struct {
	Password string `json:"password"`
	Trial    bool   `json:"trial"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	UserType string `json:"user_type"`
}
