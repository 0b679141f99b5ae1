package dto

// UserPayload is the public projection of a user. The password hash never
// leaves the server.
type UserPayload struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is returned by register and login: the bearer token plus the
// authenticated user.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}
