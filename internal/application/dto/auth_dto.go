package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido más el usuario autenticado (sin password).
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
