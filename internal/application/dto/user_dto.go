package dto

// CreateUserRequest alta de usuario (solo roles elevados).
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Category string `json:"category"`
}

// UpdateUserRequest actualización de usuario, direccionado por email.
// Password y Category son opcionales (nil = sin cambio).
type UpdateUserRequest struct {
	Email    string  `json:"email"`
	Password *string `json:"password"`
	Category *string `json:"category"`
}

// DeleteUserRequest borrado por email.
type DeleteUserRequest struct {
	Email string `json:"email"`
}

// UserResponse proyección de User hacia el cliente. Nunca incluye el password
// ni su hash.
type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Category string `json:"category"`
}

// UserListResponse listado completo de usuarios.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}
