package dto

// LoginRequest entrada para login del operador.
type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token     string `json:"token"`
	User      string `json:"user"`
	Role      string `json:"role"`
	ExpiresIn int    `json:"expires_in"` // segundos
}
