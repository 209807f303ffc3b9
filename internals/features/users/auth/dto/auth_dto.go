package dto

// ====================
// Request DTO
// ====================

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Senha    string `json:"senha" validate:"required"`
}

type SetPasswordRequest struct {
	Username  string `json:"username" validate:"required"`
	NovaSenha string `json:"nova_senha" validate:"required,min=8"`
}

// ====================
// Response DTO
// ====================

type LoginResponse struct {
	Token string `json:"token"`
}
