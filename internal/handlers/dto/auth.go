package dto

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse: needs_setup говорит клиенту, вести ли на экран профиля
type LoginResponse struct {
	Token      string `json:"token"`
	NeedsSetup bool   `json:"needs_setup"`
}
