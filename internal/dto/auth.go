package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"alice"`
	Name     string `json:"name" validate:"required,max=60" example:"Alice"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"password123"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"alice"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"password123"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}
