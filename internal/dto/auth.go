package dto

type RegisterRequestDTO struct {
	Email     string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password  string `json:"password" validate:"required,min=8" example:"s3cretpass"`
	FirstName string `json:"firstName" validate:"required,min=1,max=100" example:"Ada"`
	LastName  string `json:"lastName" validate:"required,min=1,max=100" example:"Obi"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"s3cretpass"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
