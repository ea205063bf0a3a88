package request

import "geresaco/internal/usecase"

type RegisterRequest struct {
	Nombre     string `json:"nombre" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Contrasena string `json:"contrasena" binding:"required"`
	Rol        string `json:"rol"`
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Nombre:     r.Nombre,
		Email:      r.Email,
		Contrasena: r.Contrasena,
		Rol:        r.Rol,
	}
}

type LoginRequest struct {
	Email      string `json:"email" binding:"required"`
	Contrasena string `json:"contrasena" binding:"required"`
}

type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}
