package request

import "geresaco/internal/usecase"

type CreateUserRequest struct {
	Nombre     string `json:"nombre" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Contrasena string `json:"contrasena" binding:"required"`
	Rol        string `json:"rol" binding:"required"`
}

func (r CreateUserRequest) ToInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Nombre:     r.Nombre,
		Email:      r.Email,
		Contrasena: r.Contrasena,
		Rol:        r.Rol,
	}
}

// UpdateUserRequest carries only the fields the client wants to change;
// absent fields keep their stored values.
type UpdateUserRequest struct {
	Nombre     *string `json:"nombre"`
	Email      *string `json:"email"`
	Contrasena *string `json:"contrasena"`
	Rol        *string `json:"rol"`
}

func (r UpdateUserRequest) ToInput() usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Nombre:     r.Nombre,
		Email:      r.Email,
		Contrasena: r.Contrasena,
		Rol:        r.Rol,
	}
}
