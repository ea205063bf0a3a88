package request

import "geresaco/internal/usecase"

type CreateRoomRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Sede      string `json:"sede" binding:"required"`
	Capacidad int    `json:"capacidad" binding:"required"`
	Recursos  string `json:"recursos" binding:"required"`
}

func (r CreateRoomRequest) ToInput() usecase.CreateRoomInput {
	return usecase.CreateRoomInput{
		Nombre:    r.Nombre,
		Sede:      r.Sede,
		Capacidad: r.Capacidad,
		Recursos:  r.Recursos,
	}
}

type UpdateRoomRequest struct {
	Nombre    *string `json:"nombre"`
	Sede      *string `json:"sede"`
	Capacidad *int    `json:"capacidad"`
	Recursos  *string `json:"recursos"`
}

func (r UpdateRoomRequest) ToInput() usecase.UpdateRoomInput {
	return usecase.UpdateRoomInput{
		Nombre:    r.Nombre,
		Sede:      r.Sede,
		Capacidad: r.Capacidad,
		Recursos:  r.Recursos,
	}
}
