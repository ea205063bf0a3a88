package request

import "geresaco/internal/usecase"

type CreateReservationRequest struct {
	UsuarioID  int64  `json:"usuario_id" binding:"required"`
	SalaID     int64  `json:"sala_id" binding:"required"`
	Fecha      string `json:"fecha" binding:"required"`
	HoraInicio string `json:"hora_inicio" binding:"required"`
	HoraFin    string `json:"hora_fin" binding:"required"`
}

func (r CreateReservationRequest) ToInput() usecase.CreateReservationInput {
	return usecase.CreateReservationInput{
		UsuarioID:  r.UsuarioID,
		SalaID:     r.SalaID,
		Fecha:      r.Fecha,
		HoraInicio: r.HoraInicio,
		HoraFin:    r.HoraFin,
	}
}

type UpdateReservationRequest struct {
	UsuarioID  *int64  `json:"usuario_id"`
	SalaID     *int64  `json:"sala_id"`
	Fecha      *string `json:"fecha"`
	HoraInicio *string `json:"hora_inicio"`
	HoraFin    *string `json:"hora_fin"`
	Estado     *string `json:"estado"`
}

func (r UpdateReservationRequest) ToInput() usecase.UpdateReservationInput {
	return usecase.UpdateReservationInput{
		UsuarioID:  r.UsuarioID,
		SalaID:     r.SalaID,
		Fecha:      r.Fecha,
		HoraInicio: r.HoraInicio,
		HoraFin:    r.HoraFin,
		Estado:     r.Estado,
	}
}
