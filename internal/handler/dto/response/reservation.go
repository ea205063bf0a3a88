package response

import (
	"geresaco/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID         int64  `json:"id"`
	UsuarioID  int64  `json:"usuario_id"`
	SalaID     int64  `json:"sala_id"`
	Fecha      string `json:"fecha"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
	Estado     string `json:"estado"`
}

// ReservationDetailsResponse carries the related user and room as snapshots.
// A dangling reference serializes as an explicit null.
type ReservationDetailsResponse struct {
	ReservationResponse
	Usuario *UserResponse `json:"usuario"`
	Sala    *RoomResponse `json:"sala"`
}

func FromReservationRM(rm *readmodel.ReservationRM) *ReservationResponse {
	if rm == nil {
		return nil
	}
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationDetailsRM(rm *readmodel.ReservationDetailsRM) *ReservationDetailsResponse {
	return &ReservationDetailsResponse{
		ReservationResponse: *FromReservationRM(&rm.ReservationRM),
		Usuario:             FromUserRM(rm.Usuario),
		Sala:                FromRoomRM(rm.Sala),
	}
}
