package response

import (
	"geresaco/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Sede      string `json:"sede"`
	Capacidad int    `json:"capacidad"`
	Recursos  string `json:"recursos"`
}

type RoomWithReservationsResponse struct {
	RoomResponse
	Reservas []*ReservationResponse `json:"reservas"`
}

func FromRoomRM(rm *readmodel.RoomRM) *RoomResponse {
	if rm == nil {
		return nil
	}
	var resp RoomResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRoomWithReservationsRM(rm *readmodel.RoomWithReservationsRM) *RoomWithReservationsResponse {
	resp := &RoomWithReservationsResponse{
		RoomResponse: *FromRoomRM(&rm.RoomRM),
		Reservas:     make([]*ReservationResponse, 0, len(rm.Reservas)),
	}
	for _, res := range rm.Reservas {
		resp.Reservas = append(resp.Reservas, FromReservationRM(res))
	}
	return resp
}
