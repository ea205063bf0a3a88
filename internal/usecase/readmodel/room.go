package readmodel

import "geresaco/internal/domain/room"

type RoomRM struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Sede      string `json:"sede"`
	Capacidad int    `json:"capacidad"`
	Recursos  string `json:"recursos"`
}

func NewRoomRM(r *room.Room) *RoomRM {
	return &RoomRM{
		ID:        r.ID(),
		Nombre:    r.Name(),
		Sede:      r.Campus().String(),
		Capacidad: r.Capacity(),
		Recursos:  r.Resources().String(),
	}
}

type RoomWithReservationsRM struct {
	RoomRM
	Reservas []*ReservationRM `json:"reservas"`
}
