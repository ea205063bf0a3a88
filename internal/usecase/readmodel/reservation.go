package readmodel

import "geresaco/internal/domain/reservation"

type ReservationRM struct {
	ID         int64  `json:"id"`
	UsuarioID  int64  `json:"usuario_id"`
	SalaID     int64  `json:"sala_id"`
	Fecha      string `json:"fecha"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
	Estado     string `json:"estado"`
}

func NewReservationRM(r *reservation.Reservation) *ReservationRM {
	return &ReservationRM{
		ID:         r.ID(),
		UsuarioID:  r.UserID(),
		SalaID:     r.RoomID(),
		Fecha:      r.Date().String(),
		HoraInicio: r.Slot().Start().String(),
		HoraFin:    r.Slot().End().String(),
		Estado:     r.Status().String(),
	}
}

// ReservationDetailsRM embeds point-in-time snapshots of the related user and
// room. Either snapshot is nil when the referenced entity no longer exists.
type ReservationDetailsRM struct {
	ReservationRM
	Usuario *UserRM `json:"usuario"`
	Sala    *RoomRM `json:"sala"`
}
