package readmodel

import "geresaco/internal/domain/user"

type UserRM struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

func NewUserRM(u *user.User) *UserRM {
	return &UserRM{
		ID:     u.ID(),
		Nombre: u.Name().Value(),
		Email:  u.Email().Value(),
		Rol:    u.Role().String(),
	}
}

type UserWithReservationsRM struct {
	UserRM
	Reservas []*ReservationRM `json:"reservas"`
}
