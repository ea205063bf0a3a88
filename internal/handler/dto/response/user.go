package response

import (
	"geresaco/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

type UserWithReservationsResponse struct {
	UserResponse
	Reservas []*ReservationResponse `json:"reservas"`
}

func FromUserRM(rm *readmodel.UserRM) *UserResponse {
	if rm == nil {
		return nil
	}
	var resp UserResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromUserWithReservationsRM(rm *readmodel.UserWithReservationsRM) *UserWithReservationsResponse {
	resp := &UserWithReservationsResponse{
		UserResponse: *FromUserRM(&rm.UserRM),
		Reservas:     make([]*ReservationResponse, 0, len(rm.Reservas)),
	}
	for _, res := range rm.Reservas {
		resp.Reservas = append(resp.Reservas, FromReservationRM(res))
	}
	return resp
}
