package errs

import "errors"

// Sentinel errors shared by the usecase layer. Handlers translate these to
// HTTP statuses with errors.Is; everything else surfaces as a 500.
var (
	// Not-found errors carry the entity so the API can answer with the
	// specific message the clients rely on.
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrRoomNotFound        = errors.New("sala no encontrada")
	ErrReservationNotFound = errors.New("reserva no encontrada")

	// Reservation admission errors
	ErrInvalidInterval  = errors.New("la hora de fin debe ser mayor que la hora de inicio")
	ErrInvalidDuration  = errors.New("las reservas deben ser de exactamente 1 hora")
	ErrAlreadyCancelled = errors.New("la reserva ya está cancelada")

	// Field validation errors
	ErrInvalidResourceList = errors.New("lista de recursos inválida")
	ErrInvalidField        = errors.New("campo inválido")

	// Uniqueness / referential guards
	ErrEmailTaken          = errors.New("el email ya está registrado")
	ErrUserHasReservations = errors.New("el usuario tiene reservas activas")
	ErrRoomHasReservations = errors.New("la sala tiene reservas activas")

	// Auth errors
	ErrInvalidCredentials = errors.New("email o contraseña incorrectos")
	ErrInvalidToken       = errors.New("token inválido")
)
