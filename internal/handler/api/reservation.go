package api

import (
	"errors"
	"net/http"

	reqdto "geresaco/internal/handler/dto/request"
	resdto "geresaco/internal/handler/dto/response"
	"geresaco/internal/pkg/errs"
	"geresaco/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationUsecase *usecase.ReservationUsecase
}

func NewReservationHandler(reservationUsecase *usecase.ReservationUsecase) *ReservationHandler {
	return &ReservationHandler{reservationUsecase: reservationUsecase}
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "formato de solicitud inválido",
		})
		return
	}

	rm, err := h.reservationUsecase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.writeAdmissionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationRM(rm))
}

func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "identificador inválido",
		})
		return
	}

	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "formato de solicitud inválido",
		})
		return
	}

	rm, err := h.reservationUsecase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.writeAdmissionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(rm))
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "identificador inválido",
		})
		return
	}

	rm, err := h.reservationUsecase.Cancel(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "reserva no encontrada",
			})
		case errors.Is(err, errs.ErrAlreadyCancelled):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "la reserva ya está cancelada",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(rm))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "identificador inválido",
		})
		return
	}

	rm, err := h.reservationUsecase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "reserva no encontrada",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(rm))
}

func (h *ReservationHandler) GetDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "identificador inválido",
		})
		return
	}

	rm, err := h.reservationUsecase.GetDetails(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "reserva no encontrada",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationDetailsRM(rm))
}

func (h *ReservationHandler) List(c *gin.Context) {
	in, ok := h.bindListInput(c)
	if !ok {
		return
	}

	reservationsRM, err := h.reservationUsecase.List(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidField):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "filtros de búsqueda inválidos",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	out := make([]*resdto.ReservationResponse, 0, len(reservationsRM))
	for _, rm := range reservationsRM {
		out = append(out, resdto.FromReservationRM(rm))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReservationHandler) ListDetails(c *gin.Context) {
	in, ok := h.bindListInput(c)
	if !ok {
		return
	}

	detailsRM, err := h.reservationUsecase.ListDetails(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidField):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "filtros de búsqueda inválidos",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	out := make([]*resdto.ReservationDetailsResponse, 0, len(detailsRM))
	for _, rm := range detailsRM {
		out = append(out, resdto.FromReservationDetailsRM(rm))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "identificador inválido",
		})
		return
	}

	if err := h.reservationUsecase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "reserva no encontrada",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) bindListInput(c *gin.Context) (usecase.ListReservationsInput, bool) {
	usuarioID, ok := queryInt64(c, "usuario_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "filtros de búsqueda inválidos",
		})
		return usecase.ListReservationsInput{}, false
	}
	salaID, ok := queryInt64(c, "sala_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "filtros de búsqueda inválidos",
		})
		return usecase.ListReservationsInput{}, false
	}

	offset, limit := queryPage(c)
	return usecase.ListReservationsInput{
		UsuarioID: usuarioID,
		SalaID:    salaID,
		Fecha:     queryString(c, "fecha"),
		Offset:    offset,
		Limit:     limit,
	}, true
}

// writeAdmissionError maps the create/update admission failures. The checks
// run references first, then the slot, and the responses mirror that order.
func (h *ReservationHandler) writeAdmissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "reserva no encontrada",
		})
	case errors.Is(err, errs.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "usuario no encontrado",
		})
	case errors.Is(err, errs.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "sala no encontrada",
		})
	case errors.Is(err, errs.ErrInvalidInterval):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "la hora de fin debe ser mayor que la hora de inicio",
		})
	case errors.Is(err, errs.ErrInvalidDuration):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "las reservas deben ser de exactamente 1 hora",
		})
	case errors.Is(err, errs.ErrInvalidField):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "datos de reserva inválidos",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "error interno del servidor",
		})
	}
}
