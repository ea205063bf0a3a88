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

type RoomHandler struct {
	roomUsecase *usecase.RoomUsecase
}

func NewRoomHandler(roomUsecase *usecase.RoomUsecase) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase}
}

// List supports filtering the catalogue by sede and by a single recurso tag.
func (h *RoomHandler) List(c *gin.Context) {
	offset, limit := queryPage(c)
	in := usecase.ListRoomsInput{
		Sede:    queryString(c, "sede"),
		Recurso: queryString(c, "recurso"),
		Offset:  offset,
		Limit:   limit,
	}

	roomsRM, err := h.roomUsecase.List(c.Request.Context(), in)
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

	out := make([]*resdto.RoomResponse, 0, len(roomsRM))
	for _, rm := range roomsRM {
		out = append(out, resdto.FromRoomRM(rm))
	}
	c.JSON(http.StatusOK, out)
}

func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "identificador inválido",
		})
		return
	}

	roomRM, err := h.roomUsecase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "sala no encontrada",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRM(roomRM))
}

func (h *RoomHandler) GetReservations(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "identificador inválido",
		})
		return
	}

	offset, limit := queryPage(c)
	rm, err := h.roomUsecase.GetWithReservations(c.Request.Context(), id, offset, limit)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "sala no encontrada",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomWithReservationsRM(rm))
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "formato de solicitud inválido",
		})
		return
	}

	roomRM, err := h.roomUsecase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidResourceList):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "lista de recursos inválida",
			})
		case errors.Is(err, errs.ErrInvalidField):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "datos de sala inválidos",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomRM(roomRM))
}

func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "identificador inválido",
		})
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "formato de solicitud inválido",
		})
		return
	}

	roomRM, err := h.roomUsecase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "sala no encontrada",
			})
		case errors.Is(err, errs.ErrInvalidResourceList):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "lista de recursos inválida",
			})
		case errors.Is(err, errs.ErrInvalidField):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "datos de sala inválidos",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRM(roomRM))
}

func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "identificador inválido",
		})
		return
	}

	if err := h.roomUsecase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "sala no encontrada",
			})
		case errors.Is(err, errs.ErrRoomHasReservations):
			c.JSON(http.StatusConflict, gin.H{
				"error": "la sala tiene reservas activas",
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
