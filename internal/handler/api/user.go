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

type UserHandler struct {
	userUsecase *usecase.UserUsecase
}

func NewUserHandler(userUsecase *usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

func (h *UserHandler) List(c *gin.Context) {
	offset, limit := queryPage(c)

	usersRM, err := h.userUsecase.List(c.Request.Context(), offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "error interno del servidor",
		})
		return
	}

	out := make([]*resdto.UserResponse, 0, len(usersRM))
	for _, rm := range usersRM {
		out = append(out, resdto.FromUserRM(rm))
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "identificador inválido",
		})
		return
	}

	userRM, err := h.userUsecase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "usuario no encontrado",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserRM(userRM))
}

func (h *UserHandler) GetReservations(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "identificador inválido",
		})
		return
	}

	offset, limit := queryPage(c)
	rm, err := h.userUsecase.GetWithReservations(c.Request.Context(), id, offset, limit)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "usuario no encontrado",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserWithReservationsRM(rm))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "formato de solicitud inválido",
		})
		return
	}

	userRM, err := h.userUsecase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "el email ya está registrado",
			})
		case errors.Is(err, errs.ErrInvalidField):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "datos de usuario inválidos",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromUserRM(userRM))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "identificador inválido",
		})
		return
	}

	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "formato de solicitud inválido",
		})
		return
	}

	userRM, err := h.userUsecase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "usuario no encontrado",
			})
		case errors.Is(err, errs.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "el email ya está registrado",
			})
		case errors.Is(err, errs.ErrInvalidField):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "datos de usuario inválidos",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserRM(userRM))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "identificador inválido",
		})
		return
	}

	if err := h.userUsecase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "usuario no encontrado",
			})
		case errors.Is(err, errs.ErrUserHasReservations):
			c.JSON(http.StatusConflict, gin.H{
				"error": "el usuario tiene reservas activas",
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
