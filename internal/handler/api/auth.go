package api

import (
	"errors"
	"net/http"

	reqdto "geresaco/internal/handler/dto/request"
	resdto "geresaco/internal/handler/dto/response"
	"geresaco/internal/handler/middleware"
	"geresaco/internal/pkg/errs"
	"geresaco/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase *usecase.AuthUsecase
}

func NewAuthHandler(authUsecase *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "formato de solicitud inválido",
		})
		return
	}

	result, err := h.authUsecase.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "el email ya está registrado",
			})
		case errors.Is(err, errs.ErrInvalidField):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "datos de registro inválidos",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAuthResult(result))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "formato de solicitud inválido",
		})
		return
	}

	result, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Contrasena)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "email o contraseña incorrectos",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// VerifyToken lets clients check a stored token without firing a real
// request. An invalid token answers 200 with valido=false, not 401.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var req reqdto.VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "formato de solicitud inválido",
		})
		return
	}

	userRM, err := h.authUsecase.VerifyToken(c.Request.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidToken):
			c.JSON(http.StatusOK, resdto.VerifyTokenResponse{Valido: false})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error interno del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.VerifyTokenResponse{
		Valido:  true,
		Usuario: resdto.FromUserRM(userRM),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "error interno del servidor",
		})
		return
	}

	userRM, err := h.authUsecase.GetCurrentUser(c.Request.Context(), userID)
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
