package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoseph/loomtrack-api/internal/application/auth"
	"github.com/jhoseph/loomtrack-api/internal/application/dto"
	"github.com/jhoseph/loomtrack-api/internal/application/usuarios"
)

// AuthHandler maneja login y registro de usuarios.
type AuthHandler struct {
	auth     *auth.UseCase
	usuarios *usuarios.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(a *auth.UseCase, u *usuarios.UseCase) *AuthHandler {
	return &AuthHandler{auth: a, usuarios: u}
}

// Login godoc
// @Summary      Iniciar sesión con username y password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.auth.Login(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// Register godoc
// @Summary      Registrar un usuario nuevo (solo admin)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearUsuarioRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	u, err := h.usuarios.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(u)
}
