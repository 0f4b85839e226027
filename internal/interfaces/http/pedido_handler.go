package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoseph/loomtrack-api/internal/application/dto"
	"github.com/jhoseph/loomtrack-api/internal/application/pedidos"
)

// PedidoHandler maneja las peticiones HTTP de pedidos (protegido).
type PedidoHandler struct {
	uc *pedidos.UseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *pedidos.UseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Substring sobre cliente o estado"
// @Success      200  {array}  entity.Pedido
// @Router       /api/pedidos [get]
func (h *PedidoHandler) Listar(c *fiber.Ctx) error {
	items, err := h.uc.Listar(c.Context(), c.Query("q"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(items)
}

// Obtener godoc
// @Summary      Obtener pedido por ID
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  entity.Pedido
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *PedidoHandler) Obtener(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	p, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(p)
}

// Crear godoc
// @Summary      Crear pedido (el total se calcula en el servidor)
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GuardarPedidoRequest  true  "Datos del pedido"
// @Success      201   {object}  entity.Pedido
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Crear(c *fiber.Ctx) error {
	var in dto.GuardarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// Actualizar godoc
// @Summary      Reemplazar pedido completo, conservando el ID
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.GuardarPedidoRequest  true  "Datos del pedido"
// @Success      200   {object}  entity.Pedido
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [put]
func (h *PedidoHandler) Actualizar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	var in dto.GuardarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(p)
}

// Eliminar godoc
// @Summary      Eliminar pedido
// @Tags         pedidos
// @Security     Bearer
// @Param        id  path  int  true  "ID del pedido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [delete]
func (h *PedidoHandler) Eliminar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
