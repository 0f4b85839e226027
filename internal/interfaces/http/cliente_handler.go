package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoseph/loomtrack-api/internal/application/clientes"
	"github.com/jhoseph/loomtrack-api/internal/application/dto"
)

// ClienteHandler maneja las peticiones HTTP de clientes (protegido).
type ClienteHandler struct {
	uc *clientes.UseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *clientes.UseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Substring sobre nombre, identificación o correo"
// @Success      200  {array}  entity.Cliente
// @Router       /api/clientes [get]
func (h *ClienteHandler) Listar(c *fiber.Ctx) error {
	items, err := h.uc.Listar(c.Context(), c.Query("q"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(items)
}

// Obtener godoc
// @Summary      Obtener cliente por ID
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  entity.Cliente
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) Obtener(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	cl, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cl)
}

// Crear godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearClienteRequest  true  "Datos del cliente"
// @Success      201   {object}  entity.Cliente
// @Router       /api/clientes [post]
func (h *ClienteHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cl, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cl)
}

// Actualizar godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cliente"
// @Param        body  body  dto.ActualizarClienteRequest  true  "Campos a sobreescribir"
// @Success      200   {object}  entity.Cliente
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Actualizar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	var in dto.ActualizarClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cl, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cl)
}

// Eliminar godoc
// @Summary      Eliminar cliente
// @Tags         clientes
// @Security     Bearer
// @Param        id  path  int  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Eliminar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportarCSV godoc
// @Summary      Exportar el listado de clientes en CSV
// @Tags         clientes
// @Security     Bearer
// @Produce      text/csv
// @Param        q  query  string  false  "Substring sobre nombre, identificación o correo"
// @Success      200  {string}  string
// @Router       /api/clientes/export/csv [get]
func (h *ClienteHandler) ExportarCSV(c *fiber.Ctx) error {
	body, contentType, err := h.uc.ExportarCSV(c.Context(), c.Query("q"))
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="clientes.csv"`)
	return c.Send(body)
}
