package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoseph/loomtrack-api/internal/application/dto"
	"github.com/jhoseph/loomtrack-api/internal/application/materiales"
)

// MaterialHandler maneja las peticiones HTTP del libro de materiales (protegido).
type MaterialHandler struct {
	uc  *materiales.UseCase
	pdf materiales.ListadoPDFGenerator
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *materiales.UseCase, pdf materiales.ListadoPDFGenerator) *MaterialHandler {
	return &MaterialHandler{uc: uc, pdf: pdf}
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func filtroDesdeQuery(c *fiber.Ctx) materiales.Filtro {
	return materiales.Filtro{
		Q:     c.Query("q"),
		Stock: c.Query("stock"),
	}
}

// Listar godoc
// @Summary      Listar materiales
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  false  "Substring sobre nombre"
// @Param        stock  query  string  false  "low = solo stock bajo"
// @Success      200    {array}  entity.Material
// @Router       /api/materiales [get]
func (h *MaterialHandler) Listar(c *fiber.Ctx) error {
	items, err := h.uc.Listar(c.Context(), filtroDesdeQuery(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(items)
}

// Obtener godoc
// @Summary      Obtener material por ID (incluye eliminados lógicos)
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del material"
// @Success      200  {object}  entity.Material
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiales/{id} [get]
func (h *MaterialHandler) Obtener(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	m, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(m)
}

// Crear godoc
// @Summary      Crear material (con asiento inicial de creación)
// @Tags         materiales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearMaterialRequest  true  "Datos del material"
// @Success      201   {object}  entity.Material
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materiales [post]
func (h *MaterialHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Usuario == "" {
		in.Usuario = GetUsuario(c)
	}
	m, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// Actualizar godoc
// @Summary      Actualizar material (no toca el libro de movimientos)
// @Tags         materiales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del material"
// @Param        body  body  dto.ActualizarMaterialRequest  true  "Campos a sobreescribir"
// @Success      200   {object}  entity.Material
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materiales/{id} [put]
func (h *MaterialHandler) Actualizar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	var in dto.ActualizarMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(m)
}

// AjustarStock godoc
// @Summary      Registrar movimiento de stock (entrada, salida o ajuste)
// @Description  Para tipo_mov "ajuste", cantidad es el stock absoluto resultante.
// @Tags         materiales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del material"
// @Param        body  body  dto.AjusteStockRequest  true  "tipo_mov, cantidad, comentario"
// @Success      200   {object}  entity.Material
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materiales/{id}/ajustes [post]
func (h *MaterialHandler) AjustarStock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	var in dto.AjusteStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Usuario == "" {
		in.Usuario = GetUsuario(c)
	}
	m, err := h.uc.AjustarStock(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(m)
}

// Eliminar godoc
// @Summary      Borrado lógico del material (conserva el libro completo)
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del material"
// @Success      200  {object}  entity.Material
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiales/{id} [delete]
func (h *MaterialHandler) Eliminar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	m, err := h.uc.Eliminar(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(m)
}

// Movimientos godoc
// @Summary      Libro de movimientos de un material
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del material"
// @Success      200  {array}   entity.Movimiento
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiales/{id}/movimientos [get]
func (h *MaterialHandler) Movimientos(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	m, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(m.Movimientos)
}

// Verificar godoc
// @Summary      Contrastar el stock materializado contra el derivado del libro
// @Description  Divergen tras una corrección administrativa del stock.
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del material"
// @Success      200  {object}  dto.VerificacionLibroResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiales/{id}/verificacion [get]
func (h *MaterialHandler) Verificar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	materializado, derivado, err := h.uc.VerificarLibro(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.VerificacionLibroResponse{
		MaterialID:         id,
		StockMaterializado: materializado,
		StockDerivado:      derivado,
		Coincide:           materializado.Equal(derivado),
	})
}

// ExportarCSV godoc
// @Summary      Exportar materiales filtrados a CSV
// @Description  Si el filtro no produce filas devuelve "No hay datos" como text/plain.
// @Tags         materiales
// @Security     Bearer
// @Produce      text/csv
// @Param        q      query  string  false  "Substring sobre nombre"
// @Param        stock  query  string  false  "low = solo stock bajo"
// @Success      200
// @Router       /api/materiales/export/csv [get]
func (h *MaterialHandler) ExportarCSV(c *fiber.Ctx) error {
	cuerpo, contentType, err := h.uc.ExportarCSV(c.Context(), filtroDesdeQuery(c))
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="materiales.csv"`)
	return c.Send(cuerpo)
}

// ExportarPDF godoc
// @Summary      Exportar materiales filtrados a PDF (listado imprimible)
// @Tags         materiales
// @Security     Bearer
// @Produce      application/pdf
// @Param        q      query  string  false  "Substring sobre nombre"
// @Param        stock  query  string  false  "low = solo stock bajo"
// @Success      200
// @Router       /api/materiales/export/pdf [get]
func (h *MaterialHandler) ExportarPDF(c *fiber.Ctx) error {
	cuerpo, err := h.uc.ExportarPDF(c.Context(), filtroDesdeQuery(c), h.pdf)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, materiales.ContentTypePDF)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="materiales.pdf"`)
	return c.Send(cuerpo)
}
