package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoseph/loomtrack-api/internal/application/materiales"
)

// MovimientoHandler expone el reporte global de movimientos (protegido).
type MovimientoHandler struct {
	uc *materiales.UseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *materiales.UseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// Listar godoc
// @Summary      Reporte global de movimientos de todos los materiales
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        tipo  query  string  false  "tipo_mov exacto (creacion, entrada, salida, ajuste)"
// @Param        q     query  string  false  "Substring sobre nombre del material"
// @Success      200   {array}  dto.MovimientoGlobal
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) Listar(c *fiber.Ctx) error {
	filas, err := h.uc.ListarMovimientos(c.Context(), materiales.FiltroMovimientos{
		Tipo: c.Query("tipo"),
		Q:    c.Query("q"),
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(filas)
}
