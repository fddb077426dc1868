package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/application/usecase"
)

// InformeHandler maneja la generación y consulta de informes (protegido).
type InformeHandler struct {
	uc *usecase.InformeUseCase
}

// NewInformeHandler construye el handler.
func NewInformeHandler(uc *usecase.InformeUseCase) *InformeHandler {
	return &InformeHandler{uc: uc}
}

// GenerateByCaja godoc
// @Summary      Generar informe a partir de una caja cerrada
// @Tags         informes
// @Security     Bearer
// @Produce      json
// @Param        caja_id  path  int  true  "ID de la caja"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/informes/caja/{caja_id} [post]
func (h *InformeHandler) GenerateByCaja(c *fiber.Ctx) error {
	cajaID, err := strconv.ParseInt(c.Params("caja_id"), 10, 64)
	if err != nil || cajaID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "caja_id inválido"})
	}
	if err := h.uc.GenerarPorCaja(cajaID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GenerateByRange godoc
// @Summary      Generar informe por rango de fechas
// @Tags         informes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerarInformeRequest  true  "id, fecha_inicial, fecha_final"
// @Success      201   {object}  dto.InformeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/informes [post]
func (h *InformeHandler) GenerateByRange(c *fiber.Ctx) error {
	var in dto.GenerarInformeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.GenerarPorFechas(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar informes
// @Tags         informes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InformeResponse
// @Router       /api/informes [get]
func (h *InformeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener informe por ID
// @Tags         informes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del informe"
// @Success      200  {object}  dto.InformeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/informes/{id} [get]
func (h *InformeHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: err.Error()})
	}
	out, err := h.uc.BuscarPorID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el informe no existe"})
	}
	return c.JSON(out)
}

// GetByDate godoc
// @Summary      Buscar informes que cubren una fecha
// @Tags         informes
// @Security     Bearer
// @Produce      json
// @Param        fecha  query  string  true  "AAAA-MM-DD"
// @Success      200  {array}  dto.InformeResponse
// @Router       /api/informes/buscar [get]
func (h *InformeHandler) GetByDate(c *fiber.Ctx) error {
	fecha, err := queryFecha(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.BuscarPorFecha(fecha)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar informe
// @Tags         informes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del informe"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/informes/{id} [delete]
func (h *InformeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: err.Error()})
	}
	if err := h.uc.Eliminar(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
