package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/application/usecase"
)

// CajaHandler maneja las peticiones HTTP para la sesión de caja (protegido).
type CajaHandler struct {
	uc *usecase.CajaUseCase
}

// NewCajaHandler construye el handler.
func NewCajaHandler(uc *usecase.CajaUseCase) *CajaHandler {
	return &CajaHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir caja
// @Tags         caja
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AbrirCajaRequest  true  "ID de la caja"
// @Success      201   {object}  dto.CajaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caja [post]
func (h *CajaHandler) Open(c *fiber.Ctx) error {
	var in dto.AbrirCajaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Abrir(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Close godoc
// @Summary      Cerrar la caja activa
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CajaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/caja/cerrar [post]
func (h *CajaHandler) Close(c *fiber.Ctx) error {
	out, err := h.uc.Cerrar()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Active godoc
// @Summary      Mostrar la caja activa
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CajaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caja/activa [get]
func (h *CajaHandler) Active(c *fiber.Ctx) error {
	out, err := h.uc.MostrarActiva()
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no existe una caja activa"})
	}
	return c.JSON(out)
}

// RegisterSale godoc
// @Summary      Registrar una venta en la caja activa
// @Tags         caja
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarVentaRequest  true  "Venta con sus detalles"
// @Success      201   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caja/ventas [post]
func (h *CajaHandler) RegisterSale(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.RegistrarVenta(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListClosed godoc
// @Summary      Listar cajas cerradas
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CajaResponse
// @Router       /api/caja/cerradas [get]
func (h *CajaHandler) ListClosed(c *fiber.Ctx) error {
	out, err := h.uc.ListarCerradas()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByDate godoc
// @Summary      Buscar caja por fecha de apertura
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Param        fecha  query  string  true  "AAAA-MM-DD"
// @Success      200  {object}  dto.CajaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caja/buscar [get]
func (h *CajaHandler) GetByDate(c *fiber.Ctx) error {
	fecha, err := queryFecha(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.BuscarPorFecha(fecha)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay caja para la fecha indicada"})
	}
	return c.JSON(out)
}
