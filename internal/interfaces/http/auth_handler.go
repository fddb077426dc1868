package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/puntoventa-api/internal/application/auth"
	"github.com/jhoicas/puntoventa-api/internal/application/dto"
)

// AuthHandler maneja el registro, la actualización y el login del único
// usuario del sistema.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar el usuario del sistema
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearUsuarioRequest  true  "username, password"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.CrearUsuario(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Exists godoc
// @Summary      Verificar si ya existe un usuario registrado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.ExisteUsuarioResponse
// @Router       /api/auth/existe [get]
func (h *AuthHandler) Exists(c *fiber.Ctx) error {
	existe, err := h.uc.ExisteUsuario()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ExisteUsuarioResponse{Existe: existe})
}

// Me godoc
// @Summary      Mostrar el usuario registrado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuario [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.MostrarUsuario()
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no existe un usuario registrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar credenciales del usuario
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActualizarUsuarioRequest  true  "nuevo_username, clave_actual, nueva_clave"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/usuario [put]
func (h *AuthHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nuevo_username es requerido"})
	}
	out, err := h.uc.ActualizarUsuario(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
