package dto

import "github.com/jhoicas/puntoventa-api/internal/domain/entity"

// CrearUsuarioRequest datos para registrar el único usuario del sistema.
type CrearUsuarioRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ActualizarUsuarioRequest datos para actualizar credenciales. El username
// se reemplaza siempre; el cambio de contraseña exige la clave actual.
type ActualizarUsuarioRequest struct {
	NuevoUsername string `json:"nuevo_username" validate:"required"`
	ClaveActual   string `json:"clave_actual"`
	NuevaClave    string `json:"nueva_clave"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse representación de salida del usuario (nunca incluye el
// hash de contraseña).
type UsuarioResponse struct {
	Username string `json:"username"`
}

// LoginResponse token de sesión más el usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// ExisteUsuarioResponse resultado de la verificación de existencia.
type ExisteUsuarioResponse struct {
	Existe bool `json:"existe"`
}

// NewUsuarioResponse arma la respuesta desde la entidad.
func NewUsuarioResponse(u *entity.Usuario) *UsuarioResponse {
	if u == nil {
		return nil
	}
	return &UsuarioResponse{Username: u.Username()}
}
