package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound el recurso solicitado no existe.
	ErrNotFound = errors.New("no encontrado")
	// ErrDuplicate ya existe un recurso con el mismo identificador natural.
	ErrDuplicate = errors.New("duplicado")
	// ErrConflict la operación choca con el estado actual del sistema.
	ErrConflict = errors.New("conflicto")
	// ErrInvalidInput los datos de entrada no pasan la validación.
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrInvalidState el recurso no admite la operación en su estado actual.
	ErrInvalidState = errors.New("estado inválido")
	// ErrUnauthorized credenciales inválidas o sesión no autorizada.
	ErrUnauthorized = errors.New("no autorizado")
)
