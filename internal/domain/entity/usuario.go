package entity

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jhoicas/puntoventa-api/internal/domain"
)

// Límites de validación para Usuario.
const (
	MinLongUsername = 4
	MaxLongUsername = 20
	MinLongPassword = 8
	MaxLongPassword = 12
)

// Usuario representa la única cuenta del sistema (single-tenant). La
// contraseña nunca se conserva en claro: la entidad almacena únicamente el
// hash bcrypt producido por la capa de aplicación.
type Usuario struct {
	username     string
	passwordHash string
}

// NewUsuario construye el usuario con un username ya validado y el hash de
// su contraseña.
func NewUsuario(username, passwordHash string) *Usuario {
	return &Usuario{username: username, passwordHash: passwordHash}
}

// ValidarUsername normaliza y valida un nombre de usuario para el registro:
// recorta espacios, descarta todo carácter fuera de [A-Za-z0-9_-] y exige
// entre 4 y 20 caracteres. Retorna el nombre saneado.
func ValidarUsername(username string) (string, error) {
	username = strings.TrimSpace(username)

	var b strings.Builder
	for _, r := range username {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	username = b.String()

	if username == "" {
		return "", fmt.Errorf("%w: el nombre de usuario no puede estar vacío", domain.ErrInvalidInput)
	}
	if len(username) < MinLongUsername || len(username) > MaxLongUsername {
		return "", fmt.Errorf("%w: el nombre de usuario debe tener entre 4 y 20 caracteres", domain.ErrInvalidInput)
	}
	return username, nil
}

// ValidarPassword valida una contraseña en claro contra la política del
// sistema, en este orden: no vacía, longitud 8-12, al menos una mayúscula,
// una minúscula, un dígito y un carácter especial. No hashea; eso corresponde
// a la capa de aplicación.
func ValidarPassword(password string) (string, error) {
	password = strings.TrimSpace(password)

	if password == "" {
		return "", fmt.Errorf("%w: la contraseña no puede estar vacía", domain.ErrInvalidInput)
	}
	if len(password) < MinLongPassword || len(password) > MaxLongPassword {
		return "", fmt.Errorf("%w: la contraseña debe tener entre 8 y 12 caracteres", domain.ErrInvalidInput)
	}

	var mayus, minus, digito, especial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			mayus = true
		case unicode.IsLower(r):
			minus = true
		case unicode.IsDigit(r):
			digito = true
		default:
			especial = true
		}
	}
	if !mayus {
		return "", fmt.Errorf("%w: la contraseña debe incluir al menos una letra mayúscula", domain.ErrInvalidInput)
	}
	if !minus {
		return "", fmt.Errorf("%w: la contraseña debe incluir al menos una letra minúscula", domain.ErrInvalidInput)
	}
	if !digito {
		return "", fmt.Errorf("%w: la contraseña debe incluir al menos un número", domain.ErrInvalidInput)
	}
	if !especial {
		return "", fmt.Errorf("%w: la contraseña debe incluir al menos un carácter especial", domain.ErrInvalidInput)
	}
	return password, nil
}

// SetUsername reemplaza el nombre de usuario aplicando la misma validación
// que el registro.
func (u *Usuario) SetUsername(username string) error {
	validado, err := ValidarUsername(username)
	if err != nil {
		return err
	}
	u.username = validado
	return nil
}

// SetPasswordHash reemplaza el hash almacenado. Recibe siempre un hash, nunca
// la contraseña en claro.
func (u *Usuario) SetPasswordHash(hash string) {
	u.passwordHash = hash
}

func (u *Usuario) Username() string     { return u.username }
func (u *Usuario) PasswordHash() string { return u.passwordHash }
