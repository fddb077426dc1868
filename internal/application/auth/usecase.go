package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
	"github.com/jhoicas/puntoventa-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de la cuenta única del sistema: creación,
// actualización de credenciales y login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// CrearUsuario registra el único usuario del sistema: valida username y
// contraseña según la política del dominio, hashea con bcrypt y persiste.
// Rechaza con ErrConflict si ya existe un usuario.
func (uc *AuthUseCase) CrearUsuario(in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	existe, err := uc.usuarioRepo.Existe()
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, fmt.Errorf("%w: ya existe un usuario registrado", domain.ErrConflict)
	}

	username, err := entity.ValidarUsername(in.Username)
	if err != nil {
		return nil, err
	}
	password, err := entity.ValidarPassword(in.Password)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := entity.NewUsuario(username, string(hash))
	if err := uc.usuarioRepo.Crear(usuario); err != nil {
		return nil, err
	}
	return dto.NewUsuarioResponse(usuario), nil
}

// ActualizarUsuario reemplaza el username (sin chequeo de unicidad: el
// sistema es mono-usuario) y, si se indica una nueva clave, la cambia previa
// verificación de la clave actual contra el hash almacenado. Se persiste una
// sola vez, después de pasar todas las validaciones.
func (uc *AuthUseCase) ActualizarUsuario(in dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.Obtener()
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, fmt.Errorf("%w: no existe un usuario registrado para actualizar", domain.ErrNotFound)
	}

	if err := usuario.SetUsername(in.NuevoUsername); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.NuevaClave) != "" {
		if strings.TrimSpace(in.ClaveActual) == "" {
			return nil, fmt.Errorf("%w: debe ingresar la contraseña actual para cambiarla", domain.ErrInvalidInput)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash()), []byte(in.ClaveActual)); err != nil {
			return nil, fmt.Errorf("%w: la contraseña actual no es correcta", domain.ErrUnauthorized)
		}
		nuevaClave, err := entity.ValidarPassword(in.NuevaClave)
		if err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(nuevaClave), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.SetPasswordHash(string(hash))
	}

	if err := uc.usuarioRepo.Actualizar(usuario); err != nil {
		return nil, err
	}
	return dto.NewUsuarioResponse(usuario), nil
}

// Login verifica username y contraseña, genera un JWT y retorna token más
// usuario autenticado.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	registrado, err := uc.usuarioRepo.Existe()
	if err != nil {
		return nil, err
	}
	if !registrado {
		return nil, fmt.Errorf("%w: no existe ningún usuario registrado, debe crear uno antes de iniciar sesión", domain.ErrNotFound)
	}

	usuario, err := uc.usuarioRepo.BuscarPorNombre(in.Username)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, fmt.Errorf("%w: el usuario ingresado no existe", domain.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash()), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("%w: la contraseña ingresada es incorrecta", domain.ErrUnauthorized)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.Username(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *dto.NewUsuarioResponse(usuario),
	}, nil
}

// ExisteUsuario verificación pura de existencia, sin efectos.
func (uc *AuthUseCase) ExisteUsuario() (bool, error) {
	return uc.usuarioRepo.Existe()
}

// MostrarUsuario retorna el usuario registrado, o nil si no hay ninguno.
func (uc *AuthUseCase) MostrarUsuario() (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.Obtener()
	if err != nil {
		return nil, err
	}
	return dto.NewUsuarioResponse(usuario), nil
}
