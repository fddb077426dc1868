package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
// La tabla usuarios es de fila única (constraint solo_uno), de modo que la
// unicidad del usuario queda garantizada también en la capa de persistencia.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para el usuario.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// Crear persiste el único usuario del sistema.
func (r *UsuarioRepo) Crear(usuario *entity.Usuario) error {
	query := `INSERT INTO usuarios (solo_uno, username, password_hash) VALUES (TRUE, $1, $2)`
	_, err := r.pool.Exec(context.Background(), query, usuario.Username(), usuario.PasswordHash())
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un usuario registrado", domain.ErrConflict)
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// Actualizar sobreescribe las credenciales del usuario.
func (r *UsuarioRepo) Actualizar(usuario *entity.Usuario) error {
	query := `UPDATE usuarios SET username = $1, password_hash = $2 WHERE solo_uno`
	_, err := r.pool.Exec(context.Background(), query, usuario.Username(), usuario.PasswordHash())
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// Obtener retorna el único usuario registrado, o nil si no existe.
func (r *UsuarioRepo) Obtener() (*entity.Usuario, error) {
	return r.buscar(`SELECT username, password_hash FROM usuarios WHERE solo_uno`)
}

// BuscarPorNombre retorna el usuario si su username coincide, o nil.
func (r *UsuarioRepo) BuscarPorNombre(username string) (*entity.Usuario, error) {
	return r.buscar(`SELECT username, password_hash FROM usuarios WHERE username = $1`, username)
}

// Existe verificación pura de existencia.
func (r *UsuarioRepo) Existe() (bool, error) {
	var existe bool
	err := r.pool.QueryRow(context.Background(), `SELECT EXISTS (SELECT 1 FROM usuarios)`).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe usuario: %w", err)
	}
	return existe, nil
}

func (r *UsuarioRepo) buscar(query string, args ...any) (*entity.Usuario, error) {
	var username, hash string
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(&username, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return entity.NewUsuario(username, hash), nil
}
