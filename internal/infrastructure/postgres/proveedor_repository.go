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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	pool *pgxpool.Pool
}

// NewProveedorRepository construye el adaptador de persistencia para proveedores.
func NewProveedorRepository(pool *pgxpool.Pool) *ProveedorRepo {
	return &ProveedorRepo{pool: pool}
}

// Guardar persiste un proveedor nuevo.
func (r *ProveedorRepo) Guardar(proveedor *entity.Proveedor) error {
	query := `INSERT INTO proveedores (id, nombre, ruc) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(context.Background(), query, proveedor.ID(), proveedor.Nombre(), proveedor.RUC())
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un proveedor con el nombre o RUC ingresado", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// Actualizar sobreescribe el proveedor.
func (r *ProveedorRepo) Actualizar(proveedor *entity.Proveedor) error {
	query := `UPDATE proveedores SET nombre = $2, ruc = $3 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, proveedor.ID(), proveedor.Nombre(), proveedor.RUC())
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe otro proveedor con el nombre o RUC ingresado", domain.ErrDuplicate)
		}
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// Eliminar borra el proveedor.
func (r *ProveedorRepo) Eliminar(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}

// Listar retorna todos los proveedores.
func (r *ProveedorRepo) Listar() ([]*entity.Proveedor, error) {
	rows, err := r.pool.Query(context.Background(), `SELECT id, nombre, ruc FROM proveedores ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()

	var proveedores []*entity.Proveedor
	for rows.Next() {
		var (
			id, ruc int64
			nombre  string
		)
		if err := rows.Scan(&id, &nombre, &ruc); err != nil {
			return nil, err
		}
		proveedores = append(proveedores, entity.RehidratarProveedor(id, nombre, ruc))
	}
	return proveedores, rows.Err()
}

// BuscarPorID obtiene un proveedor por ID, o nil si no existe.
func (r *ProveedorRepo) BuscarPorID(id int64) (*entity.Proveedor, error) {
	return r.buscar(`SELECT id, nombre, ruc FROM proveedores WHERE id = $1`, id)
}

// BuscarPorNombre obtiene un proveedor por nombre exacto, o nil si no existe.
func (r *ProveedorRepo) BuscarPorNombre(nombre string) (*entity.Proveedor, error) {
	return r.buscar(`SELECT id, nombre, ruc FROM proveedores WHERE nombre = $1`, nombre)
}

// BuscarPorRUC obtiene un proveedor por RUC, o nil si no existe.
func (r *ProveedorRepo) BuscarPorRUC(ruc int64) (*entity.Proveedor, error) {
	return r.buscar(`SELECT id, nombre, ruc FROM proveedores WHERE ruc = $1`, ruc)
}

// TieneProductos indica si el proveedor tiene productos asociados.
func (r *ProveedorRepo) TieneProductos(id int64) (bool, error) {
	var existe bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM productos WHERE proveedor_id = $1)`, id).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("proveedor tiene productos: %w", err)
	}
	return existe, nil
}

func (r *ProveedorRepo) buscar(query string, arg any) (*entity.Proveedor, error) {
	var (
		id, ruc int64
		nombre  string
	)
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(&id, &nombre, &ruc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return entity.RehidratarProveedor(id, nombre, ruc), nil
}
