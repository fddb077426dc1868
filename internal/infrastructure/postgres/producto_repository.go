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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	pool *pgxpool.Pool
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(pool *pgxpool.Pool) *ProductoRepo {
	return &ProductoRepo{pool: pool}
}

// Guardar persiste un producto nuevo.
func (r *ProductoRepo) Guardar(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, precio_compra_centavos, precio_venta_centavos, igv_centavos, stock, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		producto.ID(), producto.Nombre(), producto.PrecioCompraCentavos(),
		producto.PrecioVentaCentavos(), producto.IGVCentavos(), producto.Stock(), producto.Estado(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un producto con el nombre ingresado", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// Actualizar sobreescribe el producto completo, incluido el estado lógico.
func (r *ProductoRepo) Actualizar(producto *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, precio_compra_centavos = $3, precio_venta_centavos = $4,
		    igv_centavos = $5, stock = $6, estado = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		producto.ID(), producto.Nombre(), producto.PrecioCompraCentavos(),
		producto.PrecioVentaCentavos(), producto.IGVCentavos(), producto.Stock(), producto.Estado(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe otro producto con este nombre", domain.ErrDuplicate)
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// BuscarPorID obtiene un producto por ID, o nil si no existe.
func (r *ProductoRepo) BuscarPorID(id int64) (*entity.Producto, error) {
	query := `
		SELECT id, nombre, precio_compra_centavos, precio_venta_centavos, igv_centavos, stock, estado
		FROM productos WHERE id = $1`
	return r.scanProducto(r.pool.QueryRow(context.Background(), query, id))
}

// BuscarPorNombre obtiene un producto por nombre exacto, o nil si no existe.
func (r *ProductoRepo) BuscarPorNombre(nombre string) (*entity.Producto, error) {
	query := `
		SELECT id, nombre, precio_compra_centavos, precio_venta_centavos, igv_centavos, stock, estado
		FROM productos WHERE nombre = $1`
	return r.scanProducto(r.pool.QueryRow(context.Background(), query, nombre))
}

// Listar retorna todos los productos, incluidos los eliminados lógicamente.
func (r *ProductoRepo) Listar() ([]*entity.Producto, error) {
	query := `
		SELECT id, nombre, precio_compra_centavos, precio_venta_centavos, igv_centavos, stock, estado
		FROM productos ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var productos []*entity.Producto
	for rows.Next() {
		p, err := scanProductoRow(rows)
		if err != nil {
			return nil, err
		}
		productos = append(productos, p)
	}
	return productos, rows.Err()
}

// Eliminar marca el producto como eliminado; nunca borra la fila.
func (r *ProductoRepo) Eliminar(id int64) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE productos SET estado = $2 WHERE id = $1`, id, entity.EstadoEliminado)
	if err != nil {
		return fmt.Errorf("soft delete producto: %w", err)
	}
	return nil
}

// Restaurar devuelve el producto al estado activo.
func (r *ProductoRepo) Restaurar(id int64) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE productos SET estado = $2 WHERE id = $1`, id, entity.EstadoActivo)
	if err != nil {
		return fmt.Errorf("restore producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) scanProducto(row pgx.Row) (*entity.Producto, error) {
	p, err := scanProductoRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func scanProductoRow(row pgx.Row) (*entity.Producto, error) {
	var (
		id                        int64
		nombre, estado            string
		precioCompra, precioVenta int64
		igv                       int64
		stock                     int
	)
	if err := row.Scan(&id, &nombre, &precioCompra, &precioVenta, &igv, &stock, &estado); err != nil {
		return nil, err
	}
	return entity.RehidratarProducto(id, nombre, precioCompra, precioVenta, igv, stock, estado), nil
}
