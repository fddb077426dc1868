package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL.
// Cada venta persiste su cabecera en ventas y sus líneas en venta_detalles;
// los derivados (subtotal, impuesto, total) se recalculan al rehidratar.
type VentaRepo struct {
	pool *pgxpool.Pool
}

// NewVentaRepository construye el adaptador de persistencia para ventas.
func NewVentaRepository(pool *pgxpool.Pool) *VentaRepo {
	return &VentaRepo{pool: pool}
}

// Agregar persiste una venta suelta (sin caja asociada).
func (r *VentaRepo) Agregar(venta *entity.Venta) error {
	return insertarVenta(r.pool, venta, nil)
}

// Eliminar borra la venta y sus detalles (ON DELETE CASCADE).
func (r *VentaRepo) Eliminar(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}

// Listar retorna todas las ventas registradas.
func (r *VentaRepo) Listar() ([]*entity.Venta, error) {
	return cargarVentas(r.pool, `SELECT id, fecha, cliente_id, descuento_centavos FROM ventas ORDER BY id`)
}

// BuscarPorID retorna una venta por su identificador, o nil si no existe.
func (r *VentaRepo) BuscarPorID(id int64) (*entity.Venta, error) {
	ventas, err := cargarVentas(r.pool,
		`SELECT id, fecha, cliente_id, descuento_centavos FROM ventas WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(ventas) == 0 {
		return nil, nil
	}
	return ventas[0], nil
}

// BuscarPorFecha retorna las ventas del día indicado.
func (r *VentaRepo) BuscarPorFecha(fecha time.Time) ([]*entity.Venta, error) {
	return cargarVentas(r.pool,
		`SELECT id, fecha, cliente_id, descuento_centavos FROM ventas WHERE fecha::date = $1::date ORDER BY id`,
		fecha)
}

// ProductoEnVentas indica si el producto aparece en alguna línea de venta.
func (r *VentaRepo) ProductoEnVentas(productoID int64) (bool, error) {
	var existe bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM venta_detalles WHERE producto_id = $1)`, productoID).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("producto en ventas: %w", err)
	}
	return existe, nil
}

// insertarVenta inserta cabecera y detalles. cajaID nil para ventas sueltas.
// Usa ON CONFLICT DO NOTHING porque Caja.Guardar re-persiste la sesión
// completa con sus ventas ya existentes.
func insertarVenta(pool *pgxpool.Pool, venta *entity.Venta, cajaID *int64) error {
	ctx := context.Background()
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin venta: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		INSERT INTO ventas (id, caja_id, fecha, cliente_id, descuento_centavos)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`,
		venta.ID(), cajaID, venta.Fecha(), venta.ClienteID(), venta.DescuentoCentavos(),
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	if tag.RowsAffected() > 0 {
		for _, d := range venta.Detalles() {
			var productoID *int64
			if d.ProductoID != 0 {
				id := d.ProductoID
				productoID = &id
			}
			_, err := tx.Exec(ctx, `
				INSERT INTO venta_detalles (venta_id, producto_id, cantidad, precio_unitario_centavos)
				VALUES ($1, $2, $3, $4)`,
				venta.ID(), productoID, d.Cantidad, d.PrecioUnitario,
			)
			if err != nil {
				return fmt.Errorf("insert venta detalle: %w", err)
			}
		}
	}
	return tx.Commit(ctx)
}

// cargarVentas ejecuta la consulta de cabeceras y rehidrata cada venta con
// sus detalles, recalculando los derivados vía la entidad.
func cargarVentas(pool *pgxpool.Pool, query string, args ...any) ([]*entity.Venta, error) {
	ctx := context.Background()
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ventas: %w", err)
	}
	defer rows.Close()

	type cabecera struct {
		id        int64
		fecha     time.Time
		clienteID *int64
		descuento int64
	}
	var cabeceras []cabecera
	for rows.Next() {
		var c cabecera
		if err := rows.Scan(&c.id, &c.fecha, &c.clienteID, &c.descuento); err != nil {
			return nil, err
		}
		cabeceras = append(cabeceras, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ventas := make([]*entity.Venta, 0, len(cabeceras))
	for _, c := range cabeceras {
		detalles, err := cargarDetalles(pool, c.id)
		if err != nil {
			return nil, err
		}
		venta, err := entity.NewVenta(c.id, c.fecha, c.clienteID, detalles)
		if err != nil {
			return nil, fmt.Errorf("rehidratar venta %d: %w", c.id, err)
		}
		if c.descuento > 0 {
			if err := venta.AplicarDescuento(c.descuento); err != nil {
				return nil, fmt.Errorf("rehidratar venta %d: %w", c.id, err)
			}
		}
		ventas = append(ventas, venta)
	}
	return ventas, nil
}

func cargarDetalles(pool *pgxpool.Pool, ventaID int64) ([]entity.DetalleVenta, error) {
	rows, err := pool.Query(context.Background(), `
		SELECT COALESCE(producto_id, 0), cantidad, precio_unitario_centavos
		FROM venta_detalles WHERE venta_id = $1 ORDER BY id`, ventaID)
	if err != nil {
		return nil, fmt.Errorf("query detalles: %w", err)
	}
	defer rows.Close()

	var detalles []entity.DetalleVenta
	for rows.Next() {
		var d entity.DetalleVenta
		if err := rows.Scan(&d.ProductoID, &d.Cantidad, &d.PrecioUnitario); err != nil {
			return nil, err
		}
		detalles = append(detalles, d)
	}
	return detalles, rows.Err()
}

