package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.CajaRepository = (*CajaRepo)(nil)

// CajaRepo implementación del puerto CajaRepository sobre PostgreSQL.
// El índice único parcial cajas_una_activa garantiza a nivel de storage que
// no haya más de una caja abierta, respaldando el chequeo del caso de uso.
type CajaRepo struct {
	pool *pgxpool.Pool
}

// NewCajaRepository construye el adaptador de persistencia para la caja.
func NewCajaRepository(pool *pgxpool.Pool) *CajaRepo {
	return &CajaRepo{pool: pool}
}

// Guardar persiste la sesión (upsert de cabecera) y sus ventas. Las ventas
// ya persistidas se dejan intactas; solo se insertan las nuevas.
func (r *CajaRepo) Guardar(caja *entity.Caja) error {
	query := `
		INSERT INTO cajas (id, fecha_apertura, fecha_cierre, cerrada)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET fecha_cierre = EXCLUDED.fecha_cierre, cerrada = EXCLUDED.cerrada`
	_, err := r.pool.Exec(context.Background(), query,
		caja.ID(), caja.FechaApertura(), caja.FechaCierre(), caja.EstaCerrada(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe una caja activa", domain.ErrConflict)
		}
		return fmt.Errorf("upsert caja: %w", err)
	}
	cajaID := caja.ID()
	for _, venta := range caja.Ventas() {
		if err := insertarVenta(r.pool, venta, &cajaID); err != nil {
			return err
		}
	}
	return nil
}

// ObtenerActiva retorna la caja abierta con sus ventas, o nil si no hay.
func (r *CajaRepo) ObtenerActiva() (*entity.Caja, error) {
	return r.buscar(`SELECT id, fecha_apertura, fecha_cierre, cerrada FROM cajas WHERE NOT cerrada`)
}

// Cerrar persiste el cierre por la vía dedicada.
func (r *CajaRepo) Cerrar(caja *entity.Caja) error {
	query := `UPDATE cajas SET cerrada = TRUE, fecha_cierre = $2 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, caja.ID(), caja.FechaCierre())
	if err != nil {
		return fmt.Errorf("cerrar caja: %w", err)
	}
	return nil
}

// ListarCerradas retorna el histórico de cajas cerradas con sus ventas.
func (r *CajaRepo) ListarCerradas() ([]*entity.Caja, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, fecha_apertura, fecha_cierre, cerrada FROM cajas WHERE cerrada ORDER BY fecha_apertura`)
	if err != nil {
		return nil, fmt.Errorf("list cajas cerradas: %w", err)
	}
	defer rows.Close()

	type cabecera struct {
		id            int64
		fechaApertura time.Time
		fechaCierre   *time.Time
		cerrada       bool
	}
	var cabeceras []cabecera
	for rows.Next() {
		var c cabecera
		if err := rows.Scan(&c.id, &c.fechaApertura, &c.fechaCierre, &c.cerrada); err != nil {
			return nil, err
		}
		cabeceras = append(cabeceras, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cajas := make([]*entity.Caja, 0, len(cabeceras))
	for _, c := range cabeceras {
		ventas, err := cargarVentas(r.pool,
			`SELECT id, fecha, cliente_id, descuento_centavos FROM ventas WHERE caja_id = $1 ORDER BY id`, c.id)
		if err != nil {
			return nil, err
		}
		cajas = append(cajas, entity.RehidratarCaja(c.id, c.fechaApertura, c.fechaCierre, c.cerrada, ventas))
	}
	return cajas, nil
}

// BuscarPorID retorna una caja por su identificador, o nil si no existe.
func (r *CajaRepo) BuscarPorID(id int64) (*entity.Caja, error) {
	return r.buscar(`SELECT id, fecha_apertura, fecha_cierre, cerrada FROM cajas WHERE id = $1`, id)
}

// BuscarPorFecha retorna la caja abierta en la fecha indicada, o nil.
func (r *CajaRepo) BuscarPorFecha(fecha time.Time) (*entity.Caja, error) {
	return r.buscar(
		`SELECT id, fecha_apertura, fecha_cierre, cerrada FROM cajas WHERE fecha_apertura::date = $1::date`,
		fecha)
}

func (r *CajaRepo) buscar(query string, args ...any) (*entity.Caja, error) {
	var (
		id            int64
		fechaApertura time.Time
		fechaCierre   *time.Time
		cerrada       bool
	)
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(&id, &fechaApertura, &fechaCierre, &cerrada)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get caja: %w", err)
	}
	ventas, err := cargarVentas(r.pool,
		`SELECT id, fecha, cliente_id, descuento_centavos FROM ventas WHERE caja_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	return entity.RehidratarCaja(id, fechaApertura, fechaCierre, cerrada, ventas), nil
}
