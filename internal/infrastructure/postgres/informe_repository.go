package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.InformeRepository = (*InformeRepo)(nil)

// InformeRepo implementación del puerto InformeRepository sobre PostgreSQL.
// Los agregados (NUMERIC en soles) se calculan con SQL sobre las ventas al
// momento de generar; la fila del informe conserva el rango y los totales.
type InformeRepo struct {
	pool *pgxpool.Pool
}

// NewInformeRepository construye el adaptador de persistencia para informes.
func NewInformeRepository(pool *pgxpool.Pool) *InformeRepo {
	return &InformeRepo{pool: pool}
}

// GenerarPorCaja materializa el informe de una sesión de caja: el rango es
// [fecha_apertura, fecha_cierre] (o ahora si sigue abierta).
func (r *InformeRepo) GenerarPorCaja(cajaID int64) error {
	query := `
		INSERT INTO informes (fecha_inicial, fecha_final, total_soles)
		SELECT c.fecha_apertura,
		       COALESCE(c.fecha_cierre, NOW()),
		       COALESCE(SUM(vt.total_centavos), 0)::NUMERIC / 100
		FROM cajas c
		LEFT JOIN (
			SELECT v.caja_id,
			       SUM(d.cantidad * d.precio_unitario_centavos)
			       + ROUND(SUM(d.cantidad * d.precio_unitario_centavos) * 0.18)
			       - MAX(v.descuento_centavos) AS total_centavos
			FROM ventas v
			JOIN venta_detalles d ON d.venta_id = v.id
			GROUP BY v.id, v.caja_id
		) vt ON vt.caja_id = c.id
		WHERE c.id = $1
		GROUP BY c.id`
	_, err := r.pool.Exec(context.Background(), query, cajaID)
	if err != nil {
		return fmt.Errorf("generar informe por caja: %w", err)
	}
	return nil
}

// GenerarPorFechas materializa un informe para el rango validado por la
// entidad.
func (r *InformeRepo) GenerarPorFechas(informe *entity.Informe) error {
	query := `
		INSERT INTO informes (id, fecha_inicial, fecha_final, total_soles)
		SELECT $1, $2::timestamp, $3::timestamp,
		       COALESCE(SUM(vt.total_centavos), 0)::NUMERIC / 100
		FROM (
			SELECT SUM(d.cantidad * d.precio_unitario_centavos)
			       + ROUND(SUM(d.cantidad * d.precio_unitario_centavos) * 0.18)
			       - MAX(v.descuento_centavos) AS total_centavos
			FROM ventas v
			JOIN venta_detalles d ON d.venta_id = v.id
			WHERE v.fecha BETWEEN $2 AND $3
			GROUP BY v.id
		) vt`
	_, err := r.pool.Exec(context.Background(), query,
		informe.ID(), informe.FechaInicial(), informe.FechaFinal())
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un informe con ese identificador", domain.ErrDuplicate)
		}
		return fmt.Errorf("generar informe por fechas: %w", err)
	}
	return nil
}

// Eliminar borra un informe generado.
func (r *InformeRepo) Eliminar(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM informes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete informe: %w", err)
	}
	return nil
}

// Listar retorna todos los informes generados.
func (r *InformeRepo) Listar() ([]*entity.Informe, error) {
	return r.cargar(`SELECT id, fecha_inicial, fecha_final, total_soles FROM informes ORDER BY id`)
}

// BuscarPorID retorna un informe por su identificador, o nil si no existe.
func (r *InformeRepo) BuscarPorID(id int64) (*entity.Informe, error) {
	var (
		informeID                int64
		fechaInicial, fechaFinal time.Time
		total                    decimal.Decimal
	)
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, fecha_inicial, fecha_final, total_soles FROM informes WHERE id = $1`, id).
		Scan(&informeID, &fechaInicial, &fechaFinal, &total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get informe: %w", err)
	}
	return entity.RehidratarInforme(informeID, fechaInicial, fechaFinal, solesACentavos(total)), nil
}

// BuscarPorFecha retorna los informes cuyo rango contiene la fecha indicada.
func (r *InformeRepo) BuscarPorFecha(fecha time.Time) ([]*entity.Informe, error) {
	return r.cargar(
		`SELECT id, fecha_inicial, fecha_final, total_soles FROM informes WHERE $1::date BETWEEN fecha_inicial::date AND fecha_final::date ORDER BY id`,
		fecha)
}

func (r *InformeRepo) cargar(query string, args ...any) ([]*entity.Informe, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query informes: %w", err)
	}
	defer rows.Close()

	var informes []*entity.Informe
	for rows.Next() {
		var (
			id                       int64
			fechaInicial, fechaFinal time.Time
			total                    decimal.Decimal
		)
		if err := rows.Scan(&id, &fechaInicial, &fechaFinal, &total); err != nil {
			return nil, err
		}
		informes = append(informes, entity.RehidratarInforme(id, fechaInicial, fechaFinal, solesACentavos(total)))
	}
	return informes, rows.Err()
}

// solesACentavos convierte el NUMERIC en soles (escaneado vía el codec
// shopspring del pool) a centavos enteros para la entidad.
func solesACentavos(soles decimal.Decimal) int64 {
	return soles.Shift(2).Round(0).IntPart()
}
