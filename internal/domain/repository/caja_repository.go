package repository

import (
	"time"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// CajaRepository define el puerto de persistencia para Caja (DIP).
// La unicidad de caja activa debe respaldarse en la capa de persistencia
// (índice único parcial) además del chequeo del caso de uso.
type CajaRepository interface {
	Guardar(caja *entity.Caja) error
	// ObtenerActiva retorna la caja abierta, o nil si no hay ninguna.
	ObtenerActiva() (*entity.Caja, error)
	// Cerrar persiste el cierre por la vía dedicada (fecha de cierre y
	// bandera en una sola escritura).
	Cerrar(caja *entity.Caja) error
	ListarCerradas() ([]*entity.Caja, error)
	BuscarPorID(id int64) (*entity.Caja, error)
	BuscarPorFecha(fecha time.Time) (*entity.Caja, error)
}
