package repository

import (
	"time"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// InformeRepository define el puerto de persistencia para Informe (DIP).
// La generación agrega ventas en el backend; la entidad solo aporta el rango.
type InformeRepository interface {
	GenerarPorCaja(cajaID int64) error
	GenerarPorFechas(informe *entity.Informe) error
	Eliminar(id int64) error
	Listar() ([]*entity.Informe, error)
	BuscarPorID(id int64) (*entity.Informe, error)
	BuscarPorFecha(fecha time.Time) ([]*entity.Informe, error)
}
