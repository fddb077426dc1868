package repository

import (
	"time"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para Venta (DIP).
type VentaRepository interface {
	Agregar(venta *entity.Venta) error
	Eliminar(id int64) error
	Listar() ([]*entity.Venta, error)
	BuscarPorID(id int64) (*entity.Venta, error)
	BuscarPorFecha(fecha time.Time) ([]*entity.Venta, error)
	// ProductoEnVentas indica si el producto aparece en alguna venta
	// registrada; un producto referenciado no puede eliminarse.
	ProductoEnVentas(productoID int64) (bool, error)
}
