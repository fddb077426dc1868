package repository

import "github.com/jhoicas/puntoventa-api/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor (DIP).
type ProveedorRepository interface {
	Guardar(proveedor *entity.Proveedor) error
	Actualizar(proveedor *entity.Proveedor) error
	Eliminar(id int64) error
	Listar() ([]*entity.Proveedor, error)
	BuscarPorID(id int64) (*entity.Proveedor, error)
	BuscarPorNombre(nombre string) (*entity.Proveedor, error)
	BuscarPorRUC(ruc int64) (*entity.Proveedor, error)
	// TieneProductos indica si el proveedor tiene productos asociados;
	// un proveedor con productos no puede eliminarse.
	TieneProductos(id int64) (bool, error)
}
