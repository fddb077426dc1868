package repository

import "github.com/jhoicas/puntoventa-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// Eliminar y Restaurar operan sobre el indicador lógico; el registro nunca
// se borra físicamente.
type ProductoRepository interface {
	Guardar(producto *entity.Producto) error
	Actualizar(producto *entity.Producto) error
	BuscarPorID(id int64) (*entity.Producto, error)
	BuscarPorNombre(nombre string) (*entity.Producto, error)
	Listar() ([]*entity.Producto, error)
	Eliminar(id int64) error
	Restaurar(id int64) error
}
