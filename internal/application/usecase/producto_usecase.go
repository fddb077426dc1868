package usecase

import (
	"fmt"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// ProductoUseCase casos de uso del catálogo de productos: registro,
// actualización, eliminación lógica, restauración y consultas.
type ProductoUseCase struct {
	productoRepo repository.ProductoRepository
	ventaRepo    repository.VentaRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productoRepo repository.ProductoRepository, ventaRepo repository.VentaRepository) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo, ventaRepo: ventaRepo}
}

// Registrar crea un producto nuevo. Rechaza con ErrDuplicate si ya existe
// un producto con el mismo nombre.
func (uc *ProductoUseCase) Registrar(in dto.RegistrarProductoRequest) (*dto.ProductoResponse, error) {
	duplicado, err := uc.productoRepo.BuscarPorNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	if duplicado != nil {
		return nil, fmt.Errorf("%w: ya existe un producto con el nombre ingresado", domain.ErrDuplicate)
	}

	producto, err := entity.NewProducto(in.ID, in.Nombre, in.PrecioCompraCentavos, in.PrecioVentaCentavos, in.IGVCentavos, in.Stock)
	if err != nil {
		return nil, err
	}
	if err := uc.productoRepo.Guardar(producto); err != nil {
		return nil, err
	}
	return dto.NewProductoResponse(producto), nil
}

// Actualizar modifica un producto activo. Un producto eliminado lógicamente
// no puede modificarse; primero debe restaurarse.
func (uc *ProductoUseCase) Actualizar(id int64, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, fmt.Errorf("%w: el producto no existe", domain.ErrNotFound)
	}
	if producto.EstaEliminado() {
		return nil, fmt.Errorf("%w: el producto ha sido eliminado y no puede modificarse", domain.ErrInvalidState)
	}

	duplicado, err := uc.productoRepo.BuscarPorNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	if duplicado != nil && duplicado.ID() != id {
		return nil, fmt.Errorf("%w: ya existe otro producto con este nombre", domain.ErrDuplicate)
	}

	// Los setters re-validan cada campo en cada asignación.
	if err := producto.SetNombre(in.Nombre); err != nil {
		return nil, err
	}
	if err := producto.SetPrecioCompra(in.PrecioCompraCentavos); err != nil {
		return nil, err
	}
	if err := producto.SetPrecioVenta(in.PrecioVentaCentavos); err != nil {
		return nil, err
	}
	if err := producto.SetIGV(in.IGVCentavos); err != nil {
		return nil, err
	}
	if err := producto.SetStock(in.Stock); err != nil {
		return nil, err
	}

	if err := uc.productoRepo.Actualizar(producto); err != nil {
		return nil, err
	}
	return dto.NewProductoResponse(producto), nil
}

// Eliminar aplica la eliminación lógica. Rechaza con ErrConflict si el
// producto está vinculado a ventas registradas.
func (uc *ProductoUseCase) Eliminar(id int64) error {
	producto, err := uc.productoRepo.BuscarPorID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return fmt.Errorf("%w: el producto no existe", domain.ErrNotFound)
	}

	enVentas, err := uc.ventaRepo.ProductoEnVentas(id)
	if err != nil {
		return err
	}
	if enVentas {
		return fmt.Errorf("%w: no se puede eliminar el producto, está vinculado a ventas activas", domain.ErrConflict)
	}

	producto.Eliminar()
	return uc.productoRepo.Actualizar(producto)
}

// Restaurar revierte la eliminación lógica de un producto.
func (uc *ProductoUseCase) Restaurar(id int64) error {
	producto, err := uc.productoRepo.BuscarPorID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return fmt.Errorf("%w: el producto no existe", domain.ErrNotFound)
	}
	if !producto.EstaEliminado() {
		return fmt.Errorf("%w: el producto ya está activo, no es necesario restaurarlo", domain.ErrInvalidState)
	}

	producto.Restaurar()
	return uc.productoRepo.Actualizar(producto)
}

// Listar retorna todos los productos.
func (uc *ProductoUseCase) Listar() ([]*dto.ProductoResponse, error) {
	productos, err := uc.productoRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, dto.NewProductoResponse(p))
	}
	return out, nil
}

// BuscarPorID retorna un producto por su identificador, o nil si no existe.
func (uc *ProductoUseCase) BuscarPorID(id int64) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	return dto.NewProductoResponse(producto), nil
}
