package usecase

import (
	"fmt"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Registrar crea un proveedor nuevo. Nombre y RUC se verifican por separado
// y cada duplicado produce su propio mensaje.
func (uc *ProveedorUseCase) Registrar(in dto.RegistrarProveedorRequest) (*dto.ProveedorResponse, error) {
	existente, err := uc.repo.BuscarPorNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("%w: ya existe un proveedor con el nombre ingresado", domain.ErrDuplicate)
	}

	existente, err = uc.repo.BuscarPorRUC(in.RUC)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("%w: ya existe un proveedor con el RUC ingresado", domain.ErrDuplicate)
	}

	proveedor, err := entity.NewProveedor(in.ID, in.Nombre, in.RUC)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Guardar(proveedor); err != nil {
		return nil, err
	}
	return dto.NewProveedorResponse(proveedor), nil
}

// Actualizar modifica un proveedor existente, verificando duplicidad de
// nombre y RUC contra otros proveedores (excluyéndose a sí mismo).
func (uc *ProveedorUseCase) Actualizar(id int64, in dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, fmt.Errorf("%w: el proveedor no existe", domain.ErrNotFound)
	}

	duplicado, err := uc.repo.BuscarPorNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	if duplicado != nil && duplicado.ID() != id {
		return nil, fmt.Errorf("%w: ya existe otro proveedor con el nombre ingresado", domain.ErrDuplicate)
	}

	duplicado, err = uc.repo.BuscarPorRUC(in.RUC)
	if err != nil {
		return nil, err
	}
	if duplicado != nil && duplicado.ID() != id {
		return nil, fmt.Errorf("%w: ya existe otro proveedor con el RUC ingresado", domain.ErrDuplicate)
	}

	if err := proveedor.SetNombre(in.Nombre); err != nil {
		return nil, err
	}
	if err := proveedor.SetRUC(in.RUC); err != nil {
		return nil, err
	}

	if err := uc.repo.Actualizar(proveedor); err != nil {
		return nil, err
	}
	return dto.NewProveedorResponse(proveedor), nil
}

// Eliminar borra un proveedor. Rechaza con ErrConflict si tiene productos
// registrados.
func (uc *ProveedorUseCase) Eliminar(id int64) error {
	proveedor, err := uc.repo.BuscarPorID(id)
	if err != nil {
		return err
	}
	if proveedor == nil {
		return fmt.Errorf("%w: el proveedor no existe", domain.ErrNotFound)
	}

	tieneProductos, err := uc.repo.TieneProductos(id)
	if err != nil {
		return err
	}
	if tieneProductos {
		return fmt.Errorf("%w: el proveedor tiene productos registrados", domain.ErrConflict)
	}

	return uc.repo.Eliminar(id)
}

// Listar retorna todos los proveedores.
func (uc *ProveedorUseCase) Listar() ([]*dto.ProveedorResponse, error) {
	proveedores, err := uc.repo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, dto.NewProveedorResponse(p))
	}
	return out, nil
}

// BuscarPorID retorna un proveedor por su identificador, o nil si no existe.
func (uc *ProveedorUseCase) BuscarPorID(id int64) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	return dto.NewProveedorResponse(proveedor), nil
}
