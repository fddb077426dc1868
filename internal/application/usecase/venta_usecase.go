package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// VentaUseCase consultas y bajas sobre ventas ya registradas. El alta de
// ventas pasa siempre por CajaUseCase.RegistrarVenta.
type VentaUseCase struct {
	repo repository.VentaRepository
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(repo repository.VentaRepository) *VentaUseCase {
	return &VentaUseCase{repo: repo}
}

// Listar retorna todas las ventas registradas.
func (uc *VentaUseCase) Listar() ([]*dto.VentaResponse, error) {
	ventas, err := uc.repo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, dto.NewVentaResponse(v))
	}
	return out, nil
}

// BuscarPorID retorna una venta por su identificador, o nil si no existe.
func (uc *VentaUseCase) BuscarPorID(id int64) (*dto.VentaResponse, error) {
	venta, err := uc.repo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	return dto.NewVentaResponse(venta), nil
}

// BuscarPorFecha retorna las ventas de la fecha indicada.
func (uc *VentaUseCase) BuscarPorFecha(fecha time.Time) ([]*dto.VentaResponse, error) {
	ventas, err := uc.repo.BuscarPorFecha(fecha)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, dto.NewVentaResponse(v))
	}
	return out, nil
}

// Eliminar borra una venta registrada.
func (uc *VentaUseCase) Eliminar(id int64) error {
	venta, err := uc.repo.BuscarPorID(id)
	if err != nil {
		return err
	}
	if venta == nil {
		return fmt.Errorf("%w: la venta no existe", domain.ErrNotFound)
	}
	return uc.repo.Eliminar(id)
}
