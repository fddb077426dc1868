package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// InformeUseCase generación y consulta de informes de ventas. La entidad
// valida el rango de fechas; la agregación la ejecuta el backend de
// persistencia.
type InformeUseCase struct {
	informeRepo repository.InformeRepository
	cajaRepo    repository.CajaRepository
}

// NewInformeUseCase construye el caso de uso.
func NewInformeUseCase(informeRepo repository.InformeRepository, cajaRepo repository.CajaRepository) *InformeUseCase {
	return &InformeUseCase{informeRepo: informeRepo, cajaRepo: cajaRepo}
}

// GenerarPorCaja genera el informe de una sesión de caja existente.
func (uc *InformeUseCase) GenerarPorCaja(cajaID int64) error {
	caja, err := uc.cajaRepo.BuscarPorID(cajaID)
	if err != nil {
		return err
	}
	if caja == nil {
		return fmt.Errorf("%w: la caja no existe", domain.ErrNotFound)
	}
	return uc.informeRepo.GenerarPorCaja(cajaID)
}

// GenerarPorFechas genera un informe para un rango de fechas validado.
func (uc *InformeUseCase) GenerarPorFechas(in dto.GenerarInformeRequest) (*dto.InformeResponse, error) {
	informe, err := entity.NewInforme(in.ID, in.FechaInicial, in.FechaFinal)
	if err != nil {
		return nil, err
	}
	if err := uc.informeRepo.GenerarPorFechas(informe); err != nil {
		return nil, err
	}
	return dto.NewInformeResponse(informe), nil
}

// Eliminar borra un informe generado.
func (uc *InformeUseCase) Eliminar(id int64) error {
	informe, err := uc.informeRepo.BuscarPorID(id)
	if err != nil {
		return err
	}
	if informe == nil {
		return fmt.Errorf("%w: el informe no existe", domain.ErrNotFound)
	}
	return uc.informeRepo.Eliminar(id)
}

// Listar retorna todos los informes generados.
func (uc *InformeUseCase) Listar() ([]*dto.InformeResponse, error) {
	informes, err := uc.informeRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InformeResponse, 0, len(informes))
	for _, i := range informes {
		out = append(out, dto.NewInformeResponse(i))
	}
	return out, nil
}

// BuscarPorID retorna un informe por su identificador, o nil si no existe.
func (uc *InformeUseCase) BuscarPorID(id int64) (*dto.InformeResponse, error) {
	informe, err := uc.informeRepo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	return dto.NewInformeResponse(informe), nil
}

// BuscarPorFecha retorna los informes cuyo rango contiene la fecha indicada.
func (uc *InformeUseCase) BuscarPorFecha(fecha time.Time) ([]*dto.InformeResponse, error) {
	informes, err := uc.informeRepo.BuscarPorFecha(fecha)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InformeResponse, 0, len(informes))
	for _, i := range informes {
		out = append(out, dto.NewInformeResponse(i))
	}
	return out, nil
}
