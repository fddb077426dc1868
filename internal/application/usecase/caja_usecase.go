package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// CajaUseCase casos de uso de la sesión de caja: apertura, registro de
// ventas, cierre y consultas. Cada mutación persiste exactamente una vez
// después de mutar en memoria.
type CajaUseCase struct {
	cajaRepo repository.CajaRepository
}

// NewCajaUseCase construye el caso de uso.
func NewCajaUseCase(cajaRepo repository.CajaRepository) *CajaUseCase {
	return &CajaUseCase{cajaRepo: cajaRepo}
}

// Abrir abre una nueva caja. Rechaza con ErrConflict si ya hay una activa;
// la caja existente no se ve afectada.
func (uc *CajaUseCase) Abrir(in dto.AbrirCajaRequest) (*dto.CajaResponse, error) {
	activa, err := uc.cajaRepo.ObtenerActiva()
	if err != nil {
		return nil, err
	}
	if activa != nil {
		return nil, fmt.Errorf("%w: ya existe una caja activa", domain.ErrConflict)
	}

	caja := entity.NewCaja(in.ID)
	if err := uc.cajaRepo.Guardar(caja); err != nil {
		return nil, err
	}
	return dto.NewCajaResponse(caja), nil
}

// Cerrar cierra la caja activa por la vía de persistencia dedicada.
func (uc *CajaUseCase) Cerrar() (*dto.CajaResponse, error) {
	caja, err := uc.cajaRepo.ObtenerActiva()
	if err != nil {
		return nil, err
	}
	if caja == nil {
		return nil, fmt.Errorf("%w: no existe una caja activa para cerrar", domain.ErrNotFound)
	}
	if err := caja.Cerrar(); err != nil {
		return nil, err
	}
	if err := uc.cajaRepo.Cerrar(caja); err != nil {
		return nil, err
	}
	return dto.NewCajaResponse(caja), nil
}

// RegistrarVenta construye la venta, la agrega a la caja activa y persiste
// el estado actualizado.
func (uc *CajaUseCase) RegistrarVenta(in dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	caja, err := uc.cajaRepo.ObtenerActiva()
	if err != nil {
		return nil, err
	}
	if caja == nil {
		return nil, fmt.Errorf("%w: no existe una caja activa", domain.ErrNotFound)
	}
	if caja.EstaCerrada() {
		return nil, fmt.Errorf("%w: la caja está cerrada", domain.ErrInvalidState)
	}

	fecha := in.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}
	detalles := make([]entity.DetalleVenta, 0, len(in.Detalles))
	for _, d := range in.Detalles {
		detalles = append(detalles, entity.DetalleVenta{
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
		})
	}
	venta, err := entity.NewVenta(in.ID, fecha, in.ClienteID, detalles)
	if err != nil {
		return nil, err
	}
	if in.DescuentoCentavos > 0 {
		if err := venta.AplicarDescuento(in.DescuentoCentavos); err != nil {
			return nil, err
		}
	}

	if err := caja.RegistrarVenta(venta); err != nil {
		return nil, err
	}
	if err := uc.cajaRepo.Guardar(caja); err != nil {
		return nil, err
	}
	return dto.NewVentaResponse(venta), nil
}

// MostrarActiva retorna la caja abierta, o nil si no hay ninguna.
func (uc *CajaUseCase) MostrarActiva() (*dto.CajaResponse, error) {
	caja, err := uc.cajaRepo.ObtenerActiva()
	if err != nil {
		return nil, err
	}
	return dto.NewCajaResponse(caja), nil
}

// ListarCerradas retorna el histórico de cajas cerradas.
func (uc *CajaUseCase) ListarCerradas() ([]*dto.CajaResponse, error) {
	cajas, err := uc.cajaRepo.ListarCerradas()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CajaResponse, 0, len(cajas))
	for _, c := range cajas {
		out = append(out, dto.NewCajaResponse(c))
	}
	return out, nil
}

// BuscarPorFecha retorna la caja abierta en la fecha indicada, o nil.
func (uc *CajaUseCase) BuscarPorFecha(fecha time.Time) (*dto.CajaResponse, error) {
	caja, err := uc.cajaRepo.BuscarPorFecha(fecha)
	if err != nil {
		return nil, err
	}
	return dto.NewCajaResponse(caja), nil
}
