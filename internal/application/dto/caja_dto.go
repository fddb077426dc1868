package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// AbrirCajaRequest datos para abrir una caja. El ID lo asigna el llamador.
type AbrirCajaRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// CajaResponse representación de salida de una sesión de caja con sus
// agregados calculados por sumatoria.
type CajaResponse struct {
	ID               int64           `json:"id"`
	FechaApertura    time.Time       `json:"fecha_apertura"`
	FechaCierre      *time.Time      `json:"fecha_cierre,omitempty"`
	Cerrada          bool            `json:"cerrada"`
	Ventas           []VentaResponse `json:"ventas"`
	SubtotalCentavos int64           `json:"subtotal_centavos"`
	ImpuestoCentavos int64           `json:"impuesto_centavos"`
	TotalCentavos    int64           `json:"total_centavos"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Impuesto         decimal.Decimal `json:"impuesto"`
	Total            decimal.Decimal `json:"total"`
}

// NewCajaResponse arma la respuesta desde la entidad.
func NewCajaResponse(c *entity.Caja) *CajaResponse {
	if c == nil {
		return nil
	}
	ventas := make([]VentaResponse, 0, len(c.Ventas()))
	for _, v := range c.Ventas() {
		ventas = append(ventas, *NewVentaResponse(v))
	}
	return &CajaResponse{
		ID:               c.ID(),
		FechaApertura:    c.FechaApertura(),
		FechaCierre:      c.FechaCierre(),
		Cerrada:          c.EstaCerrada(),
		Ventas:           ventas,
		SubtotalCentavos: c.SubtotalCentavos(),
		ImpuestoCentavos: c.ImpuestoCentavos(),
		TotalCentavos:    c.TotalCentavos(),
		Subtotal:         Soles(c.SubtotalCentavos()),
		Impuesto:         Soles(c.ImpuestoCentavos()),
		Total:            Soles(c.TotalCentavos()),
	}
}
