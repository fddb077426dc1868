package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// GenerarInformeRequest rango de fechas para generar un informe.
type GenerarInformeRequest struct {
	ID           int64     `json:"id" validate:"required,gt=0"`
	FechaInicial time.Time `json:"fecha_inicial" validate:"required"`
	FechaFinal   time.Time `json:"fecha_final" validate:"required"`
}

// InformeResponse representación de salida de un informe: centavos exactos
// más la conversión a soles para presentación.
type InformeResponse struct {
	ID            int64           `json:"id"`
	FechaInicial  time.Time       `json:"fecha_inicial"`
	FechaFinal    time.Time       `json:"fecha_final"`
	TotalCentavos int64           `json:"total_centavos"`
	Total         decimal.Decimal `json:"total_soles"`
}

// NewInformeResponse arma la respuesta desde la entidad.
func NewInformeResponse(i *entity.Informe) *InformeResponse {
	if i == nil {
		return nil
	}
	return &InformeResponse{
		ID:            i.ID(),
		FechaInicial:  i.FechaInicial(),
		FechaFinal:    i.FechaFinal(),
		TotalCentavos: i.TotalCentavos(),
		Total:         Soles(i.TotalCentavos()),
	}
}
