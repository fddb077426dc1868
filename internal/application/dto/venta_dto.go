package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// DetalleVentaRequest una línea de venta: cantidad y precio unitario en
// centavos.
type DetalleVentaRequest struct {
	ProductoID     int64 `json:"producto_id"`
	Cantidad       int   `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario int64 `json:"precio_unitario_centavos" validate:"required,gt=0"`
}

// RegistrarVentaRequest datos para registrar una venta en la caja activa.
type RegistrarVentaRequest struct {
	ID                int64                 `json:"id" validate:"required,gt=0"`
	Fecha             time.Time             `json:"fecha"`
	ClienteID         *int64                `json:"cliente_id"`
	Detalles          []DetalleVentaRequest `json:"detalles" validate:"required,min=1,dive"`
	DescuentoCentavos int64                 `json:"descuento_centavos" validate:"gte=0"`
}

// DetalleVentaResponse línea de venta en la salida.
type DetalleVentaResponse struct {
	ProductoID     int64 `json:"producto_id,omitempty"`
	Cantidad       int   `json:"cantidad"`
	PrecioUnitario int64 `json:"precio_unitario_centavos"`
}

// VentaResponse representación de salida de una venta: derivados exactos en
// centavos y su conversión a soles.
type VentaResponse struct {
	ID                int64                  `json:"id"`
	Fecha             time.Time              `json:"fecha"`
	ClienteID         *int64                 `json:"cliente_id,omitempty"`
	Detalles          []DetalleVentaResponse `json:"detalles"`
	SubtotalCentavos  int64                  `json:"subtotal_centavos"`
	ImpuestoCentavos  int64                  `json:"impuesto_centavos"`
	DescuentoCentavos int64                  `json:"descuento_centavos"`
	TotalCentavos     int64                  `json:"total_centavos"`
	Subtotal          decimal.Decimal        `json:"subtotal"`
	Impuesto          decimal.Decimal        `json:"impuesto"`
	Descuento         decimal.Decimal        `json:"descuento"`
	Total             decimal.Decimal        `json:"total"`
}

// NewVentaResponse arma la respuesta desde la entidad.
func NewVentaResponse(v *entity.Venta) *VentaResponse {
	if v == nil {
		return nil
	}
	detalles := make([]DetalleVentaResponse, 0, len(v.Detalles()))
	for _, d := range v.Detalles() {
		detalles = append(detalles, DetalleVentaResponse{
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
		})
	}
	return &VentaResponse{
		ID:                v.ID(),
		Fecha:             v.Fecha(),
		ClienteID:         v.ClienteID(),
		Detalles:          detalles,
		SubtotalCentavos:  v.SubtotalCentavos(),
		ImpuestoCentavos:  v.ImpuestoCentavos(),
		DescuentoCentavos: v.DescuentoCentavos(),
		TotalCentavos:     v.TotalCentavos(),
		Subtotal:          Soles(v.SubtotalCentavos()),
		Impuesto:          Soles(v.ImpuestoCentavos()),
		Descuento:         Soles(v.DescuentoCentavos()),
		Total:             Soles(v.TotalCentavos()),
	}
}
