package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// RegistrarProductoRequest datos para registrar un producto. Los importes
// llegan en centavos; el ID lo asigna el llamador (secuencia externa).
type RegistrarProductoRequest struct {
	ID                   int64  `json:"id" validate:"required,gt=0"`
	Nombre               string `json:"nombre" validate:"required,max=50"`
	PrecioCompraCentavos int64  `json:"precio_compra_centavos" validate:"required,gt=0"`
	PrecioVentaCentavos  int64  `json:"precio_venta_centavos" validate:"required,gt=0"`
	IGVCentavos          int64  `json:"igv_centavos" validate:"required,gt=0"`
	Stock                int    `json:"stock" validate:"gte=0"`
}

// ActualizarProductoRequest datos para actualizar un producto existente.
type ActualizarProductoRequest struct {
	Nombre               string `json:"nombre" validate:"required,max=50"`
	PrecioCompraCentavos int64  `json:"precio_compra_centavos" validate:"required,gt=0"`
	PrecioVentaCentavos  int64  `json:"precio_venta_centavos" validate:"required,gt=0"`
	IGVCentavos          int64  `json:"igv_centavos" validate:"required,gt=0"`
	Stock                int    `json:"stock" validate:"gte=0"`
}

// ProductoResponse representación de salida de un producto: centavos exactos
// más la conversión a soles para presentación.
type ProductoResponse struct {
	ID                   int64           `json:"id"`
	Nombre               string          `json:"nombre"`
	PrecioCompraCentavos int64           `json:"precio_compra_centavos"`
	PrecioVentaCentavos  int64           `json:"precio_venta_centavos"`
	IGVCentavos          int64           `json:"igv_centavos"`
	PrecioCompra         decimal.Decimal `json:"precio_compra"`
	PrecioVenta          decimal.Decimal `json:"precio_venta"`
	IGV                  decimal.Decimal `json:"igv"`
	Stock                int             `json:"stock"`
	Estado               string          `json:"estado"`
}

// NewProductoResponse arma la respuesta desde la entidad.
func NewProductoResponse(p *entity.Producto) *ProductoResponse {
	if p == nil {
		return nil
	}
	return &ProductoResponse{
		ID:                   p.ID(),
		Nombre:               p.Nombre(),
		PrecioCompraCentavos: p.PrecioCompraCentavos(),
		PrecioVentaCentavos:  p.PrecioVentaCentavos(),
		IGVCentavos:          p.IGVCentavos(),
		PrecioCompra:         Soles(p.PrecioCompraCentavos()),
		PrecioVenta:          Soles(p.PrecioVentaCentavos()),
		IGV:                  Soles(p.IGVCentavos()),
		Stock:                p.Stock(),
		Estado:               p.Estado(),
	}
}
