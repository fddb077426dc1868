package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/puntoventa-api/internal/domain"
)

// TasaIGV es el IGV estándar aplicado en Perú, expresado en porcentaje
// entero (18%). Se aplica sobre el subtotal en centavos sin pasar por
// punto flotante.
const TasaIGV = 18

// DetalleVenta es una línea de la venta: cantidad de un producto y su
// precio unitario en centavos. ProductoID vincula la línea con el catálogo
// (0 si la línea no referencia un producto registrado); no interviene en el
// cálculo de totales, solo en el chequeo de eliminación de productos.
type DetalleVenta struct {
	ProductoID     int64
	Cantidad       int
	PrecioUnitario int64 // centavos
}

// Venta representa una venta del punto de venta. Subtotal, impuesto y total
// son derivados: se recalculan de forma determinista desde los detalles y el
// descuento, siempre en centavos (int64). La única mutación posterior a la
// construcción es el descuento, que dispara el recálculo completo.
type Venta struct {
	id        int64
	fecha     time.Time
	clienteID *int64
	detalles  []DetalleVenta

	subtotal  int64 // centavos
	impuesto  int64 // centavos
	descuento int64 // centavos
	total     int64 // centavos
}

// NewVenta construye una venta calculando sus totales. Falla si algún
// detalle no trae cantidad y precio unitario válidos.
func NewVenta(id int64, fecha time.Time, clienteID *int64, detalles []DetalleVenta) (*Venta, error) {
	v := &Venta{id: id, fecha: fecha, clienteID: clienteID, detalles: detalles}
	if err := v.calcularTotales(); err != nil {
		return nil, err
	}
	return v, nil
}

// calcularSubtotal suma cantidad * precio_unitario de cada detalle.
func (v *Venta) calcularSubtotal() error {
	var subtotal int64
	for _, d := range v.detalles {
		if d.Cantidad <= 0 || d.PrecioUnitario <= 0 {
			return fmt.Errorf("%w: cada detalle debe tener cantidad y precio unitario", domain.ErrInvalidInput)
		}
		subtotal += int64(d.Cantidad) * d.PrecioUnitario
	}
	v.subtotal = subtotal
	return nil
}

// calcularTotales recalcula subtotal, impuesto y total.
// IGV = subtotal * 18 / 100 redondeado al centavo más cercano,
// en aritmética entera. Total = subtotal + impuesto - descuento.
func (v *Venta) calcularTotales() error {
	if err := v.calcularSubtotal(); err != nil {
		return err
	}
	v.impuesto = (v.subtotal*TasaIGV + 50) / 100
	v.total = v.subtotal + v.impuesto - v.descuento
	return nil
}

// AplicarDescuento fija el descuento en centavos y recalcula los totales.
// Es idempotente: aplicar dos veces el mismo monto produce el mismo total.
func (v *Venta) AplicarDescuento(monto int64) error {
	if monto < 0 {
		return fmt.Errorf("%w: el descuento no puede ser negativo", domain.ErrInvalidInput)
	}
	v.descuento = monto
	return v.calcularTotales()
}

func (v *Venta) ID() int64         { return v.id }
func (v *Venta) Fecha() time.Time  { return v.fecha }
func (v *Venta) ClienteID() *int64 { return v.clienteID }

// Detalles retorna una copia de las líneas de la venta.
func (v *Venta) Detalles() []DetalleVenta {
	out := make([]DetalleVenta, len(v.detalles))
	copy(out, v.detalles)
	return out
}

// SubtotalCentavos retorna el subtotal exacto en centavos.
func (v *Venta) SubtotalCentavos() int64 { return v.subtotal }

// ImpuestoCentavos retorna el IGV en centavos.
func (v *Venta) ImpuestoCentavos() int64 { return v.impuesto }

// DescuentoCentavos retorna el descuento aplicado en centavos.
func (v *Venta) DescuentoCentavos() int64 { return v.descuento }

// TotalCentavos retorna el total final en centavos.
func (v *Venta) TotalCentavos() int64 { return v.total }
