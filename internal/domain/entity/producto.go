package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/puntoventa-api/internal/domain"
)

// Estados del ciclo de vida de un Producto (eliminación lógica).
const (
	EstadoActivo    = "activo"
	EstadoEliminado = "eliminado"
)

// Límites de validación para Producto.
const (
	MaxLongNombreProducto = 50
	// MaxPrecioCentavos equivale a 99999.99 soles.
	MaxPrecioCentavos = 9_999_999
)

// Producto representa un producto del catálogo. Todos los importes se manejan
// en centavos (int64) dentro del dominio para evitar errores de punto flotante;
// la conversión a soles ocurre solo en la capa de presentación.
//
// Invariante: precio de compra <= precio de venta en todo momento. Los setters
// son la única vía de mutación y validan en cada asignación.
type Producto struct {
	id           int64
	nombre       string
	precioCompra int64 // centavos
	precioVenta  int64 // centavos
	igv          int64 // monto de IGV en centavos
	stock        int
	estado       string
}

// NewProducto construye un producto validado. El ID lo asigna el llamador
// (secuencia externa); el producto nace en estado activo. Ambos precios se
// preasignan antes de validar para que la comparación compra<=venta vea los
// valores definitivos sin depender del orden de los setters.
func NewProducto(id int64, nombre string, precioCompraCentavos, precioVentaCentavos, igvCentavos int64, stock int) (*Producto, error) {
	p := &Producto{
		id:           id,
		estado:       EstadoActivo,
		precioCompra: precioCompraCentavos,
		precioVenta:  precioVentaCentavos,
	}
	if err := p.SetNombre(nombre); err != nil {
		return nil, err
	}
	if err := p.SetPrecioCompra(precioCompraCentavos); err != nil {
		return nil, err
	}
	if err := p.SetPrecioVenta(precioVentaCentavos); err != nil {
		return nil, err
	}
	if err := p.SetIGV(igvCentavos); err != nil {
		return nil, err
	}
	if err := p.SetStock(stock); err != nil {
		return nil, err
	}
	return p, nil
}

// RehidratarProducto reconstruye un producto desde la persistencia sin pasar
// por las validaciones (los datos ya fueron validados al escribirse).
func RehidratarProducto(id int64, nombre string, precioCompra, precioVenta, igv int64, stock int, estado string) *Producto {
	return &Producto{
		id:           id,
		nombre:       nombre,
		precioCompra: precioCompra,
		precioVenta:  precioVenta,
		igv:          igv,
		stock:        stock,
		estado:       estado,
	}
}

// validarPrecioLimite aplica el tope común a compra, venta e IGV,
// en correspondencia con los campos de la base de datos.
func validarPrecioLimite(precio int64, campo string) error {
	if precio > MaxPrecioCentavos {
		if campo == "IGV" {
			return fmt.Errorf("%w: el precio del IGV no puede superar los 99999.99", domain.ErrInvalidInput)
		}
		return fmt.Errorf("%w: el precio de %s no puede superar los 99999.99", domain.ErrInvalidInput, campo)
	}
	return nil
}

// SetNombre valida y asigna el nombre del producto.
func (p *Producto) SetNombre(nombre string) error {
	n, err := validarNombre(nombre, MaxLongNombreProducto, "nombre del producto")
	if err != nil {
		return err
	}
	p.nombre = n
	return nil
}

// SetPrecioCompra valida y asigna el precio de compra en centavos.
// Debe ser mayor a 0 y no superar el precio de venta vigente.
func (p *Producto) SetPrecioCompra(valor int64) error {
	if valor <= 0 {
		return fmt.Errorf("%w: el precio debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if valor > p.precioVenta {
		return fmt.Errorf("%w: el precio de compra debe ser menor al precio de venta", domain.ErrInvalidInput)
	}
	if err := validarPrecioLimite(valor, "compra"); err != nil {
		return err
	}
	p.precioCompra = valor
	return nil
}

// SetPrecioVenta valida y asigna el precio de venta en centavos.
// Debe ser mayor a 0 y no quedar por debajo del precio de compra vigente.
func (p *Producto) SetPrecioVenta(valor int64) error {
	if valor <= 0 {
		return fmt.Errorf("%w: el precio debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if valor < p.precioCompra {
		return fmt.Errorf("%w: el precio de venta debe ser mayor al precio de compra", domain.ErrInvalidInput)
	}
	if err := validarPrecioLimite(valor, "venta"); err != nil {
		return err
	}
	p.precioVenta = valor
	return nil
}

// SetIGV valida y asigna el monto de IGV en centavos.
func (p *Producto) SetIGV(valor int64) error {
	if valor <= 0 {
		return fmt.Errorf("%w: el precio debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if err := validarPrecioLimite(valor, "IGV"); err != nil {
		return err
	}
	p.igv = valor
	return nil
}

// SetStock valida y asigna la cantidad en stock.
func (p *Producto) SetStock(cantidad int) error {
	if cantidad < 0 {
		return fmt.Errorf("%w: la cantidad en stock no puede ser menor a 0", domain.ErrInvalidInput)
	}
	p.stock = cantidad
	return nil
}

// Eliminar marca el producto como eliminado (soft delete); nunca se borra
// físicamente desde el dominio.
func (p *Producto) Eliminar() {
	p.estado = EstadoEliminado
}

// Restaurar devuelve el producto al estado activo.
func (p *Producto) Restaurar() {
	p.estado = EstadoActivo
}

// EstaEliminado indica si el producto está marcado como eliminado.
func (p *Producto) EstaEliminado() bool {
	return p.estado == EstadoEliminado
}

func (p *Producto) ID() int64      { return p.id }
func (p *Producto) Nombre() string { return p.nombre }
func (p *Producto) Estado() string { return p.estado }
func (p *Producto) Stock() int     { return p.stock }

// PrecioCompraCentavos retorna el precio de compra en centavos
// (por ejemplo, 1250 representa S/ 12.50).
func (p *Producto) PrecioCompraCentavos() int64 { return p.precioCompra }

// PrecioVentaCentavos retorna el precio de venta en centavos
// (por ejemplo, 2050 representa S/ 20.50).
func (p *Producto) PrecioVentaCentavos() int64 { return p.precioVenta }

// IGVCentavos retorna el monto de IGV en centavos
// (por ejemplo, 380 representa S/ 3.80).
func (p *Producto) IGVCentavos() int64 { return p.igv }

// validarNombre valida que un texto no esté vacío ni exceda la longitud
// máxima permitida. campo es la etiqueta en minúsculas que se inserta en los
// mensajes. Compartida entre entidades (Producto, Proveedor).
func validarNombre(nombre string, longitud int, campo string) (string, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return "", fmt.Errorf("%w: el campo %s no puede estar vacío", domain.ErrInvalidInput, campo)
	}
	if len(nombre) > longitud {
		return "", fmt.Errorf("%w: el %s supera los %d caracteres", domain.ErrInvalidInput, campo, longitud)
	}
	return nombre, nil
}
