package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/puntoventa-api/internal/domain"
)

// Caja representa la sesión de caja del día. Agrupa las ventas registradas
// entre la apertura y el cierre; los importes agregados se calculan por
// sumatoria bajo demanda, siempre en centavos, sin cachear.
//
// Invariantes: solo se registran ventas mientras la caja está abierta; el
// cierre es definitivo (una sola transición, con fecha de cierre única).
type Caja struct {
	id            int64
	fechaApertura time.Time
	fechaCierre   *time.Time
	cerrada       bool
	ventas        []*Venta
}

// NewCaja abre una nueva caja con fecha de apertura ahora.
func NewCaja(id int64) *Caja {
	return &Caja{id: id, fechaApertura: time.Now()}
}

// RehidratarCaja reconstruye una caja desde la persistencia.
func RehidratarCaja(id int64, fechaApertura time.Time, fechaCierre *time.Time, cerrada bool, ventas []*Venta) *Caja {
	return &Caja{
		id:            id,
		fechaApertura: fechaApertura,
		fechaCierre:   fechaCierre,
		cerrada:       cerrada,
		ventas:        ventas,
	}
}

// RegistrarVenta agrega una venta a la caja; rechaza si ya está cerrada.
func (c *Caja) RegistrarVenta(venta *Venta) error {
	if c.cerrada {
		return fmt.Errorf("%w: no se pueden registrar ventas, la caja está cerrada", domain.ErrInvalidState)
	}
	c.ventas = append(c.ventas, venta)
	return nil
}

// Cerrar cierra la caja: no se permiten más registros y queda fijada la
// fecha de cierre.
func (c *Caja) Cerrar() error {
	if c.cerrada {
		return fmt.Errorf("%w: la caja ya está cerrada", domain.ErrInvalidState)
	}
	c.cerrada = true
	ahora := time.Now()
	c.fechaCierre = &ahora
	return nil
}

// SubtotalCentavos suma el subtotal de todas las ventas de la sesión.
func (c *Caja) SubtotalCentavos() int64 {
	var total int64
	for _, v := range c.ventas {
		total += v.SubtotalCentavos()
	}
	return total
}

// ImpuestoCentavos suma el IGV de todas las ventas de la sesión.
func (c *Caja) ImpuestoCentavos() int64 {
	var total int64
	for _, v := range c.ventas {
		total += v.ImpuestoCentavos()
	}
	return total
}

// TotalCentavos suma el total final (subtotal + impuesto - descuentos) de
// todas las ventas de la sesión.
func (c *Caja) TotalCentavos() int64 {
	var total int64
	for _, v := range c.ventas {
		total += v.TotalCentavos()
	}
	return total
}

func (c *Caja) ID() int64                { return c.id }
func (c *Caja) EstaCerrada() bool        { return c.cerrada }
func (c *Caja) FechaApertura() time.Time { return c.fechaApertura }

// FechaCierre retorna la fecha de cierre, o nil si la caja sigue abierta.
func (c *Caja) FechaCierre() *time.Time { return c.fechaCierre }

// Ventas retorna las ventas registradas en la sesión.
func (c *Caja) Ventas() []*Venta {
	out := make([]*Venta, len(c.ventas))
	copy(out, c.ventas)
	return out
}
