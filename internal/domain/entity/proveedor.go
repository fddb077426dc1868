package entity

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/puntoventa-api/internal/domain"
)

// Límites de validación para Proveedor.
const (
	MaxLongNombreProveedor = 45
	// LongRUC es la longitud exacta del RUC peruano.
	LongRUC = 11
)

// Proveedor representa un proveedor del negocio. El RUC se almacena como
// entero pero su longitud se valida como cadena de 11 dígitos.
type Proveedor struct {
	id     int64
	nombre string
	ruc    int64
}

// NewProveedor construye un proveedor validado.
func NewProveedor(id int64, nombre string, ruc int64) (*Proveedor, error) {
	p := &Proveedor{id: id}
	if err := p.SetNombre(nombre); err != nil {
		return nil, err
	}
	if err := p.SetRUC(ruc); err != nil {
		return nil, err
	}
	return p, nil
}

// RehidratarProveedor reconstruye un proveedor desde la persistencia sin
// repetir las validaciones de creación.
func RehidratarProveedor(id int64, nombre string, ruc int64) *Proveedor {
	return &Proveedor{id: id, nombre: nombre, ruc: ruc}
}

// SetNombre valida y asigna el nombre del proveedor.
func (p *Proveedor) SetNombre(nombre string) error {
	n, err := validarNombre(nombre, MaxLongNombreProveedor, "nombre del proveedor")
	if err != nil {
		return err
	}
	p.nombre = n
	return nil
}

// SetRUC valida y asigna el RUC (debe tener exactamente 11 dígitos).
func (p *Proveedor) SetRUC(ruc int64) error {
	if len(strconv.FormatInt(ruc, 10)) != LongRUC {
		return fmt.Errorf("%w: el RUC debe ser de 11 dígitos", domain.ErrInvalidInput)
	}
	p.ruc = ruc
	return nil
}

func (p *Proveedor) ID() int64      { return p.id }
func (p *Proveedor) Nombre() string { return p.nombre }
func (p *Proveedor) RUC() int64     { return p.ruc }
