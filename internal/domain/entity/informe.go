package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/puntoventa-api/internal/domain"
)

// Informe describe el rango de fechas de un informe de ventas y el total
// materializado para ese rango. Valida en la construcción que la fecha final
// no sea anterior a la inicial y es inmutable después; no gestiona consultas
// ni listados.
type Informe struct {
	id            int64
	fechaInicial  time.Time
	fechaFinal    time.Time
	totalCentavos int64
}

// NewInforme construye un informe con el rango de fechas validado. El total
// se calcula en la persistencia al materializar el informe.
func NewInforme(id int64, fechaInicial, fechaFinal time.Time) (*Informe, error) {
	if fechaFinal.Before(fechaInicial) {
		return nil, fmt.Errorf("%w: la fecha final no puede ser anterior a la fecha inicial", domain.ErrInvalidInput)
	}
	return &Informe{id: id, fechaInicial: fechaInicial, fechaFinal: fechaFinal}, nil
}

// RehidratarInforme reconstruye un informe ya materializado, con su total
// vendido en centavos, sin revalidar el rango.
func RehidratarInforme(id int64, fechaInicial, fechaFinal time.Time, totalCentavos int64) *Informe {
	return &Informe{
		id:            id,
		fechaInicial:  fechaInicial,
		fechaFinal:    fechaFinal,
		totalCentavos: totalCentavos,
	}
}

func (i *Informe) ID() int64               { return i.id }
func (i *Informe) FechaInicial() time.Time { return i.fechaInicial }
func (i *Informe) FechaFinal() time.Time   { return i.fechaFinal }

// TotalCentavos retorna el total vendido del rango en centavos
// (por ejemplo, 306800 representa S/ 3068.00).
func (i *Informe) TotalCentavos() int64 { return i.totalCentavos }
