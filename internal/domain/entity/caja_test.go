package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

func ventaDePrueba(t *testing.T, id int64, detalles ...entity.DetalleVenta) *entity.Venta {
	t.Helper()
	if len(detalles) == 0 {
		detalles = detallesDeReferencia()
	}
	v, err := entity.NewVenta(id, time.Now(), nil, detalles)
	require.NoError(t, err)
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Caja: ciclo de vida apertura → ventas → cierre
// ──────────────────────────────────────────────────────────────────────────────

func TestNewCaja_AbiertaConFechaDeApertura(t *testing.T) {
	antes := time.Now()
	c := entity.NewCaja(1)

	assert.Equal(t, int64(1), c.ID())
	assert.False(t, c.EstaCerrada())
	assert.Nil(t, c.FechaCierre())
	assert.False(t, c.FechaApertura().Before(antes))
	assert.Empty(t, c.Ventas())
}

func TestRegistrarVenta_AcumulaAgregados(t *testing.T) {
	c := entity.NewCaja(1)

	require.NoError(t, c.RegistrarVenta(ventaDePrueba(t, 1)))
	require.NoError(t, c.RegistrarVenta(ventaDePrueba(t, 2)))

	assert.Len(t, c.Ventas(), 2)
	assert.Equal(t, int64(5200), c.SubtotalCentavos())
	assert.Equal(t, int64(936), c.ImpuestoCentavos())
	assert.Equal(t, int64(6136), c.TotalCentavos())
}

func TestCerrar_FijaFechaDeCierre(t *testing.T) {
	c := entity.NewCaja(1)

	require.NoError(t, c.Cerrar())
	assert.True(t, c.EstaCerrada())
	require.NotNil(t, c.FechaCierre())
	assert.False(t, c.FechaCierre().Before(c.FechaApertura()))
}

func TestCerrar_DosVeces_Falla(t *testing.T) {
	c := entity.NewCaja(1)
	require.NoError(t, c.Cerrar())
	cierre := *c.FechaCierre()

	err := c.Cerrar()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Contains(t, err.Error(), "la caja ya está cerrada")
	// El segundo intento no debe mover la fecha de cierre.
	assert.Equal(t, cierre, *c.FechaCierre())
}

func TestRegistrarVenta_EnCajaCerrada_Falla(t *testing.T) {
	c := entity.NewCaja(1)
	require.NoError(t, c.Cerrar())

	err := c.RegistrarVenta(ventaDePrueba(t, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Empty(t, c.Ventas())
}

func TestAgregados_ConsideranDescuentos(t *testing.T) {
	c := entity.NewCaja(1)

	venta := ventaDePrueba(t, 1)
	require.NoError(t, venta.AplicarDescuento(300))
	require.NoError(t, c.RegistrarVenta(venta))

	// Subtotal e impuesto no cambian con el descuento; el total sí.
	assert.Equal(t, int64(2600), c.SubtotalCentavos())
	assert.Equal(t, int64(468), c.ImpuestoCentavos())
	assert.Equal(t, int64(2768), c.TotalCentavos())
}

func TestRehidratarCaja_ConservaEstado(t *testing.T) {
	apertura := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	cierre := apertura.Add(9 * time.Hour)
	ventas := []*entity.Venta{ventaDePrueba(t, 1)}

	c := entity.RehidratarCaja(5, apertura, &cierre, true, ventas)

	assert.Equal(t, int64(5), c.ID())
	assert.True(t, c.EstaCerrada())
	assert.Equal(t, apertura, c.FechaApertura())
	require.NotNil(t, c.FechaCierre())
	assert.Equal(t, cierre, *c.FechaCierre())
	assert.Len(t, c.Ventas(), 1)
}
