package entity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Producto: construcción y validaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestNewProducto_Valido(t *testing.T) {
	// Soda: compra S/ 2.10, venta S/ 3.25, IGV S/ 1.15
	p, err := entity.NewProducto(1, "Soda", 210, 325, 115, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.ID())
	assert.Equal(t, "Soda", p.Nombre())
	assert.Equal(t, int64(210), p.PrecioCompraCentavos())
	assert.Equal(t, int64(325), p.PrecioVentaCentavos())
	assert.Equal(t, int64(115), p.IGVCentavos())
	assert.Equal(t, 10, p.Stock())
	assert.Equal(t, entity.EstadoActivo, p.Estado())
	assert.False(t, p.EstaEliminado())
}

func TestNewProducto_CompraMayorQueVenta_Falla(t *testing.T) {
	_, err := entity.NewProducto(1, "Soda", 400, 325, 115, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "el precio de compra debe ser menor al precio de venta")
}

func TestNewProducto_NombreVacio_Falla(t *testing.T) {
	_, err := entity.NewProducto(1, "   ", 210, 325, 115, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "el campo nombre del producto no puede estar vacío")
}

func TestNewProducto_NombreMuyLargo_Falla(t *testing.T) {
	nombre := strings.Repeat("a", entity.MaxLongNombreProducto+1)
	_, err := entity.NewProducto(1, nombre, 210, 325, 115, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewProducto_PrecioCero_Falla(t *testing.T) {
	_, err := entity.NewProducto(1, "Soda", 0, 325, 115, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "el precio debe ser mayor a 0")
}

func TestNewProducto_PrecioSuperaTope_Falla(t *testing.T) {
	_, err := entity.NewProducto(1, "Soda", 210, entity.MaxPrecioCentavos+1, 115, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "99999.99")
}

func TestNewProducto_StockNegativo_Falla(t *testing.T) {
	_, err := entity.NewProducto(1, "Soda", 210, 325, 115, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// Producto: setters sobre instancia existente
// ──────────────────────────────────────────────────────────────────────────────

func TestSetPrecioVenta_PorDebajoDeCompra_Falla(t *testing.T) {
	p, err := entity.NewProducto(1, "Soda", 210, 325, 115, 10)
	require.NoError(t, err)

	err = p.SetPrecioVenta(200)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	// El precio vigente no debe cambiar tras un rechazo.
	assert.Equal(t, int64(325), p.PrecioVentaCentavos())
}

func TestSetPrecioCompra_PorEncimaDeVenta_Falla(t *testing.T) {
	p, err := entity.NewProducto(1, "Soda", 210, 325, 115, 10)
	require.NoError(t, err)

	err = p.SetPrecioCompra(400)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(210), p.PrecioCompraCentavos())
}

func TestSetNombre_RecortaEspacios(t *testing.T) {
	p, err := entity.NewProducto(1, "Soda", 210, 325, 115, 10)
	require.NoError(t, err)

	require.NoError(t, p.SetNombre("  Galletas  "))
	assert.Equal(t, "Galletas", p.Nombre())
}

// ──────────────────────────────────────────────────────────────────────────────
// Producto: eliminación lógica
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminarYRestaurar_TransicionesDeEstado(t *testing.T) {
	p, err := entity.NewProducto(1, "Soda", 210, 325, 115, 10)
	require.NoError(t, err)

	p.Eliminar()
	assert.True(t, p.EstaEliminado())
	assert.Equal(t, entity.EstadoEliminado, p.Estado())

	p.Restaurar()
	assert.False(t, p.EstaEliminado())
	assert.Equal(t, entity.EstadoActivo, p.Estado())
}

func TestRehidratarProducto_NoValida(t *testing.T) {
	// La rehidratación confía en los datos persistidos, incluido el estado.
	p := entity.RehidratarProducto(7, "Soda", 210, 325, 115, 3, entity.EstadoEliminado)
	assert.Equal(t, int64(7), p.ID())
	assert.True(t, p.EstaEliminado())
}
