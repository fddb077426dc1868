package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/application/usecase"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

func registrarSoda(t *testing.T, uc *usecase.ProductoUseCase) *dto.ProductoResponse {
	t.Helper()
	out, err := uc.Registrar(dto.RegistrarProductoRequest{
		ID:                   1,
		Nombre:               "Soda",
		PrecioCompraCentavos: 210,
		PrecioVentaCentavos:  325,
		IGVCentavos:          115,
		Stock:                10,
	})
	require.NoError(t, err)
	return out
}

func TestProductoRegistrar_Exitoso(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo(), newFakeVentaRepo())

	out := registrarSoda(t, uc)

	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "Soda", out.Nombre)
	assert.Equal(t, int64(210), out.PrecioCompraCentavos)
	assert.Equal(t, "2.1", out.PrecioCompra.String())
	assert.Equal(t, "3.25", out.PrecioVenta.String())
	assert.Equal(t, entity.EstadoActivo, out.Estado)
}

func TestProductoRegistrar_NombreDuplicado_Falla(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo(), newFakeVentaRepo())
	registrarSoda(t, uc)

	_, err := uc.Registrar(dto.RegistrarProductoRequest{
		ID:                   2,
		Nombre:               "Soda",
		PrecioCompraCentavos: 100,
		PrecioVentaCentavos:  200,
		IGVCentavos:          36,
		Stock:                5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "ya existe un producto con el nombre ingresado")
}

func TestProductoActualizar_Exitoso(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo(), newFakeVentaRepo())
	registrarSoda(t, uc)

	out, err := uc.Actualizar(1, dto.ActualizarProductoRequest{
		Nombre:               "Soda Grande",
		PrecioCompraCentavos: 250,
		PrecioVentaCentavos:  400,
		IGVCentavos:          72,
		Stock:                8,
	})
	require.NoError(t, err)
	assert.Equal(t, "Soda Grande", out.Nombre)
	assert.Equal(t, int64(400), out.PrecioVentaCentavos)
	assert.Equal(t, 8, out.Stock)
}

func TestProductoActualizar_NoExiste_Falla(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo(), newFakeVentaRepo())

	_, err := uc.Actualizar(99, dto.ActualizarProductoRequest{
		Nombre:               "Soda",
		PrecioCompraCentavos: 210,
		PrecioVentaCentavos:  325,
		IGVCentavos:          115,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductoActualizar_Eliminado_Falla(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo(), newFakeVentaRepo())
	registrarSoda(t, uc)
	require.NoError(t, uc.Eliminar(1))

	_, err := uc.Actualizar(1, dto.ActualizarProductoRequest{
		Nombre:               "Soda",
		PrecioCompraCentavos: 210,
		PrecioVentaCentavos:  325,
		IGVCentavos:          115,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Contains(t, err.Error(), "ha sido eliminado y no puede modificarse")
}

func TestProductoActualizar_NombreDeOtroProducto_Falla(t *testing.T) {
	repo := newFakeProductoRepo()
	uc := usecase.NewProductoUseCase(repo, newFakeVentaRepo())
	registrarSoda(t, uc)
	_, err := uc.Registrar(dto.RegistrarProductoRequest{
		ID:                   2,
		Nombre:               "Galletas",
		PrecioCompraCentavos: 100,
		PrecioVentaCentavos:  200,
		IGVCentavos:          36,
	})
	require.NoError(t, err)

	_, err = uc.Actualizar(2, dto.ActualizarProductoRequest{
		Nombre:               "Soda",
		PrecioCompraCentavos: 100,
		PrecioVentaCentavos:  200,
		IGVCentavos:          36,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductoActualizar_MismoNombrePropio_NoEsDuplicado(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo(), newFakeVentaRepo())
	registrarSoda(t, uc)

	_, err := uc.Actualizar(1, dto.ActualizarProductoRequest{
		Nombre:               "Soda",
		PrecioCompraCentavos: 210,
		PrecioVentaCentavos:  325,
		IGVCentavos:          115,
		Stock:                20,
	})
	require.NoError(t, err)
}

func TestProductoEliminar_VinculadoAVentas_Falla(t *testing.T) {
	ventaRepo := newFakeVentaRepo()
	uc := usecase.NewProductoUseCase(newFakeProductoRepo(), ventaRepo)
	registrarSoda(t, uc)

	venta, err := entity.NewVenta(1, time.Now(), nil, []entity.DetalleVenta{
		{ProductoID: 1, Cantidad: 2, PrecioUnitario: 325},
	})
	require.NoError(t, err)
	require.NoError(t, ventaRepo.Agregar(venta))

	err = uc.Eliminar(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "está vinculado a ventas activas")
}

func TestProductoEliminarYRestaurar_Exitoso(t *testing.T) {
	repo := newFakeProductoRepo()
	uc := usecase.NewProductoUseCase(repo, newFakeVentaRepo())
	registrarSoda(t, uc)

	require.NoError(t, uc.Eliminar(1))
	guardado, _ := repo.BuscarPorID(1)
	assert.True(t, guardado.EstaEliminado())

	require.NoError(t, uc.Restaurar(1))
	guardado, _ = repo.BuscarPorID(1)
	assert.False(t, guardado.EstaEliminado())
}

func TestProductoRestaurar_YaActivo_Falla(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo(), newFakeVentaRepo())
	registrarSoda(t, uc)

	err := uc.Restaurar(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Contains(t, err.Error(), "ya está activo")
}

func TestProductoListar_IncluyeEliminados(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo(), newFakeVentaRepo())
	registrarSoda(t, uc)
	require.NoError(t, uc.Eliminar(1))

	lista, err := uc.Listar()
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, entity.EstadoEliminado, lista[0].Estado)
}

func TestProductoBuscarPorID_NoExiste_RetornaNil(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo(), newFakeVentaRepo())

	out, err := uc.BuscarPorID(99)
	require.NoError(t, err)
	assert.Nil(t, out)
}
