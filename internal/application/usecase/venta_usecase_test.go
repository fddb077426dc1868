package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/application/usecase"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

func agregarVenta(t *testing.T, repo *fakeVentaRepo, id int64, fecha time.Time) {
	t.Helper()
	v, err := entity.NewVenta(id, fecha, nil, []entity.DetalleVenta{
		{ProductoID: 1, Cantidad: 1, PrecioUnitario: 500},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Agregar(v))
}

func TestVentaListar(t *testing.T) {
	repo := newFakeVentaRepo()
	agregarVenta(t, repo, 1, time.Now())
	agregarVenta(t, repo, 2, time.Now())
	uc := usecase.NewVentaUseCase(repo)

	lista, err := uc.Listar()
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, int64(500), lista[0].SubtotalCentavos)
}

func TestVentaBuscarPorFecha(t *testing.T) {
	repo := newFakeVentaRepo()
	agregarVenta(t, repo, 1, time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local))
	agregarVenta(t, repo, 2, time.Date(2025, 3, 16, 10, 0, 0, 0, time.Local))
	uc := usecase.NewVentaUseCase(repo)

	lista, err := uc.BuscarPorFecha(time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, int64(1), lista[0].ID)
}

func TestVentaEliminar_Exitoso(t *testing.T) {
	repo := newFakeVentaRepo()
	agregarVenta(t, repo, 1, time.Now())
	uc := usecase.NewVentaUseCase(repo)

	require.NoError(t, uc.Eliminar(1))
	assert.Equal(t, []int64{1}, repo.eliminadas)
}

func TestVentaEliminar_NoExiste_Falla(t *testing.T) {
	uc := usecase.NewVentaUseCase(newFakeVentaRepo())

	err := uc.Eliminar(99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "la venta no existe")
}

func TestVentaBuscarPorID_NoExiste_RetornaNil(t *testing.T) {
	uc := usecase.NewVentaUseCase(newFakeVentaRepo())

	out, err := uc.BuscarPorID(99)
	require.NoError(t, err)
	assert.Nil(t, out)
}
