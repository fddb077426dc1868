package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

func TestNewInforme_RangoValido(t *testing.T) {
	inicial := time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local)
	final := time.Date(2025, 5, 10, 0, 0, 0, 0, time.Local)

	i, err := entity.NewInforme(1, inicial, final)
	require.NoError(t, err)
	assert.Equal(t, inicial, i.FechaInicial())
	assert.Equal(t, final, i.FechaFinal())
	assert.Zero(t, i.TotalCentavos(), "un informe recién construido aún no tiene total")
}

func TestRehidratarInforme_ConservaTotal(t *testing.T) {
	inicial := time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local)
	final := time.Date(2025, 5, 10, 0, 0, 0, 0, time.Local)

	i := entity.RehidratarInforme(7, inicial, final, 306800)
	assert.Equal(t, int64(7), i.ID())
	assert.Equal(t, int64(306800), i.TotalCentavos())
}

func TestNewInforme_MismaFecha_Valido(t *testing.T) {
	fecha := time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local)
	_, err := entity.NewInforme(1, fecha, fecha)
	require.NoError(t, err)
}

func TestNewInforme_FinalAnteriorAInicial_Falla(t *testing.T) {
	inicial := time.Date(2025, 5, 10, 0, 0, 0, 0, time.Local)
	final := time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local)

	_, err := entity.NewInforme(1, inicial, final)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "la fecha final no puede ser anterior a la fecha inicial")
}
