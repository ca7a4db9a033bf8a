package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/ledger"
)

func TestParseFilter_FechaPuntualExcluyenteConRango(t *testing.T) {
	_, err := ledger.ParseFilter("", "2024-01-10", "2024-01-01", "")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = ledger.ParseFilter("", "2024-01-10", "", "2024-01-31")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestParseFilter_LiteralesInvalidos(t *testing.T) {
	// Una fecha malformada es un problema de entrada, no de rango.
	_, err := ledger.ParseFilter("", "10/01/2024", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ledger.ParseFilter("", "", "2024-13-40", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ledger.ParseFilter("", "", "", "01-01-2024")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseFilter_RangoInvertido(t *testing.T) {
	_, err := ledger.ParseFilter("", "", "2024-02-01", "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestParseFilter_CombustibleInvalido(t *testing.T) {
	_, err := ledger.ParseFilter("KEROSENE", "", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseFilter_VacioSignificaSinFiltro(t *testing.T) {
	f, err := ledger.ParseFilter("", "", "", "")
	require.NoError(t, err)
	assert.Nil(t, f.FuelType)
	assert.Nil(t, f.OnDate)
	assert.Nil(t, f.StartDate)
	assert.Nil(t, f.EndDate)
	assert.True(t, f.MatchesDate(day("2024-06-01")))
	assert.True(t, f.MatchesFuel(entity.FuelPetrol))
}

func TestFilter_MatchesDate(t *testing.T) {
	f, err := ledger.ParseFilter("", "2024-01-15", "", "")
	require.NoError(t, err)
	assert.True(t, f.MatchesDate(day("2024-01-15")))
	assert.False(t, f.MatchesDate(day("2024-01-16")))

	f, err = ledger.ParseFilter("", "", "2024-01-10", "2024-01-20")
	require.NoError(t, err)
	assert.False(t, f.MatchesDate(day("2024-01-09")))
	assert.True(t, f.MatchesDate(day("2024-01-10")), "rango inclusivo por ambos extremos")
	assert.True(t, f.MatchesDate(day("2024-01-20")))
	assert.False(t, f.MatchesDate(day("2024-01-21")))

	// Extremo abierto
	f, err = ledger.ParseFilter("", "", "2024-01-10", "")
	require.NoError(t, err)
	assert.True(t, f.MatchesDate(day("2030-12-31")))
}

func TestFilter_MatchesFuel(t *testing.T) {
	f, err := ledger.ParseFilter("diesel", "", "", "")
	require.NoError(t, err)
	assert.True(t, f.MatchesFuel(entity.FuelDiesel))
	assert.False(t, f.MatchesFuel(entity.FuelPetrol))
}
