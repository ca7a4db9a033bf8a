package ledger

import (
	"time"

	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// Filter especificación de filtro para listados de libro mayor y estado de cuenta.
// OnDate es mutuamente excluyente con StartDate/EndDate; los extremos del rango
// pueden estar abiertos. Los adaptadores de persistencia lo traducen a su forma
// nativa de consulta.
type Filter struct {
	FuelType  *entity.FuelType
	OnDate    *time.Time
	StartDate *time.Time
	EndDate   *time.Time
}

// ParseFilter valida literales ISO-8601 (YYYY-MM-DD) y la exclusión mutua entre
// fecha puntual y rango. Cadenas vacías significan "sin filtro".
func ParseFilter(fuelType, onDate, startDate, endDate string) (Filter, error) {
	var f Filter

	if fuelType != "" {
		ft, err := entity.ParseFuelType(fuelType)
		if err != nil {
			return Filter{}, err
		}
		f.FuelType = &ft
	}

	if onDate != "" && (startDate != "" || endDate != "") {
		return Filter{}, domain.ErrInvalidDateRange
	}

	parse := func(s string) (*time.Time, error) {
		if s == "" {
			return nil, nil
		}
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			// Literal malformado: error de entrada, no de rango.
			return nil, domain.ErrInvalidInput
		}
		return &t, nil
	}

	var err error
	if f.OnDate, err = parse(onDate); err != nil {
		return Filter{}, err
	}
	if f.StartDate, err = parse(startDate); err != nil {
		return Filter{}, err
	}
	if f.EndDate, err = parse(endDate); err != nil {
		return Filter{}, err
	}
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return Filter{}, domain.ErrInvalidDateRange
	}
	return f, nil
}

// MatchesDate evalúa el filtro de fechas sobre t (comparación por día calendario).
func (f Filter) MatchesDate(t time.Time) bool {
	day := t.Format(dateLayout)
	if f.OnDate != nil {
		return day == f.OnDate.Format(dateLayout)
	}
	if f.StartDate != nil && day < f.StartDate.Format(dateLayout) {
		return false
	}
	if f.EndDate != nil && day > f.EndDate.Format(dateLayout) {
		return false
	}
	return true
}

// MatchesFuel evalúa el filtro de combustible.
func (f Filter) MatchesFuel(ft entity.FuelType) bool {
	return f.FuelType == nil || *f.FuelType == ft
}
