package entity

import (
	"strings"

	"github.com/jhoicas/fueldepot-api/internal/domain"
)

// FuelType tipo de combustible manejado por el depósito. Conjunto cerrado.
type FuelType string

const (
	FuelPetrol FuelType = "PETROL"
	FuelDiesel FuelType = "DIESEL"
)

// ParseFuelType normaliza la entrada del operador (trim + mayúsculas) y la valida
// contra el conjunto cerrado. Valores no reconocidos se rechazan, nunca se guardan.
func ParseFuelType(s string) (FuelType, error) {
	switch FuelType(strings.ToUpper(strings.TrimSpace(s))) {
	case FuelPetrol:
		return FuelPetrol, nil
	case FuelDiesel:
		return FuelDiesel, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

func (f FuelType) String() string { return string(f) }
