package repository

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DataShapeError indica que o driver devolveu uma representação que o
// repositório não reconhece para uma coluna. O valor nunca é coagido às
// cegas: o cálculo que dependia dele falha identificando a coluna e o tipo.
type DataShapeError struct {
	Column string
	Value  any
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("formato inesperado na coluna %q: valor %v (tipo %T)", e.Column, e.Value, e.Value)
}

// decodeDate enumera as representações de data aceitas do driver. Retorna nil
// para valores nulos; quem chama decide se nulo é aceitável naquela consulta.
func decodeDate(column string, value any) (*time.Time, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		d := time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return &d, nil
	case []byte:
		return parseDateString(column, string(v))
	case string:
		return parseDateString(column, v)
	default:
		return nil, &DataShapeError{Column: column, Value: value}
	}
}

func parseDateString(column, s string) (*time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, &DataShapeError{Column: column, Value: s}
	}
	return &d, nil
}

// decodeDecimal enumera as representações numéricas aceitas para valores
// monetários. Nulo vira zero, nunca "ausente".
func decodeDecimal(column string, value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case nil:
		return decimal.Zero, nil
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return decimal.Zero, &DataShapeError{Column: column, Value: string(v)}
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, &DataShapeError{Column: column, Value: v}
		}
		return d, nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, &DataShapeError{Column: column, Value: value}
	}
}

// decodeRate enumera as representações aceitas para percentuais. Retorna nil
// para valores nulos, que o motor de retenção descarta com diagnóstico.
func decodeRate(column string, value any) (*float64, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case float64:
		return &v, nil
	case int64:
		f := float64(v)
		return &f, nil
	case []byte:
		return parseRateString(column, string(v))
	case string:
		return parseRateString(column, v)
	default:
		return nil, &DataShapeError{Column: column, Value: value}
	}
}

func parseRateString(column, s string) (*float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &DataShapeError{Column: column, Value: s}
	}
	return &f, nil
}
