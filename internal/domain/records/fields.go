package records

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Present reporta si el campo existe y no está en blanco.
// Un 0 numérico cuenta como presente.
func (f Fields) Present(key string) bool {
	v, ok := f[key]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// String lee un campo string (trim). Valores numéricos se formatean.
func (f Fields) String(key string) string {
	v, ok := f[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// RequiredString exige un string no vacío.
func (f Fields) RequiredString(key string) (string, error) {
	s := f.String(key)
	if s == "" {
		return "", &ValidationError{Field: key, Reason: "is required"}
	}
	return s, nil
}

// NonNegativeInt lee un entero >= 0. Si el campo no está y required es false, devuelve def.
func (f Fields) NonNegativeInt(key string, required bool, def int) (int, error) {
	if !f.Present(key) {
		if required {
			return 0, &ValidationError{Field: key, Reason: "is required"}
		}
		return def, nil
	}

	n, err := toInt(f[key])
	if err != nil {
		return 0, &ValidationError{Field: key, Reason: "must be an integer"}
	}
	if n < 0 {
		return 0, &ValidationError{Field: key, Reason: "must be non-negative"}
	}
	return n, nil
}

// NextCount devuelve n+1 para el contador field, sin pasar de math.MaxInt.
func NextCount(field string, n int) (int, error) {
	if n >= math.MaxInt {
		return n, &ValidationError{Field: field, Reason: "is at its maximum"}
	}
	return n + 1, nil
}

func toInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int32:
		return int(t), nil
	case int64:
		return int(t), nil
	case uint:
		if t > math.MaxInt {
			return 0, fmt.Errorf("out of range: %d", t)
		}
		return int(t), nil
	case uint64:
		if t > math.MaxInt {
			return 0, fmt.Errorf("out of range: %d", t)
		}
		return int(t), nil
	case float64:
		return floatToInt(t)
	case float32:
		return floatToInt(float64(t))
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), nil
		}
		fl, err := t.Float64()
		if err != nil {
			return 0, err
		}
		return floatToInt(fl)
	case string:
		return strconv.Atoi(strings.TrimSpace(t))
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %v", f)
	}
	// float64(math.MaxInt) redondea a 2^63, que ya no entra en un int.
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, fmt.Errorf("out of range: %v", f)
	}
	return int(f), nil
}
