package params

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FromAny converts decoded YAML, JSON or CUE data into a Value.
//
// Reserved strings ("_negzero_", "_nan_", ...) are mapped to the values
// they stand for, matching the query text form.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return stringValue(val), nil
	case int:
		return Number(val), nil
	case int8:
		return Number(val), nil
	case int16:
		return Number(val), nil
	case int32:
		return Number(val), nil
	case int64:
		return Number(val), nil
	case uint:
		return Number(val), nil
	case uint8:
		return Number(val), nil
	case uint16:
		return Number(val), nil
	case uint32:
		return Number(val), nil
	case uint64:
		return Number(val), nil
	case float32:
		return Number(val), nil
	case float64:
		return Number(val), nil
	case json.Number:
		f, err := strconv.ParseFloat(string(val), 64)
		if err != nil {
			return nil, fmt.Errorf("number out of range: %s", val)
		}
		return Number(f), nil
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			pv, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr[i] = pv
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			pv, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			if err := setKey(obj, k, pv); err != nil {
				return nil, err
			}
		}
		return obj, nil
	case map[any]any:
		obj := make(Object, len(val))
		for rk, elem := range val {
			k, ok := rk.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v: keys must be strings", rk)
			}
			pv, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			if err := setKey(obj, k, pv); err != nil {
				return nil, err
			}
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// ParamsFromMap converts a decoded map into Params.
func ParamsFromMap(m map[string]any) (Params, error) {
	p := make(Params, len(m))
	for k, raw := range m {
		v, err := FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", k, err)
		}
		p[k] = v
	}
	return p, nil
}
