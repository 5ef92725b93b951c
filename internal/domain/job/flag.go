package job

import (
	"bytes"
	"encoding/json"
)

// Flag is a boolean decoded from any JSON value by truthiness: false, null,
// 0, "", [] and {} are false, everything else is true.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	v, err := Truthy(b)
	if err != nil {
		return err
	}
	*f = Flag(v)
	return nil
}

func Truthy(raw json.RawMessage) (bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false, nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, err
	}

	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	case float64:
		return t != 0, nil
	case string:
		return t != "", nil
	case []any:
		return len(t) > 0, nil
	case map[string]any:
		return len(t) > 0, nil
	default:
		return true, nil
	}
}
