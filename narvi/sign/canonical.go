package sign

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// CanonicalJSON renders v as JSON with object keys sorted on every nesting
// level. The remote platform recomputes the request signature from its own
// canonical rendering, so the output must not depend on map iteration order
// or on how the caller built the value. Nil and empty objects render as the
// empty string, per protocol.
func CanonicalJSON(v any) (string, error) {
	if v == nil {
		return "", nil
	}

	norm, err := normalize(v)
	if err != nil {
		return "", err
	}

	if m, ok := norm.(map[string]any); ok && len(m) == 0 {
		return "", nil
	}

	var e jx.Encoder
	if err := encodeCanonical(&e, norm); err != nil {
		return "", err
	}
	return e.String(), nil
}

// normalize round-trips v through encoding/json so that structs, maps and
// numeric types all collapse to the same generic shape with stable number
// literals (json.Number keeps whatever encoding/json emitted).
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal for canonicalization")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var norm any
	if err := dec.Decode(&norm); err != nil {
		return nil, errors.Wrap(err, "decode for canonicalization")
	}
	return norm, nil
}

func encodeCanonical(e *jx.Encoder, v any) error {
	switch t := v.(type) {
	case nil:
		e.Null()
	case string:
		e.Str(t)
	case bool:
		e.Bool(t)
	case json.Number:
		e.Num(jx.Num(t))
	case []any:
		e.ArrStart()
		for _, item := range t {
			if err := encodeCanonical(e, item); err != nil {
				return err
			}
		}
		e.ArrEnd()
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		e.ObjStart()
		for _, k := range keys {
			e.FieldStart(k)
			if err := encodeCanonical(e, t[k]); err != nil {
				return err
			}
		}
		e.ObjEnd()
	default:
		return errors.Errorf("unsupported value type %T in canonical JSON", v)
	}
	return nil
}
