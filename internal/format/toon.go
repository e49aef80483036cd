package format

import (
	"fmt"

	"github.com/toon-format/toon-go"
)

// EncodeTOON renders v as Token-Oriented Object Notation. v is built from
// the values JSON decoding produces, plus Object.
//
// Arrays of objects that share the same primitive-valued keys become a
// table: a `key[N]{a,b}:` header followed by one comma-separated row per
// element.
func EncodeTOON(v any) (string, error) {
	out, err := toon.MarshalString(toToon(v))
	if err != nil {
		return "", fmt.Errorf("encoding TOON: %w", err)
	}
	return out, nil
}

// toToon swaps Object for toon.Object so key order survives encoding. Maps
// are left to the encoder, which sorts their keys.
func toToon(v any) any {
	switch v := v.(type) {
	case Object:
		fields := make([]toon.Field, len(v))
		for i, f := range v {
			fields[i] = toon.Field{Key: f.Key, Value: toToon(f.Value)}
		}
		return toon.NewObject(fields...)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = toToon(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = toToon(item)
		}
		return out
	default:
		return v
	}
}
