// Package format renders API results for people and agents: TOON (the
// default, compact and tabular) or indented JSON, optionally narrowed by a jq
// query first.
package format

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type Format string

const (
	TOON Format = "toon"
	JSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", TOON:
		return TOON, nil
	case JSON:
		return JSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want toon or json)", s)
	}
}

// Render formats v. A non-empty query is applied to v's JSON form first.
// Without a query, object keys keep the order they are marshalled in.
func Render(ctx context.Context, v any, f Format, query string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}

	var doc any
	if query != "" {
		var plain any
		if err := json.Unmarshal(data, &plain); err != nil {
			return "", fmt.Errorf("decoding result: %w", err)
		}
		doc, err = ApplyQuery(ctx, plain, query)
		if err != nil {
			return "", err
		}
	} else {
		doc, err = decodeOrdered(data)
		if err != nil {
			return "", fmt.Errorf("decoding result: %w", err)
		}
	}

	switch f {
	case JSON:
		return encodeJSON(doc)
	default:
		return EncodeTOON(doc)
	}
}

func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding JSON: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
