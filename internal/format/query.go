package format

import (
	"context"
	"errors"

	"github.com/itchyny/gojq"
	"github.com/jbeshir/promptly-mcp/internal/apierr"
)

// ApplyQuery runs a jq expression over v. A single result is returned as is;
// several are collected into an array and none yields nil.
func ApplyQuery(ctx context.Context, v any, expression string) (any, error) {
	if expression == "" {
		return v, nil
	}

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, apierr.Wrap(apierr.KindValidation, "invalid query", err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, apierr.Wrap(apierr.KindValidation, "invalid query", err)
	}

	var results []any
	iter := code.RunWithContext(ctx, v)
	for {
		r, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := r.(error); isErr {
			var halt *gojq.HaltError
			if errors.As(err, &halt) && halt.Value() == nil {
				break
			}
			return nil, apierr.Wrap(apierr.KindValidation, "running query", err)
		}
		results = append(results, r)
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}
