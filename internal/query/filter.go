package query

import (
	"fmt"

	"github.com/itchyny/gojq"
)

// Where keeps the items for which the gojq expression produces a
// truthy first result (anything but nil and false). The expression
// sees one entry at a time as its input, so filters read like
// `.draft != true` or `.tags | index("featured")`.
func Where(items []Item, expr string) ([]Item, error) {
	q, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("parsing --where expression: %w", err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("compiling --where expression: %w", err)
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		iter := code.Run(map[string]any(it))
		v, ok := iter.Next()
		if !ok {
			continue
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("evaluating --where expression: %w", err)
		}
		if truthy(v) {
			out = append(out, it)
		}
	}
	return out, nil
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}
