package output

import (
	"context"

	"github.com/mossline/sitenav/internal/query"
)

// ApplyListOptions applies the context's --result-sort-by and
// --result-limit settings to list data. Only flat entry lists are
// reordered; trees and single values pass through untouched so the
// builder's own sibling ordering is never disturbed.
func ApplyListOptions(ctx context.Context, data any) any {
	items, ok := data.([]map[string]any)
	if !ok {
		return data
	}

	limit := LimitFromContext(ctx)
	field, desc := SortFromContext(ctx)
	if limit == 0 && field == "" {
		return data
	}

	out := query.SortBy(items, field, desc)
	return query.Limit(out, limit)
}
