// Package query filters, sorts, and limits content entries.
package query

import (
	"fmt"
	"sort"
	"strings"
)

// Item mirrors content.Item: one decoded entry.
type Item = map[string]any

// SortBy returns a copy of items stably sorted on a dotted field path.
// Numbers compare numerically, everything else compares as strings;
// entries missing the field sort last.
func SortBy(items []Item, field string, desc bool) []Item {
	if strings.TrimSpace(field) == "" {
		return items
	}
	path := strings.Split(field, ".")
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := fieldValue(out[i], path)
		b, bok := fieldValue(out[j], path)
		if !aok && !bok {
			return false
		}
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		cmp := compare(a, b)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// Limit returns at most n items; n <= 0 means unlimited.
func Limit(items []Item, n int) []Item {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}

// fieldValue walks a dotted path through nested mappings.
func fieldValue(it Item, path []string) (any, bool) {
	var cur any = map[string]any(it)
	for _, seg := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func compare(a, b any) int {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(toString(a), toString(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
