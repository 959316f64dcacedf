package query

import "testing"

func TestSortByNumericField(t *testing.T) {
	items := []Item{
		{"slug": "b", "order": float64(2)},
		{"slug": "c", "order": float64(10)},
		{"slug": "a", "order": float64(1)},
	}

	sorted := SortBy(items, "order", false)
	want := []string{"a", "b", "c"}
	for i, slug := range want {
		if sorted[i]["slug"] != slug {
			t.Fatalf("position %d: expected %q, got %v", i, slug, sorted[i]["slug"])
		}
	}
	// Original slice untouched.
	if items[0]["slug"] != "b" {
		t.Fatalf("SortBy must not mutate its input")
	}
}

func TestSortByDescending(t *testing.T) {
	items := []Item{
		{"slug": "a", "order": float64(1)},
		{"slug": "b", "order": float64(2)},
	}

	sorted := SortBy(items, "order", true)
	if sorted[0]["slug"] != "b" {
		t.Fatalf("expected descending order, got %v first", sorted[0]["slug"])
	}
}

func TestSortByStringField(t *testing.T) {
	items := []Item{
		{"title": "zebra"},
		{"title": "apple"},
	}

	sorted := SortBy(items, "title", false)
	if sorted[0]["title"] != "apple" {
		t.Fatalf("expected lexicographic sort, got %v first", sorted[0]["title"])
	}
}

func TestSortByMissingFieldLast(t *testing.T) {
	items := []Item{
		{"slug": "no-order"},
		{"slug": "ordered", "order": float64(5)},
	}

	sorted := SortBy(items, "order", false)
	if sorted[0]["slug"] != "ordered" {
		t.Fatalf("expected entries missing the field to sort last")
	}
}

func TestSortByDottedPath(t *testing.T) {
	items := []Item{
		{"slug": "b", "seo": map[string]any{"weight": float64(2)}},
		{"slug": "a", "seo": map[string]any{"weight": float64(1)}},
	}

	sorted := SortBy(items, "seo.weight", false)
	if sorted[0]["slug"] != "a" {
		t.Fatalf("expected dotted path sort, got %v first", sorted[0]["slug"])
	}
}

func TestSortByEmptyFieldNoop(t *testing.T) {
	items := []Item{{"slug": "b"}, {"slug": "a"}}

	sorted := SortBy(items, "", false)
	if sorted[0]["slug"] != "b" {
		t.Fatalf("empty field must leave order unchanged")
	}
}

func TestLimit(t *testing.T) {
	items := []Item{{"n": 1}, {"n": 2}, {"n": 3}}

	if got := Limit(items, 2); len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got := Limit(items, 0); len(got) != 3 {
		t.Fatalf("limit 0 must be unlimited, got %d", len(got))
	}
	if got := Limit(items, 10); len(got) != 3 {
		t.Fatalf("limit beyond length must return all, got %d", len(got))
	}
}
