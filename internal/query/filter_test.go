package query

import "testing"

func TestWhereFieldEquality(t *testing.T) {
	items := []Item{
		{"slug": "a", "draft": true},
		{"slug": "b", "draft": false},
		{"slug": "c"},
	}

	got, err := Where(items, `.draft != true`)
	if err != nil {
		t.Fatalf("where: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0]["slug"] != "b" || got[1]["slug"] != "c" {
		t.Fatalf("unexpected selection: %v, %v", got[0]["slug"], got[1]["slug"])
	}
}

func TestWhereNumericComparison(t *testing.T) {
	items := []Item{
		{"slug": "low", "order": float64(1)},
		{"slug": "high", "order": float64(50)},
	}

	got, err := Where(items, `.order > 10`)
	if err != nil {
		t.Fatalf("where: %v", err)
	}
	if len(got) != 1 || got[0]["slug"] != "high" {
		t.Fatalf("expected only high, got %v", got)
	}
}

func TestWhereNilIsFalsy(t *testing.T) {
	items := []Item{
		{"slug": "tagged", "tags": []any{"featured"}},
		{"slug": "plain"},
	}

	got, err := Where(items, `.tags | index("featured")`)
	if err != nil {
		t.Fatalf("where: %v", err)
	}
	if len(got) != 1 || got[0]["slug"] != "tagged" {
		t.Fatalf("expected only tagged, got %v", got)
	}
}

func TestWhereParseError(t *testing.T) {
	if _, err := Where([]Item{{"a": 1}}, `.unclosed(`); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestWhereRuntimeError(t *testing.T) {
	items := []Item{{"title": "x"}}

	if _, err := Where(items, `.title + 1`); err == nil {
		t.Fatalf("expected evaluation error for string plus number")
	}
}
