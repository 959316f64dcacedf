package menu

import "testing"

func register(t *testing.T, fields map[string]any) (*registry, *Node) {
	t.Helper()
	r := newRegistry()
	n := &Node{Item: Item(fields)}
	r.register(n)
	return r, n
}

func TestRegistryNormalizesKeys(t *testing.T) {
	r, n := register(t, map[string]any{"slug": "/Services/"})

	for _, key := range []string{"services", "Services", "/services/", "  services  "} {
		if got := r.lookup(key); got != n {
			t.Fatalf("lookup(%q): expected node, got %v", key, got)
		}
	}
}

func TestRegistryFirstWriterWins(t *testing.T) {
	r := newRegistry()
	first := &Node{Item: Item{"slug": "dup"}}
	second := &Node{Item: Item{"slug": "dup"}}
	r.register(first)
	r.register(second)

	if got := r.lookup("dup"); got != first {
		t.Fatalf("expected first registrant to keep the key")
	}
}

func TestRegistrySlugLastSegment(t *testing.T) {
	r, n := register(t, map[string]any{"slug": "services/web-design"})

	if got := r.lookup("web-design"); got != n {
		t.Fatalf("expected last path segment of slug to resolve")
	}
	if got := r.lookup("services/web-design"); got != n {
		t.Fatalf("expected full slug to resolve")
	}
}

func TestRegistryIDKey(t *testing.T) {
	r, n := register(t, map[string]any{"id": "nav-main"})

	if got := r.lookup("nav-main"); got != n {
		t.Fatalf("expected id to resolve")
	}
}

func TestRegistryAutoSlugBase(t *testing.T) {
	r, n := register(t, map[string]any{"slug": "blog-auto-1"})

	if got := r.lookup("blog"); got != n {
		t.Fatalf("expected base slug of auto-disambiguated slug to resolve")
	}
}

func TestRegistryAutoSlugNoBaseWhenLeading(t *testing.T) {
	r, _ := register(t, map[string]any{"slug": "-auto-1"})

	if got := r.lookup(""); got != nil {
		t.Fatalf("expected no empty key registration")
	}
}

func TestRegistryURLKeys(t *testing.T) {
	r, n := register(t, map[string]any{"url": "/docs/getting-started?ref=home"})

	for _, key := range []string{"docs/getting-started", "/docs/getting-started", "getting-started"} {
		if got := r.lookup(key); got != n {
			t.Fatalf("lookup(%q): expected node from url keys", key)
		}
	}
	if got := r.lookup("docs/getting-started?ref=home"); got != nil {
		t.Fatalf("query string must be stripped before registration")
	}
}

func TestRegistryAliases(t *testing.T) {
	r, n := register(t, map[string]any{
		"slug":    "pricing",
		"aliases": []any{"plans", "shop/rates"},
	})

	for _, key := range []string{"plans", "shop/rates", "rates"} {
		if got := r.lookup(key); got != n {
			t.Fatalf("lookup(%q): expected node from aliases", key)
		}
	}
}

func TestRegistrySkipsMalformedFields(t *testing.T) {
	r, _ := register(t, map[string]any{
		"slug":    42,
		"id":      true,
		"aliases": "not-a-list",
		"url":     nil,
	})

	if len(r.keys) != 0 {
		t.Fatalf("expected no keys from malformed fields, got %d", len(r.keys))
	}
}

func TestRegistryItemKeyPrefersSlug(t *testing.T) {
	r, n := register(t, map[string]any{"slug": "by-slug", "id": "by-id"})

	if got := r.lookup("by-slug"); got != n {
		t.Fatalf("expected slug key")
	}
	if got := r.lookup("by-id"); got != n {
		t.Fatalf("expected id key to also be registered")
	}
}
