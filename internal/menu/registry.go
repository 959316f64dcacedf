package menu

import "strings"

// registry maps every plausible textual handle for a node to that
// node. Keys are normalized; the first node to claim a key keeps it.
type registry struct {
	keys map[string]*Node
}

func newRegistry() *registry {
	return &registry{keys: make(map[string]*Node)}
}

// normalizeKey trims whitespace and surrounding slashes and lowercases.
func normalizeKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "/")
	return strings.ToLower(s)
}

// lastSegment returns the text after the final slash.
func lastSegment(s string) string {
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// add registers key for n unless the key is empty or already taken.
func (r *registry) add(key string, n *Node) {
	k := normalizeKey(key)
	if k == "" {
		return
	}
	if _, taken := r.keys[k]; taken {
		return
	}
	r.keys[k] = n
}

// lookup finds the node registered under the normalized form of key.
func (r *registry) lookup(key string) *Node {
	return r.keys[normalizeKey(key)]
}

// register derives every candidate key for n and adds each one.
// Missing or non-string fields contribute nothing.
func (r *registry) register(n *Node) {
	r.add(n.key(), n)
	r.add(n.stringField("id"), n)

	slug := n.stringField("slug")
	r.add(slug, n)
	if strings.Contains(slug, "/") {
		r.add(lastSegment(slug), n)
	}
	if base := autoSlugBase(slug); base != "" {
		r.add(base, n)
	}

	if url := n.stringField("url"); url != "" {
		if i := strings.Index(url, "?"); i >= 0 {
			url = url[:i]
		}
		r.add(url, n)
		r.add(strings.TrimLeft(url, "/"), n)
		r.add(lastSegment(url), n)
	}

	for _, alias := range n.aliases() {
		r.add(alias, n)
		if strings.Contains(alias, "/") {
			r.add(lastSegment(alias), n)
		}
	}
}

// autoSlugBase recovers the original slug from one that was suffixed
// during duplicate disambiguation: "blog-auto-1" came from "blog".
func autoSlugBase(slug string) string {
	i := strings.Index(slug, "-auto")
	if i <= 0 {
		return ""
	}
	return slug[:i]
}

// aliases returns the alias strings of the item, tolerating both
// []string and the []any produced by generic decoding. A non-sequence
// aliases field yields nothing.
func (it Item) aliases() []string {
	switch v := it["aliases"].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
