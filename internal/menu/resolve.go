package menu

import "strings"

// resolveParent finds the node a raw parent reference points at, or
// nil when the reference is empty or matches nothing. References come
// in several shapes depending on how the content was authored: a plain
// string, a decoded mapping, a list of candidates, or a node that was
// already resolved upstream.
func (r *registry) resolveParent(ref any) *Node {
	switch v := ref.(type) {
	case nil:
		return nil
	case *Node:
		return v
	case string:
		return r.resolveString(v)
	case []any:
		for _, e := range v {
			if n := r.resolveParent(e); n != nil {
				return n
			}
		}
		return nil
	case []string:
		for _, e := range v {
			if n := r.resolveString(e); n != nil {
				return n
			}
		}
		return nil
	case Item:
		return r.resolveMapping(v)
	case map[string]any:
		return r.resolveMapping(v)
	default:
		return nil
	}
}

// resolveMapping tries the identifying fields of a mapping reference
// in precedence order, returning on the first registry hit.
func (r *registry) resolveMapping(m map[string]any) *Node {
	it := Item(m)

	if id := it.stringField("id"); id != "" {
		if n := r.lookup(id); n != nil {
			return n
		}
	}
	slug := it.stringField("slug")
	if slug != "" {
		if n := r.lookup(slug); n != nil {
			return n
		}
		if strings.Contains(slug, "/") {
			if n := r.lookup(lastSegment(slug)); n != nil {
				return n
			}
		}
	}
	if url := it.stringField("url"); url != "" {
		if n := r.lookup(url); n != nil {
			return n
		}
	}
	if collection := it.stringField("collection"); collection != "" && slug != "" {
		if n := r.lookup(collection + "/" + slug); n != nil {
			return n
		}
	}
	return nil
}

// resolveString looks the string up directly, then falls back to
// progressively coarser keys: the candidate is truncated at its
// rightmost "-" or "/" and retried until a match is found or no
// separator remains.
func (r *registry) resolveString(s string) *Node {
	key := normalizeKey(s)
	if key == "" {
		return nil
	}
	if n := r.keys[key]; n != nil {
		return n
	}
	for {
		cut := strings.LastIndexAny(key, "-/")
		if cut <= 0 {
			return nil
		}
		key = key[:cut]
		if n := r.keys[key]; n != nil {
			return n
		}
	}
}
