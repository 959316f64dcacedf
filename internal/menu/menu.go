// Package menu builds a navigation forest from flat menu-item records.
//
// Items reference their parent by id, slug, URL, alias, or a partial
// form of any of those; resolution is best-effort and an item whose
// parent cannot be found is placed at the top level rather than
// dropped. The builder never returns an error.
package menu

import "encoding/json"

// Item is a single menu entry as loaded from content. All fields are
// optional; the builder understands id, slug, url, parent, aliases,
// collection, and order, and passes everything else through untouched.
type Item map[string]any

// Node is an Item placed in the tree. Children are ordered.
type Node struct {
	Item
	Children []*Node
}

// defaultOrder sorts items without an explicit order after all
// explicitly ordered ones.
const defaultOrder = 999

// MarshalJSON emits the original item fields plus a children array.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.payload())
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (n *Node) MarshalYAML() (any, error) {
	return n.payload(), nil
}

func (n *Node) payload() map[string]any {
	m := make(map[string]any, len(n.Item)+1)
	for k, v := range n.Item {
		m[k] = v
	}
	children := n.Children
	if children == nil {
		children = []*Node{}
	}
	m["children"] = children
	return m
}

// stringField returns the named field if it holds a non-empty string.
func (it Item) stringField(key string) string {
	v, ok := it[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// orderValue returns the numeric order field, or defaultOrder when the
// field is missing or not a number.
func (it Item) orderValue() float64 {
	switch v := it["order"].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	default:
		return defaultOrder
	}
}

// key returns the item's primary handle: slug when present, id
// otherwise.
func (it Item) key() string {
	if slug := it.stringField("slug"); slug != "" {
		return slug
	}
	return it.stringField("id")
}
