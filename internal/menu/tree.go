package menu

import "sort"

// Build assembles the navigation forest for items. Each input item
// becomes exactly one node, attached to its resolved parent or to the
// top level when the parent reference is missing, self-referential, or
// matches nothing. Sibling lists at every depth are sorted by order
// ascending with ties keeping input order.
//
// The registry is populated for all items before any parent is
// resolved, so an item may reference a parent that appears later in
// the input.
func Build(items []map[string]any) []*Node {
	nodes := make([]*Node, 0, len(items))
	reg := newRegistry()
	for _, it := range items {
		n := &Node{Item: Item(it), Children: []*Node{}}
		nodes = append(nodes, n)
		reg.register(n)
	}

	roots := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		parent := reg.resolveParent(n.Item["parent"])
		if parent == nil || parent == n {
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}

	sortForest(roots)
	return roots
}

// sortForest orders nodes by their order field and recurses into every
// children list. The sort is stable so equal orders keep input order.
func sortForest(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].orderValue() < nodes[j].orderValue()
	})
	for _, n := range nodes {
		sortForest(n.Children)
	}
}

// Count returns the total number of nodes in the forest.
func Count(roots []*Node) int {
	total := 0
	for _, n := range roots {
		total += 1 + Count(n.Children)
	}
	return total
}

// FlatNode pairs a node with its depth for flat listings.
type FlatNode struct {
	Node  *Node
	Depth int
}

// Flatten walks the forest depth-first in sibling order.
func Flatten(roots []*Node) []FlatNode {
	var out []FlatNode
	var walk func(nodes []*Node, depth int)
	walk = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			out = append(out, FlatNode{Node: n, Depth: depth})
			walk(n.Children, depth+1)
		}
	}
	walk(roots, 0)
	return out
}
