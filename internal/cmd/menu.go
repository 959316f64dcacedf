package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mossline/sitenav/internal/menu"
	"github.com/mossline/sitenav/internal/output"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Build and inspect the navigation menu tree",
	Long: `Build the navigation menu tree from the menu collection.

Entries reference their parent by slug, id, URL, or alias; unresolved
parents land at the top level instead of failing the build.`,
}

var menuTreeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Render the menu as a nested tree",
	Long: `Build the menu tree and render it.

Text output shows an indented tree; structured formats emit the nested
node objects with their children arrays.

Examples:
  sitenav menu tree
  sitenav menu tree --output json
  sitenav menu tree --menu-collection nav --output yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		roots, err := buildMenu()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if output.FormatFromContext(ctx) == output.FormatText {
			out := stdoutFromContext(ctx)
			renderTree(out, roots, 0)
			return nil
		}
		return printerFromContext(ctx).Print(ctx, roots)
	},
}

var menuListCmd = &cobra.Command{
	Use:   "list",
	Short: "List menu nodes as a flat table",
	Long: `Flatten the menu tree into one row per node, in render order.

Examples:
  sitenav menu list
  sitenav menu list --output table
  sitenav menu list --output json --query '.[].slug'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		roots, err := buildMenu()
		if err != nil {
			return err
		}

		flat := menu.Flatten(roots)
		rows := make([]map[string]any, 0, len(flat))
		for _, f := range flat {
			rows = append(rows, map[string]any{
				"slug":     nodeField(f.Node, "slug"),
				"title":    nodeField(f.Node, "title"),
				"url":      nodeField(f.Node, "url"),
				"depth":    f.Depth,
				"children": len(f.Node.Children),
			})
		}

		ctx := cmd.Context()
		return printerFromContext(ctx).Print(ctx, rows)
	},
}

// buildMenu loads the menu collection and assembles the forest.
func buildMenu() ([]*menu.Node, error) {
	items, err := store.Load(resolveMenuCollection())
	if err != nil {
		return nil, err
	}
	return menu.Build(items), nil
}

// renderTree writes an indented text view of the forest.
func renderTree(w io.Writer, nodes []*menu.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		fmt.Fprintf(w, "%s%s\n", indent, nodeLabel(n))
		renderTree(w, n.Children, depth+1)
	}
}

// nodeLabel picks the friendliest handle a node carries.
func nodeLabel(n *menu.Node) string {
	for _, key := range []string{"title", "slug", "id", "url"} {
		if v, ok := n.Item[key].(string); ok && v != "" {
			return v
		}
	}
	return "(untitled)"
}

func nodeField(n *menu.Node, key string) string {
	v, _ := n.Item[key].(string)
	return v
}

func init() {
	menuCmd.AddCommand(menuTreeCmd)
	menuCmd.AddCommand(menuListCmd)
	rootCmd.AddCommand(menuCmd)
}
