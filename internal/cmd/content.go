package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mossline/sitenav/internal/query"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Work with content collection entries",
}

var whereExpr string

var contentListCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "List the entries of a collection",
	Long: `List every entry of a collection.

The --where flag takes a jq expression evaluated per entry; entries
producing a truthy result are kept.

Examples:
  sitenav content list pages
  sitenav content list blog --where '.draft != true'
  sitenav content list blog --result-sort-by order --result-limit 5
  sitenav content list pages --output table`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := store.Load(args[0])
		if err != nil {
			return err
		}
		if whereExpr != "" {
			items, err = query.Where(items, whereExpr)
			if err != nil {
				return err
			}
		}

		ctx := cmd.Context()
		return printerFromContext(ctx).Print(ctx, items)
	},
}

var contentGetCmd = &cobra.Command{
	Use:   "get <collection> <slug>",
	Short: "Show a single entry by slug",
	Long: `Show one entry of a collection, matched by slug.

Examples:
  sitenav content get pages home
  sitenav content get pages services/web-design --output yaml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := store.Get(args[0], args[1])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		return printerFromContext(ctx).Print(ctx, item)
	},
}

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List content collections",
	Long: `List the collections of the content directory with entry counts.

Examples:
  sitenav collections
  sitenav collections --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := store.Collections()
		if err != nil {
			return err
		}

		rows := make([]map[string]any, 0, len(names))
		for _, name := range names {
			items, err := store.Load(name)
			if err != nil {
				return err
			}
			rows = append(rows, map[string]any{
				"collection": name,
				"entries":    len(items),
				"schema":     store.HasSchema(name),
			})
		}

		ctx := cmd.Context()
		return printerFromContext(ctx).Print(ctx, rows)
	},
}

func init() {
	contentListCmd.Flags().StringVar(&whereExpr, "where", "", "jq expression to filter entries")
	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentGetCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(collectionsCmd)
}
