package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mossline/sitenav/internal/content"
	"github.com/mossline/sitenav/internal/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate [collection]",
	Short: "Validate entries against collection schemas",
	Long: `Validate every entry against its collection's _schema.json.

With no argument, all collections are checked. Collections without a
schema file pass trivially. The exit code is non-zero when any entry
violates its schema.

Examples:
  sitenav validate
  sitenav validate pages
  sitenav validate --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		collections := args
		if len(collections) == 0 {
			all, err := store.Collections()
			if err != nil {
				return err
			}
			collections = all
		}

		type result struct {
			Collection string              `json:"collection"`
			Valid      bool                `json:"valid"`
			Violations []content.Violation `json:"violations,omitempty"`
		}

		results := make([]result, 0, len(collections))
		total := 0
		for _, name := range collections {
			err := store.Validate(name)
			if err == nil {
				results = append(results, result{Collection: name, Valid: true})
				continue
			}
			var se content.SchemaError
			if !errors.As(err, &se) {
				return err
			}
			total += len(se.Violations)
			results = append(results, result{Collection: name, Valid: false, Violations: se.Violations})
		}

		ctx := cmd.Context()
		if structuredOutputRequested(ctx) || output.FormatFromContext(ctx) == output.FormatTable {
			if err := printerFromContext(ctx).Print(ctx, results); err != nil {
				return err
			}
		} else {
			out := stdoutFromContext(ctx)
			for _, r := range results {
				if r.Valid {
					if !output.QuietFromContext(ctx) {
						fmt.Fprintf(out, "%s: ok\n", r.Collection)
					}
					continue
				}
				fmt.Fprintf(out, "%s: %d violation(s)\n", r.Collection, len(r.Violations))
				for _, v := range r.Violations {
					fmt.Fprintf(out, "  %s: %s\n", v.Slug, v.Message)
				}
			}
		}

		if total > 0 {
			cmd.SilenceUsage = true
			return fmt.Errorf("validation failed: %d violation(s)", total)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
