package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mossline/sitenav/internal/config"
	"github.com/mossline/sitenav/internal/content"
	"github.com/mossline/sitenav/internal/output"
)

var (
	// Version is set at build time
	version = "dev"
	// Commit is set at build time
	commit = "none"
	// Date is set at build time
	date = "unknown"
)

// SetVersionInfo sets the version information from build flags
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Global flags
var (
	contentDir     string
	menuCollection string
	outputFmt      string
	outputType     output.Format
	queryExpr      string
	queryFile      string
	errorFmt       string
	quietFlag      bool
	debug          bool
	configFile     string
	resultLimit    int
	resultSort     string
	resultDesc     bool
)

// store is the shared content store, initialized in the root
// PersistentPreRunE for commands that read content.
var store *content.Store

// cfg is the loaded configuration, nil for config subcommands.
var cfg *config.Config

// newStoreFunc creates the content store; tests swap it out.
var newStoreFunc = content.NewStore

// envGet reads environment variables; tests swap it out.
var envGet = os.Getenv

var rootCmd = &cobra.Command{
	Use:   "sitenav",
	Short: "Content collections and navigation for static sites",
	Long: `sitenav works with a static site's content directory: one
subdirectory per collection, holding JSON, YAML, or markdown entries.

It builds the navigation menu tree from a menu collection, lists and
filters content entries, and validates them against per-collection
JSON Schemas.

Environment Variables:
  SITENAV_CONTENT_DIR      Content directory (default: content)
  SITENAV_MENU_COLLECTION  Menu collection name (default: menu)`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceErrors = true

		skipConfigLoad := cmd.Name() == "config" || (cmd.Parent() != nil && cmd.Parent().Name() == "config")
		cfg = nil
		if !skipConfigLoad {
			loadedCfg, err := loadConfigFromFlag()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg = loadedCfg
		}

		// Output format selection: --output > config > default
		formatStr := outputFmt
		if !flagChanged(cmd, "output") && !flagChanged(cmd, "format") {
			switch {
			case cfg != nil && strings.TrimSpace(cfg.OutputFormat) != "":
				formatStr = strings.TrimSpace(cfg.OutputFormat)
			case !isTerminal(cmd.OutOrStdout()):
				formatStr = "json"
			}
		}
		format, err := output.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		outputType = format
		outputFmt = string(format)

		// jq query
		if queryExpr != "" && queryFile != "" {
			return fmt.Errorf("use only one of --query or --query-file")
		}
		if queryFile != "" {
			loaded, err := readInputSource(queryFile, cmd.InOrStdin())
			if err != nil {
				return err
			}
			queryExpr = loaded
		}

		// Default quiet mode for non-interactive structured output
		if !flagChanged(cmd, "quiet") && !isTerminal(cmd.OutOrStdout()) && output.IsStructured(outputType) {
			quietFlag = true
		}

		ctx := cmd.Context()
		ctx = withIO(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		ctx = output.WithFormat(ctx, outputType)
		ctx = output.WithQuery(ctx, queryExpr)
		ctx = output.WithLimit(ctx, resultLimit)
		ctx = output.WithSort(ctx, resultSort, resultDesc)
		ctx = output.WithQuiet(ctx, quietFlag)
		ctx = withErrorFormat(ctx, errorFmt)
		cmd.SetContext(ctx)
		// Execute reports errors through the root context.
		cmd.Root().SetContext(ctx)

		if err := validateErrorFormat(errorFmt); err != nil {
			return err
		}
		if effectiveErrorFormat(ctx) != "text" {
			cmd.SilenceUsage = true
		}

		// Skip store initialization for commands that never read content.
		if cmd.Name() == "config" || cmd.Name() == "completion" || cmd.Name() == "help" ||
			(cmd.Parent() != nil && cmd.Parent().Name() == "config") {
			return nil
		}

		dir := resolveContentDir()
		store, err = newStoreFunc(dir)
		if err != nil {
			return fmt.Errorf("opening content directory %s: %w", dir, err)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printCommandError(rootCmd.Context(), err)
		return err
	}
	return nil
}

// resolveContentDir applies flag > env > config > default precedence.
func resolveContentDir() string {
	if contentDir != "" {
		return contentDir
	}
	if dir := envGet("SITENAV_CONTENT_DIR"); dir != "" {
		return dir
	}
	if cfg != nil && strings.TrimSpace(cfg.ContentDir) != "" {
		return strings.TrimSpace(cfg.ContentDir)
	}
	return "content"
}

// resolveMenuCollection applies the same precedence for the menu
// collection name.
func resolveMenuCollection() string {
	if menuCollection != "" {
		return menuCollection
	}
	if name := envGet("SITENAV_MENU_COLLECTION"); name != "" {
		return name
	}
	if cfg != nil && strings.TrimSpace(cfg.MenuCollection) != "" {
		return strings.TrimSpace(cfg.MenuCollection)
	}
	return config.DefaultMenuCollection
}

func loadConfigFromFlag() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.ReadConfig()
}

func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("sitenav version %s (commit: %s, built: %s)\n", version, commit, date))

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&contentDir, "content-dir", "C", "", "Content directory (env: SITENAV_CONTENT_DIR)")
	rootCmd.PersistentFlags().StringVar(&menuCollection, "menu-collection", "", "Menu collection name (env: SITENAV_MENU_COLLECTION)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "Output format (text|json|ndjson|table|yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "format", "text", "Alias for --output")
	rootCmd.PersistentFlags().StringVar(&queryExpr, "query", "", "jq expression to filter JSON output")
	rootCmd.PersistentFlags().StringVar(&queryFile, "query-file", "", "Read jq expression from file (use - for stdin)")
	rootCmd.PersistentFlags().StringVar(&errorFmt, "error-format", "auto", "Error output format (auto|text|json|yaml)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().IntVar(&resultLimit, "result-limit", 0, "Limit number of results in output (0 = unlimited)")
	rootCmd.PersistentFlags().StringVar(&resultSort, "result-sort-by", "", "Sort output results by field")
	rootCmd.PersistentFlags().BoolVar(&resultDesc, "result-desc", false, "Sort output results in descending order")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.config/sitenav/config.yaml)")
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
