// Package output formats command results for terminals and pipelines.
package output

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is human-readable output (default).
	FormatText Format = "text"
	// FormatJSON is pretty-printed JSON.
	FormatJSON Format = "json"
	// FormatNDJSON is newline-delimited JSON.
	FormatNDJSON Format = "ndjson"
	// FormatTable is tabular output for lists.
	FormatTable Format = "table"
	// FormatYAML is YAML output.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format. Empty input defaults to
// FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatNDJSON:
		return FormatNDJSON, nil
	case FormatTable:
		return FormatTable, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected text|json|ndjson|table|yaml)")
	}
}

// IsStructured reports whether the format is machine-readable.
func IsStructured(format Format) bool {
	switch format {
	case FormatJSON, FormatNDJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// Printer writes command results in one format.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a Printer writing to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Print outputs data in the configured format, honoring the list
// options and jq query carried by the context.
func (p *Printer) Print(ctx context.Context, data any) error {
	if data == nil {
		return nil
	}

	data = ApplyListOptions(ctx, data)

	switch p.format {
	case FormatJSON:
		return p.printJSON(ctx, data)
	case FormatNDJSON:
		return p.printNDJSON(ctx, data)
	case FormatYAML:
		return p.printYAML(data)
	case FormatTable:
		return p.printTable(data)
	case FormatText:
		return p.printText(data)
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

// runQuery applies a jq expression to data. Input is JSON-normalized
// first so typed values (nodes, items) all look the same to gojq.
func runQuery(query string, data any, emit func(any) error) error {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}

	normalized, err := normalize(data)
	if err != nil {
		return err
	}

	iter := code.Run(normalized)
	for {
		v, ok := iter.Next()
		if !ok {
			return nil
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("query error: %w", err)
		}
		if err := emit(v); err != nil {
			return err
		}
	}
}

// normalize round-trips data through JSON so gojq sees plain values.
func normalize(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Printer) printJSON(ctx context.Context, data any) error {
	query := QueryFromContext(ctx)
	if query == "" {
		enc := json.NewEncoder(p.w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	return runQuery(query, data, enc.Encode)
}

func (p *Printer) printNDJSON(ctx context.Context, data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)

	if query := QueryFromContext(ctx); query != "" {
		return runQuery(query, data, enc.Encode)
	}

	normalized, err := normalize(data)
	if err != nil {
		return err
	}
	if list, ok := normalized.([]any); ok {
		for _, e := range list {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	}
	return enc.Encode(normalized)
}

func (p *Printer) printYAML(data any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

// printText renders mappings as sorted key-value lines, lists one
// entry per line, and everything else via Println.
func (p *Printer) printText(data any) error {
	normalized, err := normalize(data)
	if err != nil {
		return err
	}
	switch v := normalized.(type) {
	case map[string]any:
		return p.printTextMap(v)
	case []any:
		for _, e := range v {
			if m, ok := e.(map[string]any); ok {
				if err := p.printTextMap(m); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(p.w); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintln(p.w, textValue(e)); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(p.w, textValue(v))
		return err
	}
}

func (p *Printer) printTextMap(m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(p.w, "%s: %s\n", k, textValue(m[k])); err != nil {
			return err
		}
	}
	return nil
}

// textValue flattens nested containers to compact JSON so text output
// stays one line per field.
func textValue(v any) string {
	switch v.(type) {
	case map[string]any, []any:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// printTable renders an explicit Table, or derives columns from the
// union of scalar keys of a list of mappings.
func (p *Printer) printTable(data any) error {
	if table, ok := data.(Table); ok {
		return p.printTableData(table.Headers, table.Rows)
	}

	normalized, err := normalize(data)
	if err != nil {
		return err
	}
	list, ok := normalized.([]any)
	if !ok {
		return fmt.Errorf("table format requires a list of items")
	}
	if len(list) == 0 {
		return nil
	}

	headers := tableHeaders(list)
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			m = map[string]any{"value": e}
		}
		row := make([]string, 0, len(headers))
		for _, h := range headers {
			row = append(row, textValue(m[h]))
		}
		rows = append(rows, row)
	}
	return p.printTableData(headers, rows)
}

// tableHeaders collects the union of keys across all rows, with the
// common identifying columns pinned first.
func tableHeaders(list []any) []string {
	pinned := []string{"slug", "title", "collection", "order"}
	seen := make(map[string]bool)
	var rest []string
	for _, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			return []string{"value"}
		}
		for k := range m {
			if !seen[k] {
				seen[k] = true
				rest = append(rest, k)
			}
		}
	}

	var headers []string
	for _, k := range pinned {
		if seen[k] {
			headers = append(headers, k)
			seen[k] = false
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		if seen[k] {
			headers = append(headers, k)
		}
	}
	return headers
}

func (p *Printer) printTableData(headers []string, rows [][]string) error {
	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)

	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, h)
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}
