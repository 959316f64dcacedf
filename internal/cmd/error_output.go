package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mossline/sitenav/internal/content"
	"github.com/mossline/sitenav/internal/output"
)

type errorFormatKey struct{}

func withErrorFormat(ctx context.Context, format string) context.Context {
	return context.WithValue(ctx, errorFormatKey{}, format)
}

func errorFormatFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(errorFormatKey{}).(string); ok {
		return v
	}
	return ""
}

func validateErrorFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "auto", "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid --error-format %q (expected auto|text|json|yaml)", format)
	}
}

func effectiveErrorFormat(ctx context.Context) string {
	format := strings.ToLower(strings.TrimSpace(errorFormatFromContext(ctx)))
	if format == "" || format == "auto" {
		switch output.FormatFromContext(ctx) {
		case output.FormatJSON, output.FormatNDJSON:
			return "json"
		case output.FormatYAML:
			return "yaml"
		default:
			return "text"
		}
	}
	return format
}

func printCommandError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	switch effectiveErrorFormat(ctx) {
	case "json":
		enc := json.NewEncoder(stderrFromContext(ctx))
		enc.SetEscapeHTML(false)
		_ = enc.Encode(buildErrorEnvelope(err))
		return
	case "yaml":
		enc := yaml.NewEncoder(stderrFromContext(ctx))
		enc.SetIndent(2)
		_ = enc.Encode(buildErrorEnvelope(err))
		_ = enc.Close()
		return
	}

	_, _ = fmt.Fprintln(stderrFromContext(ctx), err)
}

func buildErrorEnvelope(err error) map[string]any {
	errMap := map[string]any{
		"message":  err.Error(),
		"category": "system",
		"type":     "error",
	}

	var notFoundErr content.NotFoundError
	if errors.As(err, &notFoundErr) {
		errMap["type"] = "not_found"
		errMap["category"] = "user"
	}

	var decodeErr content.DecodeError
	if errors.As(err, &decodeErr) {
		errMap["type"] = "decode"
		errMap["category"] = "user"
		errMap["path"] = decodeErr.Path
	}

	var schemaErr content.SchemaError
	if errors.As(err, &schemaErr) {
		errMap["type"] = "schema"
		errMap["category"] = "user"
		errMap["collection"] = schemaErr.Collection
		errMap["violations"] = schemaErr.Violations
	}

	return map[string]any{"error": errMap}
}
