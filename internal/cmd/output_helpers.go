package cmd

import (
	"context"

	"github.com/mossline/sitenav/internal/output"
)

// printerFromContext builds a Printer for the command's stdout in the
// selected format.
func printerFromContext(ctx context.Context) *output.Printer {
	return output.NewPrinter(stdoutFromContext(ctx), output.FormatFromContext(ctx))
}

// structuredOutputRequested reports whether the user asked for a
// machine-readable format.
func structuredOutputRequested(ctx context.Context) bool {
	return output.IsStructured(output.FormatFromContext(ctx))
}
