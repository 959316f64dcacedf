package cmd

import (
	"context"
	"io"
	"os"
)

// ioKey carries the command's streams so helpers deep in a RunE can
// write to whatever the test or caller wired up.
type ioKey struct{}

type ioStreams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func withIO(ctx context.Context, in io.Reader, out, err io.Writer) context.Context {
	return context.WithValue(ctx, ioKey{}, ioStreams{in: in, out: out, err: err})
}

func streamsFromContext(ctx context.Context) ioStreams {
	if ctx != nil {
		if v, ok := ctx.Value(ioKey{}).(ioStreams); ok {
			return v
		}
	}
	return ioStreams{}
}

func stdinFromContext(ctx context.Context) io.Reader {
	if s := streamsFromContext(ctx); s.in != nil {
		return s.in
	}
	return os.Stdin
}

func stdoutFromContext(ctx context.Context) io.Writer {
	if s := streamsFromContext(ctx); s.out != nil {
		return s.out
	}
	return os.Stdout
}

func stderrFromContext(ctx context.Context) io.Writer {
	if s := streamsFromContext(ctx); s.err != nil {
		return s.err
	}
	return os.Stderr
}
