// Package runner performs a single request against an OpenAI-compatible
// server and reports the outcome on a writer.
package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/metalagman/llmping/internal/openaiapi"
	"github.com/rs/zerolog/log"
)

const (
	header    = "Response received:"
	separator = "--------------------"

	// Hint is the remediation line printed after a failed call.
	Hint = "Make sure the target server is running in another terminal."
)

// Completer executes a single responses API request.
type Completer interface {
	Complete(ctx context.Context, req openaiapi.CompletionRequest) (openaiapi.CompletionResponse, error)
}

// Option configures a Runner.
type Option func(*Runner)

// WithTarget sets the server name used in the progress line.
func WithTarget(target string) Option {
	return func(r *Runner) {
		r.target = target
	}
}

// WithRenderer sets a formatter applied to the output text before printing.
// A formatter failure falls back to the plain text.
func WithRenderer(render func(string) (string, error)) Option {
	return func(r *Runner) {
		r.render = render
	}
}

// Runner sends one request and prints the outcome. It keeps no state
// between runs.
type Runner struct {
	client Completer
	out    io.Writer
	target string
	render func(string) (string, error)
}

// New constructs a Runner writing to out.
func New(client Completer, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		client: client,
		out:    out,
		target: "the server",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one request and writes either the response block or the
// error block. All reporting happens here; the returned error only tells
// the caller that the run failed.
func (r *Runner) Run(ctx context.Context, req openaiapi.CompletionRequest) error {
	fmt.Fprintf(r.out, "Sending request to %s...\n", r.target)

	resp, err := r.client.Complete(ctx, req)
	if err != nil {
		Report(r.out, err)
		return err
	}

	text := resp.OutputText
	if r.render != nil {
		rendered, rerr := r.render(text)
		if rerr != nil {
			log.Debug().Err(rerr).Msg("render failed, printing plain text")
		} else {
			text = strings.TrimRight(rendered, "\n")
		}
	}

	fmt.Fprintf(r.out, "\n%s\n%s\n%s\n%s\n", header, separator, text, separator)
	return nil
}

// Report writes the error block for a failed call.
func Report(out io.Writer, err error) {
	fmt.Fprintf(out, "\nError: %v\n", err)
	fmt.Fprintf(out, "\n%s\n", Hint)
}
