// Package render builds the goldmark pipeline shared by the CLI, the
// preview service, and the MCP server.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/iconforge/markdown-icons/iconfonts"
	"github.com/iconforge/markdown-icons/internal/platform/icons"
)

const tracerName = "github.com/iconforge/markdown-icons/internal/render"

// Pair is an explicit prefix and base class registration.
type Pair struct {
	Prefix string
	Base   string
}

// Options select which icon references the pipeline recognizes.
type Options struct {
	// Sets are icon set slugs resolved through the catalog. Unknown slugs
	// fail pipeline construction.
	Sets []string
	// Pairs are explicit prefix/base registrations appended after Sets.
	Pairs []Pair
}

// Pipeline renders markdown with the configured icon extensions.
type Pipeline struct {
	md     goldmark.Markdown
	pairs  []Pair
	tracer trace.Tracer
}

// NewPipeline resolves opts against the catalog and builds the markdown
// converter. Without sets or pairs the generic catalog set applies.
func NewPipeline(opts Options) (*Pipeline, error) {
	pairs := make([]Pair, 0, len(opts.Sets)+len(opts.Pairs))
	for _, slug := range opts.Sets {
		def, ok := icons.Lookup(slug)
		if !ok {
			return nil, fmt.Errorf("unknown icon set %q", slug)
		}
		pairs = append(pairs, Pair{Prefix: def.Prefix, Base: def.Base})
	}
	pairs = append(pairs, opts.Pairs...)
	if len(pairs) == 0 {
		def := icons.Default()
		pairs = append(pairs, Pair{Prefix: def.Prefix, Base: def.Base})
	}

	iconOpts := []iconfonts.Option{
		iconfonts.WithPrefix(pairs[0].Prefix),
		iconfonts.WithBase(pairs[0].Base),
	}
	for _, pair := range pairs[1:] {
		iconOpts = append(iconOpts, iconfonts.WithPrefixBase(pair.Prefix, pair.Base))
	}

	md := goldmark.New(goldmark.WithExtensions(
		extension.GFM,
		iconfonts.New(iconOpts...),
	))
	return &Pipeline{
		md:     md,
		pairs:  pairs,
		tracer: otel.Tracer(tracerName),
	}, nil
}

// Pairs returns the prefix/base registrations the pipeline was built with.
func (p *Pipeline) Pairs() []Pair {
	result := make([]Pair, len(p.pairs))
	copy(result, p.pairs)
	return result
}

// Render converts markdown source to HTML.
func (p *Pipeline) Render(ctx context.Context, source []byte) ([]byte, error) {
	_, span := p.tracer.Start(ctx, "render.markdown",
		trace.WithAttributes(attribute.Int("markdown.source_bytes", len(source))),
	)
	defer span.End()

	var buf bytes.Buffer
	if err := p.md.Convert(source, &buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "convert markdown")
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	span.SetAttributes(attribute.Int("markdown.html_bytes", buf.Len()))
	return buf.Bytes(), nil
}
