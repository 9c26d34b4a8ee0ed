// Package templates renders the preview service pages as templ components.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/iconforge/markdown-icons/internal/platform/branding"
	"github.com/iconforge/markdown-icons/internal/platform/icons"
	"github.com/iconforge/markdown-icons/internal/services/preview/storage"
)

// DefaultSource seeds the playground textarea with a working example.
const DefaultSource = "I love &icon-html5; and &icon-css3;\n\n&icon-spinner:large,spin; Sorry we have to load..."

// PlaygroundData carries everything the playground page shows.
type PlaygroundData struct {
	Sets            []icons.Definition
	Source          string
	Result          string
	SnippetsEnabled bool
}

// ComposePageTitle appends the brand name unless the title already carries it.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, " | "+branding.AppName) {
		return title
	}
	return title + " | " + branding.AppName
}

// Layout wraps a body component in the shared page chrome.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s</title>`+
				`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`+
				`<style>body{font-family:sans-serif;max-width:48rem;margin:2rem auto;padding:0 1rem}`+
				`textarea{width:100%%;min-height:10rem;font-family:monospace}`+
				`pre{background:#f4f4f4;padding:1rem;overflow-x:auto}`+
				`nav a{margin-right:1rem}</style></head><body>`+
				`<nav><a href="/">Playground</a><a href="/catalog">Icon sets</a><a href="/snippets">Snippets</a></nav>`,
			templ.EscapeString(ComposePageTitle(title)),
		); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// Playground renders the editor form with the current result.
func Playground(data PlaygroundData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, templ.EscapeString(branding.AppName)); err != nil {
			return err
		}
		if len(data.Sets) > 0 {
			slugs := make([]string, 0, len(data.Sets))
			for _, def := range data.Sets {
				slugs = append(slugs, def.Slug)
			}
			if _, err := fmt.Fprintf(w, `<p>Enabled icon sets: %s</p>`, templ.EscapeString(strings.Join(slugs, ", "))); err != nil {
				return err
			}
		}
		source := data.Source
		if source == "" {
			source = DefaultSource
		}
		if _, err := fmt.Fprintf(w,
			`<form hx-post="/render" hx-target="#result" method="post" action="/render">`+
				`<textarea name="markdown">%s</textarea>`+
				`<p><button type="submit">Render</button></p>`+
				`</form>`,
			templ.EscapeString(source),
		); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div id="result">`); err != nil {
			return err
		}
		if data.Result != "" {
			if err := Result(data.Result).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		if data.SnippetsEnabled {
			if _, err := fmt.Fprintf(w,
				`<form method="post" action="/snippets">`+
					`<input type="hidden" name="markdown" value="%s">`+
					`<input type="text" name="title" placeholder="Snippet title">`+
					`<button type="submit">Save snippet</button>`+
					`</form>`,
				templ.EscapeString(source),
			); err != nil {
				return err
			}
		}
		return nil
	})
	return Layout("Playground", body)
}

// Result wraps rendered markdown output. The fragment is also served alone
// for partial updates.
func Result(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h2>Rendered</h2>`); err != nil {
			return err
		}
		if err := templ.Raw(html).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<h2>Markup</h2><pre>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(html)); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</pre>`)
		return err
	})
}

// CatalogPage shows the rendered icon set reference.
func CatalogPage(html string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templ.Raw(html).Render(ctx, w)
	})
	return Layout("Icon Sets", body)
}

// SnippetPage shows one saved snippet next to its rendered output.
func SnippetPage(snippet storage.Snippet, html string) templ.Component {
	title := snippet.Title
	if strings.TrimSpace(title) == "" {
		title = "Snippet " + snippet.ID
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := templ.Raw(html).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<h2>Source</h2><pre>%s</pre>`, templ.EscapeString(snippet.Source))
		return err
	})
	return Layout(title, body)
}

// SnippetList shows saved snippets, newest first.
func SnippetList(snippets []storage.Snippet) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Snippets</h1>`); err != nil {
			return err
		}
		if len(snippets) == 0 {
			_, err := io.WriteString(w, `<p>No snippets saved yet.</p>`)
			return err
		}
		if _, err := io.WriteString(w, `<ul>`); err != nil {
			return err
		}
		for _, snippet := range snippets {
			label := snippet.Title
			if strings.TrimSpace(label) == "" {
				label = snippet.ID
			}
			if _, err := fmt.Fprintf(w,
				`<li><a href="/snippets/%s">%s</a></li>`,
				templ.EscapeString(snippet.ID),
				templ.EscapeString(label),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
	return Layout("Snippets", body)
}
