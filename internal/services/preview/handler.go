package preview

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/iconforge/markdown-icons/internal/platform/icons"
	"github.com/iconforge/markdown-icons/internal/platform/id"
	"github.com/iconforge/markdown-icons/internal/platform/timeouts"
	"github.com/iconforge/markdown-icons/internal/render"
	"github.com/iconforge/markdown-icons/internal/services/preview/storage"
	"github.com/iconforge/markdown-icons/internal/services/preview/templates"
)

// hxRequestHeader is the HTMX request header used to detect partial updates.
const hxRequestHeader = "HX-Request"

// maxRenderBytes caps accepted markdown payloads.
const maxRenderBytes = 1 << 20

// snippetListLimit caps the snippet index page.
const snippetListLimit = 50

type handler struct {
	pipeline *render.Pipeline
	store    storage.Store
	sets     []icons.Definition
}

// newHandler builds the HTTP handler for the preview server.
func newHandler(pipeline *render.Pipeline, store storage.Store, sets []icons.Definition) http.Handler {
	h := &handler{pipeline: pipeline, store: store, sets: sets}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.playground)
	mux.HandleFunc("POST /render", h.render)
	mux.HandleFunc("GET /catalog", h.catalog)
	mux.HandleFunc("GET /snippets", h.listSnippets)
	mux.HandleFunc("POST /snippets", h.saveSnippet)
	mux.HandleFunc("GET /snippets/{id}", h.showSnippet)
	mux.HandleFunc("GET /healthz", h.healthz)
	return mux
}

func isHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(hxRequestHeader), "true")
}

func (h *handler) playground(w http.ResponseWriter, r *http.Request) {
	templ.Handler(templates.Playground(templates.PlaygroundData{
		Sets:            h.sets,
		SnippetsEnabled: h.store != nil,
	})).ServeHTTP(w, r)
}

func (h *handler) render(w http.ResponseWriter, r *http.Request) {
	source, ok := h.readMarkdown(w, r)
	if !ok {
		return
	}

	html, ok := h.renderMarkdown(r.Context(), w, source)
	if !ok {
		return
	}

	if isHTMXRequest(r) {
		templ.Handler(templates.Result(html)).ServeHTTP(w, r)
		return
	}
	templ.Handler(templates.Playground(templates.PlaygroundData{
		Sets:            h.sets,
		Source:          source,
		Result:          html,
		SnippetsEnabled: h.store != nil,
	})).ServeHTTP(w, r)
}

func (h *handler) catalog(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString(icons.CatalogMarkdown())
	if len(h.sets) > 0 {
		b.WriteString("\n## Live examples\n\n")
		for _, def := range h.sets {
			b.WriteString("- ")
			b.WriteString(def.Label)
			b.WriteString(": ")
			b.WriteString(icons.Reference(def, def.Example))
			b.WriteString("\n")
		}
	}

	html, ok := h.renderMarkdown(r.Context(), w, b.String())
	if !ok {
		return
	}
	templ.Handler(templates.CatalogPage(html)).ServeHTTP(w, r)
}

func (h *handler) listSnippets(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		http.Error(w, "snippet storage is not configured", http.StatusServiceUnavailable)
		return
	}
	snippets, err := h.store.ListSnippets(r.Context(), snippetListLimit)
	if err != nil {
		log.Printf("list snippets: %v", err)
		http.Error(w, "list snippets", http.StatusInternalServerError)
		return
	}
	templ.Handler(templates.SnippetList(snippets)).ServeHTTP(w, r)
}

func (h *handler) saveSnippet(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		http.Error(w, "snippet storage is not configured", http.StatusServiceUnavailable)
		return
	}
	source, ok := h.readMarkdown(w, r)
	if !ok {
		return
	}

	snippetID, err := id.NewID()
	if err != nil {
		log.Printf("new snippet id: %v", err)
		http.Error(w, "save snippet", http.StatusInternalServerError)
		return
	}
	snippet := storage.Snippet{
		ID:     snippetID,
		Title:  strings.TrimSpace(r.PostFormValue("title")),
		Source: source,
	}
	if err := h.store.PutSnippet(r.Context(), snippet); err != nil {
		log.Printf("put snippet: %v", err)
		http.Error(w, "save snippet", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/snippets/"+snippetID, http.StatusSeeOther)
}

func (h *handler) showSnippet(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		http.Error(w, "snippet storage is not configured", http.StatusServiceUnavailable)
		return
	}
	snippet, found, err := h.store.GetSnippet(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Printf("get snippet: %v", err)
		http.Error(w, "load snippet", http.StatusInternalServerError)
		return
	}
	if !found {
		http.NotFound(w, r)
		return
	}

	html, ok := h.renderMarkdown(r.Context(), w, snippet.Source)
	if !ok {
		return
	}
	templ.Handler(templates.SnippetPage(snippet, html)).ServeHTTP(w, r)
}

func (h *handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// readMarkdown extracts the markdown form field, rejecting oversized or
// empty payloads.
func (h *handler) readMarkdown(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRenderBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return "", false
	}
	source := r.PostFormValue("markdown")
	if strings.TrimSpace(source) == "" {
		http.Error(w, "markdown is required", http.StatusBadRequest)
		return "", false
	}
	return source, true
}

func (h *handler) renderMarkdown(ctx context.Context, w http.ResponseWriter, source string) (string, bool) {
	renderCtx, cancel := context.WithTimeout(ctx, timeouts.Render)
	defer cancel()

	html, err := h.pipeline.Render(renderCtx, []byte(source))
	if err != nil {
		log.Printf("render markdown: %v", err)
		http.Error(w, "render markdown", http.StatusInternalServerError)
		return "", false
	}
	return string(html), true
}
