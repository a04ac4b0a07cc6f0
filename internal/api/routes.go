package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mswatii/shoecard/internal/card"
	"github.com/mswatii/shoecard/internal/catalog"
	"github.com/mswatii/shoecard/internal/render/web"
	"github.com/mswatii/shoecard/internal/store"
	"github.com/mswatii/shoecard/internal/theme"
)

const requestTimeout = 10 * time.Second

// Handler represents the API handler
type Handler struct {
	store     store.Store
	importer  *catalog.Importer
	renderer  *web.Renderer
	theme     theme.Theme
	staticDir string
	logger    *zap.Logger
	now       func() time.Time
}

// NewHandler creates a new API handler
func NewHandler(st store.Store, importer *catalog.Importer, th theme.Theme, staticDir string, logger *zap.Logger) (*Handler, error) {
	renderer, err := web.New(th)
	if err != nil {
		return nil, err
	}
	return &Handler{
		store:     st,
		importer:  importer,
		renderer:  renderer,
		theme:     th,
		staticDir: staticDir,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// HandleRequest routes a request. Wrap it with LogRequests for access logs.
func (h *Handler) HandleRequest(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	// Handle web routes first
	if path == "/" || path == "/index.html" {
		h.handleIndex(ctx)
		return
	}

	if slug, ok := strings.CutPrefix(path, "/shoe/"); ok && slug != "" {
		h.handleShoePage(ctx, slug)
		return
	}

	// Handle static files
	if strings.HasPrefix(path, "/static/") {
		h.handleStatic(ctx)
		return
	}

	// Handle API routes
	switch {
	case path == "/api/health":
		h.handleHealth(ctx)
	case path == "/api/refresh":
		h.handleRefresh(ctx)
	case path == "/api/shoes":
		h.handleShoes(ctx)
	case strings.HasPrefix(path, "/api/shoes/"):
		h.handleShoe(ctx, strings.TrimPrefix(path, "/api/shoes/"))
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		ctx.SetBodyString("Not Found")
	}
}

// handleHealth handles the health check endpoint
func (h *Handler) handleHealth(ctx *fasthttp.RequestCtx) {
	response := map[string]interface{}{
		"status": "ok",
		"time":   h.now().Format(time.RFC3339),
	}
	writeJSON(ctx, fasthttp.StatusOK, response)
}

// handleRefresh re-imports the catalog
func (h *Handler) handleRefresh(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
		return
	}
	if h.importer == nil {
		ctx.Error("Catalog import is not configured", fasthttp.StatusServiceUnavailable)
		return
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	summary, err := h.importer.Import(reqCtx)
	if err != nil {
		h.logger.Error("Catalog refresh failed", zap.Error(err))
		ctx.Error(fmt.Sprintf("Failed to import catalog: %v", err), fasthttp.StatusInternalServerError)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, summary)
}

// handleShoes lists every shoe as a card evaluated at request time
func (h *Handler) handleShoes(ctx *fasthttp.RequestCtx) {
	reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	shoes, err := h.store.List(reqCtx)
	if err != nil {
		h.fail(ctx, err)
		return
	}

	cards := card.BuildAll(shoes, h.now(), h.theme)

	// Optional filter on the computed variant
	if raw := ctx.QueryArgs().Peek("variant"); len(raw) > 0 {
		var want card.Variant
		if err := want.UnmarshalText(raw); err != nil {
			ctx.Error(err.Error(), fasthttp.StatusBadRequest)
			return
		}
		filtered := cards[:0]
		for _, c := range cards {
			if c.Variant == want {
				filtered = append(filtered, c)
			}
		}
		cards = filtered
	}

	response := map[string]interface{}{
		"cards": cards,
		"count": len(cards),
	}
	writeJSON(ctx, fasthttp.StatusOK, response)
}

// handleShoe returns one shoe with its card
func (h *Handler) handleShoe(ctx *fasthttp.RequestCtx, slug string) {
	reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	shoe, err := h.store.Get(reqCtx, slug)
	if err != nil {
		h.fail(ctx, err)
		return
	}

	response := map[string]interface{}{
		"shoe": shoe,
		"card": card.Build(shoe, h.now(), h.theme),
	}
	writeJSON(ctx, fasthttp.StatusOK, response)
}

// fail maps store errors to a status code
func (h *Handler) fail(ctx *fasthttp.RequestCtx, err error) {
	if errors.Is(err, store.ErrNotFound) {
		ctx.Error("Not Found", fasthttp.StatusNotFound)
		return
	}
	h.logger.Error("Store request failed", zap.ByteString("path", ctx.Path()), zap.Error(err))
	ctx.Error(fmt.Sprintf("Failed to load shoes: %v", err), fasthttp.StatusInternalServerError)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		ctx.Error(fmt.Sprintf("Failed to encode response: %v", err), fasthttp.StatusInternalServerError)
	}
}
