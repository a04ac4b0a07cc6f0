package api

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mswatii/shoecard/internal/card"
	"github.com/mswatii/shoecard/internal/models"
)

const pageTitle = "Sole & Ankle"

// Serve static files (CSS, JS, images)
func (h *Handler) handleStatic(ctx *fasthttp.RequestCtx) {
	filePath := strings.TrimPrefix(string(ctx.Path()), "/static/")
	// filepath.Join cleans the path; refuse anything that climbs out of staticDir
	fullPath := filepath.Join(h.staticDir, filepath.FromSlash(filePath))
	if rel, err := filepath.Rel(h.staticDir, fullPath); err != nil || strings.HasPrefix(rel, "..") {
		ctx.Error("File not found", fasthttp.StatusNotFound)
		return
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		ctx.Error("File not found", fasthttp.StatusNotFound)
		return
	}

	// Set content type based on file extension
	switch filepath.Ext(filePath) {
	case ".css":
		ctx.SetContentType("text/css")
	case ".js":
		ctx.SetContentType("application/javascript")
	case ".png":
		ctx.SetContentType("image/png")
	case ".jpg", ".jpeg":
		ctx.SetContentType("image/jpeg")
	case ".webp":
		ctx.SetContentType("image/webp")
	case ".svg":
		ctx.SetContentType("image/svg+xml")
	default:
		ctx.SetContentType("application/octet-stream")
	}

	ctx.SetBody(content)
}

// Serve the catalog grid
func (h *Handler) handleIndex(ctx *fasthttp.RequestCtx) {
	reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	shoes, err := h.store.List(reqCtx)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	h.renderPage(ctx, pageTitle, shoes)
}

// Serve a single shoe's card, the target of every card link
func (h *Handler) handleShoePage(ctx *fasthttp.RequestCtx, slug string) {
	reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	shoe, err := h.store.Get(reqCtx, slug)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	h.renderPage(ctx, shoe.Name+" | "+pageTitle, []models.Shoe{shoe})
}

func (h *Handler) renderPage(ctx *fasthttp.RequestCtx, title string, shoes []models.Shoe) {
	cards := card.BuildAll(shoes, h.now(), h.theme)

	ctx.SetContentType("text/html; charset=utf-8")
	if err := h.renderer.Page(ctx, title, cards); err != nil {
		h.logger.Error("Template execution failed", zap.Error(err))
		ctx.Error("Error rendering page", fasthttp.StatusInternalServerError)
	}
}
