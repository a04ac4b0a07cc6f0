package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mswatii/shoecard/internal/models"
	"github.com/mswatii/shoecard/internal/store"
)

const (
	RequestTimeout  = 15 * time.Second
	MaxItemsToFetch = 50000 // Safety limit on feed size
)

// Summary reports what one import run did
type Summary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Importer loads a catalog feed from a file or an http(s) URL into a store
type Importer struct {
	store  store.Store
	source string
	client *fasthttp.Client
	logger *zap.Logger
}

// NewImporter creates an importer for the given source
func NewImporter(st store.Store, source string, logger *zap.Logger) *Importer {
	return &Importer{
		store:  st,
		source: source,
		client: &fasthttp.Client{Name: "shoecard-importer"},
		logger: logger,
	}
}

// Import fetches the feed and upserts every valid row. Invalid rows are
// logged and skipped; a store failure aborts the run.
func (im *Importer) Import(ctx context.Context) (Summary, error) {
	var summary Summary

	rows, err := Load(ctx, im.client, im.source)
	if err != nil {
		return summary, err
	}
	im.logger.Info("Fetched catalog", zap.String("source", im.source), zap.Int("rows", len(rows)))

	for i, row := range rows {
		if i >= MaxItemsToFetch {
			im.logger.Warn("Reached maximum items limit, stopping import", zap.Int("limit", MaxItemsToFetch))
			break
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		shoe := row.ToShoe()
		if err := Validate(shoe); err != nil {
			im.logger.Warn("Skipping catalog row", zap.Int("row", i), zap.String("slug", row.Slug), zap.Error(err))
			summary.Skipped++
			continue
		}
		if shoe.SalePrice != nil && *shoe.SalePrice == 0 {
			im.logger.Warn("Zero sale price: shoe shows as on sale without a sale price", zap.String("slug", shoe.Slug))
		}

		if err := im.store.Upsert(ctx, shoe); err != nil {
			return summary, fmt.Errorf("error storing shoe %s: %w", shoe.Slug, err)
		}
		summary.Imported++
	}

	im.logger.Info("Catalog import completed",
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped))
	return summary, nil
}

// Load reads and parses a feed. Sources starting with http:// or https://
// are fetched with client; anything else is a file path.
func Load(ctx context.Context, client *fasthttp.Client, source string) ([]models.CatalogShoe, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetch(ctx, client, source)
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("error reading catalog file: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a JSON array of catalog rows
func Parse(data []byte) ([]models.CatalogShoe, error) {
	var rows []models.CatalogShoe
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return rows, nil
}

func fetch(ctx context.Context, client *fasthttp.Client, url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	timeout := RequestTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}

	if err := client.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("request to catalog %s failed: %w", url, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("catalog returned non-200 status code: %d, body: %s",
			resp.StatusCode(), string(resp.Body()))
	}

	// resp is released on return
	body := append([]byte(nil), resp.Body()...)
	return body, nil
}
