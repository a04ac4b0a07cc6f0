package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mswatii/shoecard/internal/card"
	"github.com/mswatii/shoecard/internal/catalog"
	"github.com/mswatii/shoecard/internal/models"
	"github.com/mswatii/shoecard/internal/render/term"
	"github.com/mswatii/shoecard/internal/store"
	"github.com/mswatii/shoecard/internal/theme"
)

var (
	perRow   int
	onlySlug string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the catalog as a grid of cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		th, err := theme.Load(themeFile)
		if err != nil {
			return err
		}
		cards, err := loadCards(cmd, th)
		if err != nil {
			return err
		}
		if onlySlug != "" {
			cards = filterSlug(cards, onlySlug)
			if len(cards) == 0 {
				return fmt.Errorf("no shoe with slug %q", onlySlug)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), term.New(th).Grid(cards, perRow))
		return nil
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Print each shoe's variant and badge",
	RunE: func(cmd *cobra.Command, args []string) error {
		th, err := theme.Load(themeFile)
		if err != nil {
			return err
		}
		cards, err := loadCards(cmd, th)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), term.New(th).Table(cards))
		return nil
	},
}

func init() {
	renderCmd.Flags().IntVar(&perRow, "per-row", 3, "cards per row")
	renderCmd.Flags().StringVar(&onlySlug, "slug", "", "render only this shoe")
}

// loadCards reads the feed, drops rows the importer would reject and
// builds the cards newest first
func loadCards(cmd *cobra.Command, th theme.Theme) ([]card.Card, error) {
	now, err := evaluationTime()
	if err != nil {
		return nil, err
	}

	rows, err := catalog.Load(cmd.Context(), &fasthttp.Client{}, catalogSource)
	if err != nil {
		return nil, err
	}

	shoes := make([]models.Shoe, 0, len(rows))
	for i, row := range rows {
		shoe := row.ToShoe()
		if err := catalog.Validate(shoe); err != nil {
			logger.Warn("Skipping catalog row", zap.Int("row", i), zap.Error(err))
			continue
		}
		shoes = append(shoes, shoe)
	}
	store.SortNewestFirst(shoes)

	logger.Debug("Building cards", zap.Int("shoes", len(shoes)), zap.Time("now", now))
	return card.BuildAll(shoes, now, th), nil
}

func filterSlug(cards []card.Card, slug string) []card.Card {
	for _, c := range cards {
		if c.Slug == slug {
			return []card.Card{c}
		}
	}
	return nil
}
