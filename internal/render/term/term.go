// Package term draws shoe cards for a terminal with lipgloss.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mswatii/shoecard/internal/card"
	"github.com/mswatii/shoecard/internal/theme"
)

// pxPerCell converts the theme card width to terminal columns
const pxPerCell = 10

// Renderer holds the lipgloss styles derived from a theme
type Renderer struct {
	width int

	frame     lipgloss.Style
	name      lipgloss.Style
	price     lipgloss.Style
	struck    lipgloss.Style
	colors    lipgloss.Style
	salePrice lipgloss.Style
	badge     map[card.Variant]lipgloss.Style
	border    lipgloss.Style
	header    lipgloss.Style
	cell      lipgloss.Style
}

// New builds the styles once for a theme
func New(th theme.Theme) *Renderer {
	c := th.Colors
	width := th.CardWidth / pxPerCell
	if width < 24 {
		width = 24
	}

	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.White)).
		Bold(true).
		Padding(0, 1)

	return &Renderer{
		width: width,
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Gray700)).
			Padding(0, 1).
			Width(width),
		name:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Gray900)),
		price:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Gray900)),
		struck:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Gray700)).Strikethrough(true),
		colors:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Gray700)),
		salePrice: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Primary)),
		border: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Gray700)),
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Gray900)).Padding(0, 1),
		cell:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Gray900)).Padding(0, 1),
		badge: map[card.Variant]lipgloss.Style{
			card.OnSale:     badge.Background(lipgloss.Color(c.Primary)),
			card.NewRelease: badge.Background(lipgloss.Color(c.Secondary)),
		},
	}
}

// Card renders one card: badge line (if any), name and price, colours and sale price
func (r *Renderer) Card(c card.Card) string {
	inner := r.width - 2

	var lines []string
	if c.Badge != nil {
		tag := r.badge[c.Variant].Render(c.Badge.Text)
		lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Right, tag))
	}

	priceStyle := r.price
	if c.PriceStruck {
		priceStyle = r.struck
	}
	lines = append(lines, row(inner, r.name.Render(c.Name), priceStyle.Render(c.Price)))

	sale := ""
	if c.ShowSalePrice {
		sale = r.salePrice.Render(c.SalePrice)
	}
	lines = append(lines, row(inner, r.colors.Render(c.ColorInfo), sale))
	lines = append(lines, r.colors.Render(c.Href))

	return r.frame.Render(strings.Join(lines, "\n"))
}

// Grid lays cards out perRow to a line
func (r *Renderer) Grid(cards []card.Card, perRow int) string {
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		rendered := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			rendered = append(rendered, r.Card(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Table columns
const (
	colSlug = iota
	colVariant
	colBadge
	colPrice
	colSale
)

// Table lists one card per row: slug, variant, badge, price and sale price.
// The badge cell takes the badge colours; the price of an on-sale card is struck.
func (r *Renderer) Table(cards []card.Card) string {
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		badge := "-"
		if c.Badge != nil {
			badge = c.Badge.Text
		}
		sale := "-"
		if c.ShowSalePrice {
			sale = c.SalePrice
		}
		rows = append(rows, []string{c.Slug, c.Variant.String(), badge, c.Price, sale})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.border).
		Headers("SLUG", "VARIANT", "BADGE", "PRICE", "SALE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.header
			}
			c := cards[row]
			switch {
			case col == colBadge && c.Badge != nil:
				return r.badge[c.Variant].Padding(0, 1)
			case col == colPrice && c.PriceStruck:
				return r.struck.Padding(0, 1)
			case col == colSale && c.ShowSalePrice:
				return r.salePrice.Padding(0, 1)
			default:
				return r.cell
			}
		})
	return t.String()
}

// row puts left and right at opposite ends of a line of the given width
func row(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
