// Package web renders shoe cards to HTML with html/template.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/mswatii/shoecard/internal/card"
	"github.com/mswatii/shoecard/internal/theme"
)

//go:embed templates/*
var templateFS embed.FS

// Renderer holds the parsed templates and the stylesheet built from a theme
type Renderer struct {
	templates *template.Template
	styles    template.CSS
}

// New parses the templates once so each request only executes them
func New(th theme.Theme) (*Renderer, error) {
	if err := th.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	tmpl, err := template.ParseFS(templateFS, "templates/card.gohtml", "templates/page.gohtml")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	return &Renderer{
		templates: tmpl,
		styles:    Stylesheet(th),
	}, nil
}

// Card writes a single card fragment
func (r *Renderer) Card(w io.Writer, c card.Card) error {
	return r.templates.ExecuteTemplate(w, "card", c)
}

// Page writes a full HTML document containing a grid of cards
func (r *Renderer) Page(w io.Writer, title string, cards []card.Card) error {
	data := struct {
		Title  string
		Styles template.CSS
		Cards  []card.Card
	}{
		Title:  title,
		Styles: r.styles,
		Cards:  cards,
	}
	return r.templates.ExecuteTemplate(w, "page", data)
}

// Stylesheet builds the card CSS from a theme. Theme colours are checked
// by Validate to be #RRGGBB, so they are safe to inline.
func Stylesheet(th theme.Theme) template.CSS {
	c, wt, b := th.Colors, th.Weights, th.Badge

	var sb strings.Builder
	sb.WriteString(".shoe-grid{display:flex;flex-wrap:wrap;gap:32px;}")
	sb.WriteString(".shoe-card{text-decoration:none;color:inherit;}")
	fmt.Fprintf(&sb, ".shoe-card__wrapper{display:flex;flex-direction:column;position:relative;width:%dpx;}", th.CardWidth)
	sb.WriteString(".shoe-card__image{border-radius:16px 16px 4px 4px;overflow:hidden;position:relative;}")
	sb.WriteString(".shoe-card__image img{margin-bottom:-10px;object-fit:cover;width:100%;}")
	sb.WriteString(".shoe-card__spacer{height:12px;}")
	sb.WriteString(".shoe-card__row{display:flex;font-size:1rem;justify-content:space-between;}")
	fmt.Fprintf(&sb, ".shoe-card__name{font-weight:%d;color:%s;}", wt.Medium, c.Gray900)
	fmt.Fprintf(&sb, ".shoe-card__price{color:%s;text-decoration-color:%s;}", c.Gray900, c.Gray700)
	fmt.Fprintf(&sb, ".shoe-card__price--struck{color:%s;text-decoration:line-through;}", c.Gray700)
	fmt.Fprintf(&sb, ".shoe-card__colors{color:%s;}", c.Gray700)
	fmt.Fprintf(&sb, ".shoe-card__sale-price{font-weight:%d;color:%s;}", wt.Medium, c.Primary)
	fmt.Fprintf(&sb, ".shoe-card__badge{position:absolute;top:%g%%;right:%g%%;padding:%dpx %dpx;border-radius:%dpx;color:%s;font-weight:%d;}",
		b.TopPercent, b.RightPercent, b.PaddingY, b.PaddingX, b.Radius, c.White, wt.Bold)
	fmt.Fprintf(&sb, ".shoe-card__badge--%s{background-color:%s;}", card.OnSale, c.Primary)
	fmt.Fprintf(&sb, ".shoe-card__badge--%s{background-color:%s;}", card.NewRelease, c.Secondary)
	return template.CSS(sb.String())
}
