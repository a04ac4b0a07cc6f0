package web

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mswatii/shoecard/internal/card"
	"github.com/mswatii/shoecard/internal/models"
	"github.com/mswatii/shoecard/internal/theme"
)

var now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return now.Add(-time.Duration(n) * 24 * time.Hour)
}

func renderCard(t *testing.T, shoe models.Shoe) string {
	t.Helper()
	r, err := New(theme.Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Card(&buf, card.Build(shoe, now, theme.Default())))
	return buf.String()
}

func TestCardOnSale(t *testing.T) {
	sale := 110.0
	html := renderCard(t, models.Shoe{
		Slug: "tech-challenge-20", Name: "Tech Challenge 20", ImageSrc: "/static/images/tc.jpg",
		Price: 150, SalePrice: &sale, ReleaseDate: daysAgo(10), NumOfColors: 3,
	})

	assert.Contains(t, html, `href="/shoe/tech-challenge-20"`)
	assert.Contains(t, html, `src="/static/images/tc.jpg"`)
	assert.Contains(t, html, `<span class="shoe-card__price shoe-card__price--struck">$150</span>`)
	assert.Contains(t, html, `<span class="shoe-card__sale-price">$110</span>`)
	assert.Contains(t, html, `<span class="shoe-card__badge shoe-card__badge--on-sale">Sale</span>`)
	assert.Contains(t, html, "3 Colors")
	assert.NotContains(t, html, "Just Released!")
}

func TestCardNewRelease(t *testing.T) {
	html := renderCard(t, models.Shoe{Slug: "pegasus", Name: "Pegasus", Price: 80, ReleaseDate: daysAgo(5), NumOfColors: 1})

	assert.Contains(t, html, `<span class="shoe-card__badge shoe-card__badge--new-release">Just Released!</span>`)
	assert.Contains(t, html, `<span class="shoe-card__price">$80</span>`)
	assert.NotContains(t, html, "shoe-card__price--struck")
	assert.NotContains(t, html, "shoe-card__sale-price")
	assert.Contains(t, html, "1 Color<")
}

func TestCardDefaultHasNoBadge(t *testing.T) {
	html := renderCard(t, models.Shoe{Slug: "classic", Name: "Classic", Price: 80, ReleaseDate: daysAgo(400)})

	assert.NotContains(t, html, "shoe-card__badge")
	assert.NotContains(t, html, "shoe-card__price--struck")
}

func TestCardZeroSalePrice(t *testing.T) {
	zero := 0.0
	html := renderCard(t, models.Shoe{Slug: "free", Name: "Free", Price: 80, SalePrice: &zero, ReleaseDate: daysAgo(400)})

	assert.Contains(t, html, "shoe-card__badge--on-sale")
	assert.Contains(t, html, "shoe-card__price--struck")
	assert.NotContains(t, html, "shoe-card__sale-price")
}

func TestCardEscapesText(t *testing.T) {
	html := renderCard(t, models.Shoe{Slug: "x", Name: `<script>alert("hi")</script>`, ImageSrc: "javascript:alert(1)"})

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "javascript:")
}

func TestPage(t *testing.T) {
	r, err := New(theme.Default())
	require.NoError(t, err)

	cards := card.BuildAll([]models.Shoe{
		{Slug: "a", Name: "A", ReleaseDate: daysAgo(3)},
		{Slug: "b", Name: "B", ReleaseDate: daysAgo(300)},
	}, now, theme.Default())

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, "Sole & Ankle", cards))
	html := buf.String()

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Sole &amp; Ankle</title>")
	assert.Contains(t, html, ".shoe-card__badge--new-release{background-color:#6868D9;}")
	assert.Equal(t, 2, strings.Count(html, `<a class="shoe-card"`))
}

func TestPageEmpty(t *testing.T) {
	r, err := New(theme.Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, "Empty", nil))
	assert.Contains(t, buf.String(), "No shoes yet.")
}

func TestNewRejectsInvalidTheme(t *testing.T) {
	th := theme.Default()
	th.Colors.Primary = "red;}body{display:none"
	_, err := New(th)
	assert.Error(t, err)
}

func TestStylesheetUsesTheme(t *testing.T) {
	th := theme.Default()
	th.Colors.Primary = "#123456"
	th.Badge.Radius = 7

	css := string(Stylesheet(th))
	assert.Contains(t, css, ".shoe-card__badge--on-sale{background-color:#123456;}")
	assert.Contains(t, css, "border-radius:7px")
	assert.Contains(t, css, "top:5%;right:-1%;")
}
