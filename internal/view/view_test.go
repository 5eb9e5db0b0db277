package view

import (
	"pricewatch/internal/model"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }
func boolPtr(v bool) *bool   { return &v }

func TestRenderProducts_Empty(t *testing.T) {
	out := RenderProducts(nil, time.UTC)
	assert.Contains(t, out, "empty-state")
	assert.Contains(t, out, "No products tracked yet")
	assert.NotContains(t, out, "product-item")

	assert.Equal(t, out, RenderProducts([]model.Product{}, time.UTC))
}

func TestRenderProducts_OneBlockPerProductInOrder(t *testing.T) {
	ps := []model.Product{
		{ID: 1, Name: "First", URL: "https://a.example"},
		{ID: 2, Name: "Second", URL: "https://b.example"},
		{ID: 3, Name: "Third", URL: "https://c.example"},
	}
	out := RenderProducts(ps, time.UTC)

	assert.Equal(t, 3, strings.Count(out, `class="product-item"`))
	first := strings.Index(out, "First")
	second := strings.Index(out, "Second")
	third := strings.Index(out, "Third")
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
	assert.NotContains(t, out, "empty-state")
}

func TestRenderProducts_EscapesUserText(t *testing.T) {
	name := `<script>alert("pwned") & more`
	ps := []model.Product{{ID: 7, Name: name, URL: `https://x.example/?a=1&b="2"`}}
	out := RenderProducts(ps, time.UTC)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")

	// The parsed document must contain the original text and no script
	// element: escaping round-trips through an HTML parser.
	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)

	var texts []string
	var hasScript bool
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" {
			hasScript = true
		}
		if n.Type == html.TextNode {
			texts = append(texts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	assert.False(t, hasScript)
	assert.Contains(t, strings.Join(texts, ""), name)
}

func TestRenderProducts_ToggleState(t *testing.T) {
	tests := []struct {
		name    string
		enabled *bool
		checked bool
	}{
		{name: "absent defaults to enabled", enabled: nil, checked: true},
		{name: "explicitly enabled", enabled: boolPtr(true), checked: true},
		{name: "explicitly disabled", enabled: boolPtr(false), checked: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderProducts([]model.Product{{ID: 1, Name: "P", URL: "https://p.example", EmailNotificationsEnabled: tt.enabled}}, time.UTC)
			if tt.checked {
				assert.Contains(t, out, `<input type="checkbox" checked`)
				assert.Contains(t, out, "Disable email notifications")
			} else {
				assert.Contains(t, out, `<input type="checkbox" onchange`)
				assert.Contains(t, out, "Enable email notifications")
			}
		})
	}
}

func TestRenderProducts_ActionRoutes(t *testing.T) {
	out := RenderProducts([]model.Product{{ID: 42, Name: "P", URL: "https://p.example"}}, time.UTC)
	assert.Contains(t, out, `action="/products/42/delete"`)
	assert.Contains(t, out, `action="/products/42/check"`)
	assert.Contains(t, out, `action="/products/42/toggle-email"`)
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name        string
		price       *float64
		placeholder string
		want        string
	}{
		{name: "absent target", price: nil, placeholder: PlaceholderNoTarget, want: "Not set"},
		{name: "absent current", price: nil, placeholder: PlaceholderNoCurrent, want: "Not checked"},
		{name: "two decimals padded", price: f64(19.5), placeholder: PlaceholderNoTarget, want: "$19.50"},
		{name: "whole number", price: f64(100), placeholder: PlaceholderNoTarget, want: "$100.00"},
		{name: "rounds to cents", price: f64(3.456), placeholder: PlaceholderNoTarget, want: "$3.46"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.price, tt.placeholder))
		})
	}
}

func TestFormatLastChecked(t *testing.T) {
	// A fixed viewer timezone keeps the rendering deterministic.
	est := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name string
		raw  *string
		want string
	}{
		{name: "missing value", raw: nil, want: "Never"},
		{name: "empty value", raw: str(""), want: "Never"},
		{name: "unparsable", raw: str("not a date"), want: "Invalid date"},
		{name: "no timezone marker treated as UTC", raw: str("2024-01-15T10:00:00"), want: "Jan 15, 2024, 5:00 AM EST"},
		{name: "explicit UTC marker", raw: str("2024-01-15T10:00:00Z"), want: "Jan 15, 2024, 5:00 AM EST"},
		{name: "explicit positive offset", raw: str("2024-01-15T10:00:00+02:00"), want: "Jan 15, 2024, 3:00 AM EST"},
		{name: "explicit negative offset", raw: str("2024-01-15T10:00:00-03:00"), want: "Jan 15, 2024, 8:00 AM EST"},
		{name: "afternoon renders 12-hour clock", raw: str("2024-06-01T19:30:00"), want: "Jun 1, 2024, 2:30 PM EST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLastChecked(tt.raw, est))
		})
	}
}

func TestRenderProducts_FieldPlaceholders(t *testing.T) {
	out := RenderProducts([]model.Product{{ID: 1, Name: "Bare", URL: "https://b.example"}}, time.UTC)
	assert.Contains(t, out, "Not checked")
	assert.Contains(t, out, "Not set")
	assert.Contains(t, out, "Never")

	out = RenderProducts([]model.Product{{
		ID:           2,
		Name:         "Full",
		URL:          "https://f.example",
		TargetPrice:  f64(25),
		CurrentPrice: f64(19.5),
		LastChecked:  str("2024-01-15T10:00:00"),
	}}, time.UTC)
	assert.Contains(t, out, "$25.00")
	assert.Contains(t, out, "$19.50")
	assert.Contains(t, out, "Jan 15, 2024, 10:00 AM UTC")
}
