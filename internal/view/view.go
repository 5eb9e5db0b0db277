// Package view renders product records to HTML markup. It is pure string
// work: no I/O, no clock, no backend calls. The viewer's timezone comes in
// as a parameter so rendering stays deterministic under test.
package view

import (
	"fmt"
	"html"
	"pricewatch/internal/model"
	"strings"
	"time"
)

const (
	// Placeholders for absent optional fields.
	PlaceholderNoTarget  = "Not set"
	PlaceholderNoCurrent = "Not checked"
	PlaceholderNever     = "Never"
	PlaceholderBadDate   = "Invalid date"
)

const emptyState = `<div class="empty-state"><p>No products tracked yet. Add your first product above!</p></div>`

const lastCheckedFormat = "Jan 2, 2006, 3:04 PM MST"

// RenderProducts renders one item block per product, in input order.
// An empty slice renders the empty-state block instead of an empty container.
func RenderProducts(ps []model.Product, loc *time.Location) string {
	if len(ps) == 0 {
		return emptyState
	}
	var b strings.Builder
	for _, p := range ps {
		b.WriteString(renderProduct(p, loc))
	}
	return b.String()
}

func renderProduct(p model.Product, loc *time.Location) string {
	name := html.EscapeString(p.Name)
	url := html.EscapeString(p.URL)

	emailEnabled := p.EmailEnabled()
	toggleTitle := "Disable email notifications"
	checked := " checked"
	if !emailEnabled {
		toggleTitle = "Enable email notifications"
		checked = ""
	}

	return fmt.Sprintf(`<div class="product-item">
<div class="product-header">
<div class="product-header-left">
<div class="product-name-row">
<div class="product-name">%s</div>
<form class="toggle-form" action="/products/%d/toggle-email" method="post" title="%s">
<input type="checkbox"%s onchange="this.form.submit()">
<span class="toggle-label">Email Alerts</span>
</form>
</div>
<a href="%s" target="_blank" class="product-url">%s</a>
</div>
<form action="/products/%d/delete" method="post">
<button class="btn btn-danger btn-sm" type="submit">Delete</button>
</form>
</div>
<div class="product-info">
<div class="info-item"><span class="info-label">Current Price</span><span class="info-value price-current">%s</span></div>
<div class="info-item"><span class="info-label">Target Price</span><span class="info-value price-target">%s</span></div>
<div class="info-item"><span class="info-label">Last Checked</span><span class="info-value">%s</span></div>
</div>
<div class="product-actions">
<form action="/products/%d/check" method="post">
<button class="btn btn-primary btn-sm" type="submit">Check Price Now</button>
</form>
</div>
</div>
`,
		name, p.ID, toggleTitle, checked, url, url, p.ID,
		FormatPrice(p.CurrentPrice, PlaceholderNoCurrent),
		FormatPrice(p.TargetPrice, PlaceholderNoTarget),
		FormatLastChecked(p.LastChecked, loc),
		p.ID)
}

// FormatPrice renders a currency value with two fixed decimals, or the
// placeholder when the value is absent.
func FormatPrice(p *float64, placeholder string) string {
	if p == nil {
		return placeholder
	}
	return fmt.Sprintf("$%.2f", *p)
}

// FormatLastChecked renders a backend timestamp in the viewer's timezone.
// The backend emits timestamps in UTC but without a timezone marker, so a
// string carrying no offset and no trailing "Z" gets the "Z" appended before
// parsing. Anything unparsable renders the invalid-date placeholder.
func FormatLastChecked(raw *string, loc *time.Location) string {
	if raw == nil || *raw == "" {
		return PlaceholderNever
	}
	s := *raw
	if !hasTimezoneMarker(s) {
		s += "Z"
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return PlaceholderBadDate
	}
	return t.In(loc).Format(lastCheckedFormat)
}

// hasTimezoneMarker reports whether s carries its own timezone: a trailing
// "Z", a "+HH:MM" offset, or a "-HH:MM" offset. A "-" inside the first ten
// characters is part of the date, not an offset.
func hasTimezoneMarker(s string) bool {
	if strings.HasSuffix(s, "Z") || strings.Contains(s, "+") {
		return true
	}
	if len(s) > 10 && strings.Contains(s[10:], "-") {
		return true
	}
	return false
}
