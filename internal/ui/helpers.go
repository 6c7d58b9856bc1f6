package ui

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatPrice renders a product price for display. Items the shop does
// not sell carry a nil price and show up as priceless.
func formatPrice(p *decimal.Decimal) string {
	if p == nil {
		return "Priceless"
	}
	return p.String() + " synapses"
}

func formatTotal(total decimal.Decimal) string {
	return total.String() + " synapses"
}

func clamp(v, low, high int) int {
	if high < low {
		return low
	}
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// truncate shortens s to at most width runes, appending an ellipsis when
// anything was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return strings.TrimRight(string(runes[:width-1]), " ") + "…"
}

// imageURL resolves a catalog image path against the CDN origin.
func (m Model) imageURL(path string) string {
	base := strings.TrimRight(m.cfg.CDNBaseURL(), "/")
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
