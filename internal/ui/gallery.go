package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderGallery draws the base page: a header with the basket counter,
// the product cards, and the key hints.
func (m Model) renderGallery() string {
	s := m.theme.Styles()

	header := m.renderHeader()
	footer := m.renderFooter("j/k move · enter view · b basket · r reload · T theme · q quit")

	items := m.catalog.Items()

	var body string
	switch {
	case m.ctrl.CatalogError() != "":
		body = s.DangerText.Render(m.ctrl.CatalogError()) + "\n" +
			s.MutedText.Render("Press r to retry.")
	case len(items) == 0:
		body = s.MutedText.Render("The shelves are empty.")
	default:
		cardWidth := clamp(m.width-8, 24, 72)
		cards := make([]string, 0, len(items))
		for i, p := range items {
			style := s.Card
			title := s.Text.Render(truncate(p.Title, cardWidth-4))
			if i == m.galleryIndex {
				style = s.CardFocus
				title = s.AccentText.Render(truncate(p.Title, cardWidth-4))
			}
			line := fmt.Sprintf("%s\n%s  %s",
				title,
				s.MutedText.Render(truncate(p.Category, 24)),
				s.Text.Render(formatPrice(p.Price)),
			)
			if m.cart.Contains(p.ID) {
				line += "  " + s.SuccessText.Render("in basket")
			}
			cards = append(cards, style.Width(cardWidth).Render(line))
		}
		body = m.viewport(strings.Join(cards, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	s := m.theme.Styles()

	logo := s.Logo.Render("Web Larёk")
	basket := fmt.Sprintf("Basket: %d", m.cart.TotalCount())

	gap := m.width - lipgloss.Width(logo) - len(basket) - 4
	if gap < 1 {
		gap = 1
	}
	return s.Header.Width(m.width).Render(
		logo + strings.Repeat(" ", gap) + s.Text.Render(basket),
	)
}

func (m Model) renderFooter(hints string) string {
	return m.theme.Styles().Footer.Width(m.width).Render(hints)
}

// viewport keeps the focused card visible when the list is taller than
// the window.
func (m Model) viewport(content string) string {
	lines := strings.Split(content, "\n")
	avail := m.height - 3
	if avail <= 0 || len(lines) <= avail {
		return content
	}

	// Each card is four lines tall (border, two content rows, border).
	const cardHeight = 4
	top := m.galleryIndex*cardHeight - avail/2
	top = clamp(top, 0, len(lines)-avail)
	return strings.Join(lines[top:top+avail], "\n")
}
