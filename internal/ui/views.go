package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Vladislav970/weblarek/internal/model"
)

// renderOverlay centers a modal over the gallery-sized canvas.
func (m Model) renderOverlay(content string) string {
	s := m.theme.Styles()
	modal := s.Modal.MaxWidth(m.width - 2).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m Model) renderPreview() string {
	s := m.theme.Styles()

	p, ok := m.catalog.Selected()
	if !ok {
		return s.MutedText.Render("Nothing selected.")
	}

	width := clamp(m.width-12, 30, 64)

	var b strings.Builder
	b.WriteString(s.AccentText.Render(truncate(p.Title, width)))
	b.WriteString("\n")
	b.WriteString(s.MutedText.Render(truncate(p.Category, width)))
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render(wrap(p.Description, width)))
	b.WriteString("\n\n")
	b.WriteString(s.MutedText.Render(truncate(m.imageURL(p.Image), width)))
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render(formatPrice(p.Price)))
	b.WriteString("\n\n")

	switch {
	case !p.Purchasable():
		b.WriteString(s.MutedText.Render("Not for sale"))
	case m.cart.Contains(p.ID):
		b.WriteString(s.WarningText.Render("[enter] Remove from basket"))
	default:
		b.WriteString(s.SuccessText.Render("[enter] Buy"))
	}
	b.WriteString("\n")
	b.WriteString(s.MutedText.Render("[esc] Close"))

	return b.String()
}

func (m Model) renderBasket() string {
	s := m.theme.Styles()

	items := m.cart.Items()

	var b strings.Builder
	b.WriteString(s.AccentText.Render("Basket"))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(s.MutedText.Render("The basket is empty."))
		b.WriteString("\n\n")
		b.WriteString(s.MutedText.Render("[esc] Close"))
		return b.String()
	}

	width := clamp(m.width-16, 28, 56)
	for i, p := range items {
		row := fmt.Sprintf("%d. %s  %s",
			i+1,
			truncate(p.Title, width-18),
			formatPrice(p.Price),
		)
		if i == m.basketIndex {
			b.WriteString(s.Selected.Render(row))
		} else {
			b.WriteString(s.Text.Render(row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Text.Render("Total: " + formatTotal(m.cart.TotalPrice())))
	b.WriteString("\n\n")
	b.WriteString(s.SuccessText.Render("[enter] Checkout"))
	b.WriteString("  ")
	b.WriteString(s.MutedText.Render("[x] Remove  [esc] Close"))

	return b.String()
}

func (m Model) renderOrderForm() string {
	s := m.theme.Styles()
	data := m.buyer.Data()
	errs := m.ctrl.FormErrors()

	var b strings.Builder
	b.WriteString(s.AccentText.Render("Order (step 1 of 2)"))
	b.WriteString("\n\n")

	b.WriteString(m.renderPaymentRow(data.Payment))
	if msg, ok := errs["payment"]; ok {
		b.WriteString("\n")
		b.WriteString(s.DangerText.Render(msg))
	}
	b.WriteString("\n\n")

	label := s.MutedText.Render("Address")
	if m.orderFocus == 1 {
		label = s.AccentText.Render("Address")
	}
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(m.addressInput.View())
	if msg, ok := errs["address"]; ok {
		b.WriteString("\n")
		b.WriteString(s.DangerText.Render(msg))
	}
	b.WriteString("\n\n")

	if m.ctrl.FormValid() {
		b.WriteString(s.SuccessText.Render("[enter] Next"))
	} else {
		b.WriteString(s.MutedText.Render("[enter] Next"))
	}
	b.WriteString("  ")
	b.WriteString(s.MutedText.Render("[tab] Switch field  [esc] Close"))

	return b.String()
}

func (m Model) renderPaymentRow(current model.PaymentMethod) string {
	s := m.theme.Styles()

	label := s.MutedText.Render("Payment")
	if m.orderFocus == 0 {
		label = s.AccentText.Render("Payment")
	}

	card := s.Text.Render(" Card ")
	cash := s.Text.Render(" Cash ")
	switch current {
	case model.PaymentCard:
		card = s.Selected.Render(" Card ")
	case model.PaymentCash:
		cash = s.Selected.Render(" Cash ")
	}

	return label + "\n" + card + " " + cash + "  " +
		s.MutedText.Render("(1/2 or ←/→)")
}

func (m Model) renderContactsForm() string {
	s := m.theme.Styles()
	errs := m.ctrl.FormErrors()

	var b strings.Builder
	b.WriteString(s.AccentText.Render("Contacts (step 2 of 2)"))
	b.WriteString("\n\n")

	emailLabel := s.MutedText.Render("Email")
	phoneLabel := s.MutedText.Render("Phone")
	if m.contactsFocus == 0 {
		emailLabel = s.AccentText.Render("Email")
	} else {
		phoneLabel = s.AccentText.Render("Phone")
	}

	b.WriteString(emailLabel)
	b.WriteString("\n")
	b.WriteString(m.emailInput.View())
	if msg, ok := errs["email"]; ok {
		b.WriteString("\n")
		b.WriteString(s.DangerText.Render(msg))
	}
	b.WriteString("\n\n")

	b.WriteString(phoneLabel)
	b.WriteString("\n")
	b.WriteString(m.phoneInput.View())
	if msg, ok := errs["phone"]; ok {
		b.WriteString("\n")
		b.WriteString(s.DangerText.Render(msg))
	}
	b.WriteString("\n\n")

	if m.ctrl.Submitting() {
		b.WriteString(s.WarningText.Render("Placing order..."))
	} else if msg := m.ctrl.SubmitError(); msg != "" {
		b.WriteString(s.DangerText.Render(msg))
	}
	b.WriteString("\n")

	if m.ctrl.FormValid() {
		b.WriteString(s.SuccessText.Render("[enter] Pay"))
	} else {
		b.WriteString(s.MutedText.Render("[enter] Pay"))
	}
	b.WriteString("  ")
	b.WriteString(s.MutedText.Render("[tab] Switch field  [esc] Close"))

	return b.String()
}

func (m Model) renderSuccess() string {
	s := m.theme.Styles()

	var b strings.Builder
	b.WriteString(s.SuccessText.Render("Order placed"))
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render("Charged " + formatTotal(m.ctrl.OrderTotal())))
	b.WriteString("\n\n")
	b.WriteString(s.MutedText.Render("[enter] Back to shopping"))

	return b.String()
}

// wrap breaks a paragraph into lines no wider than width.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
