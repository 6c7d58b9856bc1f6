package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vladislav970/weblarek/internal/config"
	"github.com/Vladislav970/weblarek/internal/events"
	"github.com/Vladislav970/weblarek/internal/shop"
)

// handleKey routes keys to the active screen. Only the screens without a
// focused text field honor the global shortcuts, so typing an address
// containing "q" never quits the program.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.ctrl.Screen() {
	case shop.ScreenPreview:
		return m.handlePreviewKey(msg)
	case shop.ScreenBasket:
		return m.handleBasketKey(msg)
	case shop.ScreenOrder:
		return m.handleOrderKey(msg)
	case shop.ScreenContacts:
		return m.handleContactsKey(msg)
	case shop.ScreenSuccess:
		return m.handleSuccessKey(msg)
	default:
		return m.handleGalleryKey(msg)
	}
}

func (m Model) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.catalog.Items()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		_ = config.SavePrefs(m.prefsPath, config.Prefs{Theme: m.theme.Name})
		return m, nil

	case "r":
		return m, m.loadCatalogCmd()

	case "b":
		m.basketIndex = 0
		m.bus.Publish(events.BasketOpened, nil)
		return m, nil

	case "j", "down", "l", "right":
		m.galleryIndex = clamp(m.galleryIndex+1, 0, len(items)-1)
		return m, nil

	case "k", "up", "h", "left":
		m.galleryIndex = clamp(m.galleryIndex-1, 0, len(items)-1)
		return m, nil

	case "g", "home":
		m.galleryIndex = 0
		return m, nil

	case "G", "end":
		m.galleryIndex = clamp(len(items)-1, 0, len(items)-1)
		return m, nil

	case "enter":
		if m.galleryIndex >= 0 && m.galleryIndex < len(items) {
			m.bus.Publish(events.CardSelected, events.CardSelect{ID: items[m.galleryIndex].ID})
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		m.bus.Publish(events.PreviewToggled, nil)
	case "esc", "q":
		m.bus.Publish(events.ModalClosed, nil)
	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		_ = config.SavePrefs(m.prefsPath, config.Prefs{Theme: m.theme.Name})
	}
	return m, nil
}

func (m Model) handleBasketKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := m.cart.TotalCount()

	switch msg.String() {
	case "esc", "q":
		m.bus.Publish(events.ModalClosed, nil)
		return m, nil

	case "j", "down":
		m.basketIndex = clamp(m.basketIndex+1, 0, count-1)
		return m, nil

	case "k", "up":
		m.basketIndex = clamp(m.basketIndex-1, 0, count-1)
		return m, nil

	case "x", "d", "backspace":
		items := m.cart.Items()
		if m.basketIndex >= 0 && m.basketIndex < len(items) {
			m.bus.Publish(events.BasketRemoved, events.ItemRemove{ID: items[m.basketIndex].ID})
			m.basketIndex = clamp(m.basketIndex, 0, m.cart.TotalCount()-1)
		}
		return m, nil

	case "enter", "o":
		m.bus.Publish(events.OrderStarted, nil)
		if m.ctrl.Screen() == shop.ScreenOrder {
			return m.enterOrderForm()
		}
		return m, nil
	}

	return m, nil
}

// enterOrderForm primes the order form from the current buyer data.
func (m Model) enterOrderForm() (Model, tea.Cmd) {
	m.orderFocus = 0
	m.addressInput.SetValue(m.buyer.Data().Address)
	m.addressInput.Blur()
	return m, nil
}

// enterContactsForm primes the contacts form from the current buyer data.
func (m Model) enterContactsForm() (Model, tea.Cmd) {
	data := m.buyer.Data()
	m.contactsFocus = 0
	m.emailInput.SetValue(data.Email)
	m.phoneInput.SetValue(data.Phone)
	m.phoneInput.Blur()
	return m, m.emailInput.Focus()
}

func (m Model) handleOrderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.addressInput.Blur()
		m.bus.Publish(events.ModalClosed, nil)
		return m, nil

	case "tab", "shift+tab", "up", "down":
		if m.orderFocus == 0 {
			m.orderFocus = 1
			return m, m.addressInput.Focus()
		}
		m.orderFocus = 0
		m.addressInput.Blur()
		return m, nil

	case "enter":
		m.bus.Publish(events.OrderSubmitted, nil)
		if m.ctrl.Screen() == shop.ScreenContacts {
			m.addressInput.Blur()
			return m.enterContactsForm()
		}
		return m, nil
	}

	if m.orderFocus == 0 {
		switch msg.String() {
		case "left", "h", "1":
			m.bus.Publish(events.FormInput, events.FormField{Form: "order", Field: "payment", Value: "card"})
		case "right", "l", "2":
			m.bus.Publish(events.FormInput, events.FormField{Form: "order", Field: "payment", Value: "cash"})
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.addressInput.Value()
	m.addressInput, cmd = m.addressInput.Update(msg)
	if m.addressInput.Value() != before {
		m.bus.Publish(events.FormInput, events.FormField{Form: "order", Field: "address", Value: m.addressInput.Value()})
	}
	return m, cmd
}

func (m Model) handleContactsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.emailInput.Blur()
		m.phoneInput.Blur()
		m.bus.Publish(events.ModalClosed, nil)
		return m, nil

	case "tab", "shift+tab", "up", "down":
		if m.contactsFocus == 0 {
			m.contactsFocus = 1
			m.emailInput.Blur()
			return m, m.phoneInput.Focus()
		}
		m.contactsFocus = 0
		m.phoneInput.Blur()
		return m, m.emailInput.Focus()

	case "enter":
		m.bus.Publish(events.ContactsSubmitted, nil)
		if m.ctrl.Submitting() {
			return m, m.placeOrderCmd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.contactsFocus == 0 {
		before := m.emailInput.Value()
		m.emailInput, cmd = m.emailInput.Update(msg)
		if m.emailInput.Value() != before {
			m.bus.Publish(events.FormInput, events.FormField{Form: "contacts", Field: "email", Value: m.emailInput.Value()})
		}
		return m, cmd
	}

	before := m.phoneInput.Value()
	m.phoneInput, cmd = m.phoneInput.Update(msg)
	if m.phoneInput.Value() != before {
		m.bus.Publish(events.FormInput, events.FormField{Form: "contacts", Field: "phone", Value: m.phoneInput.Value()})
	}
	return m, cmd
}

func (m Model) handleSuccessKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q", " ":
		m.bus.Publish(events.SuccessClosed, nil)
	}
	return m, nil
}
