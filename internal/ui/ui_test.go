package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/Vladislav970/weblarek/internal/api"
	"github.com/Vladislav970/weblarek/internal/config"
	"github.com/Vladislav970/weblarek/internal/events"
	"github.com/Vladislav970/weblarek/internal/model"
	"github.com/Vladislav970/weblarek/internal/shop"
)

type fakeGateway struct {
	products []model.Product
	submits  int
}

func (f *fakeGateway) GetProductList(context.Context) ([]model.Product, error) {
	return f.products, nil
}

func (f *fakeGateway) SubmitOrder(_ context.Context, order api.OrderRequest) (api.OrderResult, error) {
	f.submits++
	return api.OrderResult{ID: "order-1", Total: order.Total}, nil
}

type fixture struct {
	model   Model
	bus     *events.Bus
	ctrl    *shop.Controller
	cart    *model.Cart
	gateway *fakeGateway
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	hundred := decimal.NewFromInt(100)
	gateway := &fakeGateway{products: []model.Product{
		{ID: "p1", Title: "Фреймворк куки судьбы", Category: "другое", Price: &hundred},
		{ID: "p2", Title: "Бесконечный прототип", Category: "другое", Price: nil},
	}}

	bus := events.NewBus()
	catalog := model.NewCatalog(bus)
	cart := model.NewCart(bus)
	buyer := model.NewBuyer(bus)
	ctrl := shop.NewController(bus, catalog, cart, buyer, gateway)

	if err := ctrl.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	m := New(Options{
		Bus:        bus,
		Controller: ctrl,
		Catalog:    catalog,
		Cart:       cart,
		Buyer:      buyer,
		Config:     config.Config{},
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	return &fixture{model: m, bus: bus, ctrl: ctrl, cart: cart, gateway: gateway}
}

func (f *fixture) press(t *testing.T, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	updated, cmd := f.model.Update(msg)
	f.model = updated.(Model)
	return cmd
}

func (f *fixture) typeText(t *testing.T, s string) {
	t.Helper()
	for _, r := range s {
		f.press(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func esc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }
func tab() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyTab} }
func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGalleryToPreviewAndBack(t *testing.T) {
	f := newFixture(t)

	f.press(t, enter())
	if got := f.ctrl.Screen(); got != shop.ScreenPreview {
		t.Fatalf("screen = %v, want %v", got, shop.ScreenPreview)
	}

	f.press(t, enter()) // toggle adds and closes
	if got := f.ctrl.Screen(); got != shop.ScreenNone {
		t.Fatalf("screen after toggle = %v, want %v", got, shop.ScreenNone)
	}
	if !f.cart.Contains("p1") {
		t.Error("p1 not in cart after preview toggle")
	}
}

func TestCheckoutFlowEndToEnd(t *testing.T) {
	f := newFixture(t)

	// Add the first product through its preview.
	f.press(t, enter())
	f.press(t, enter())

	// Open the basket and start the order.
	f.press(t, key("b"))
	if got := f.ctrl.Screen(); got != shop.ScreenBasket {
		t.Fatalf("screen = %v, want %v", got, shop.ScreenBasket)
	}
	f.press(t, enter())
	if got := f.ctrl.Screen(); got != shop.ScreenOrder {
		t.Fatalf("screen = %v, want %v", got, shop.ScreenOrder)
	}

	// Step 1: pick a payment, type an address.
	f.press(t, key("1"))
	f.press(t, tab())
	f.typeText(t, "Spb Vosstania 1")
	f.press(t, enter())
	if got := f.ctrl.Screen(); got != shop.ScreenContacts {
		t.Fatalf("screen = %v, want %v", got, shop.ScreenContacts)
	}

	// Step 2: contacts, then pay. The submit runs through the returned
	// command, the way the Bubble Tea runtime would execute it.
	f.typeText(t, "test@test.ru")
	f.press(t, tab())
	f.typeText(t, "+71234567890")
	cmd := f.press(t, enter())
	if cmd == nil {
		t.Fatal("enter on valid contacts returned no command")
	}
	updated, _ := f.model.Update(cmd())
	f.model = updated.(Model)

	if got := f.ctrl.Screen(); got != shop.ScreenSuccess {
		t.Fatalf("screen = %v, want %v", got, shop.ScreenSuccess)
	}
	if f.gateway.submits != 1 {
		t.Errorf("submits = %d, want 1", f.gateway.submits)
	}
	if f.cart.TotalCount() != 0 {
		t.Errorf("cart count after order = %d, want 0", f.cart.TotalCount())
	}
	if !strings.Contains(f.model.View(), "100 synapses") {
		t.Error("success view does not show the confirmed total")
	}

	f.press(t, enter())
	if got := f.ctrl.Screen(); got != shop.ScreenNone {
		t.Fatalf("screen after success close = %v, want %v", got, shop.ScreenNone)
	}
}

func TestOrderSubmitBlockedWhileInvalid(t *testing.T) {
	f := newFixture(t)

	f.press(t, enter())
	f.press(t, enter())
	f.press(t, key("b"))
	f.press(t, enter())

	// No payment, no address: enter must stay on the order form.
	f.press(t, enter())
	if got := f.ctrl.Screen(); got != shop.ScreenOrder {
		t.Fatalf("screen = %v, want %v", got, shop.ScreenOrder)
	}
	if f.ctrl.FormValid() {
		t.Error("form reported valid with every field blank")
	}
	if !strings.Contains(f.model.View(), "Select a payment method") {
		t.Error("order view does not show the payment error")
	}
}

func TestEscClosesModalAndKeepsCart(t *testing.T) {
	f := newFixture(t)

	f.press(t, enter())
	f.press(t, enter())
	f.press(t, key("b"))
	f.press(t, esc())

	if got := f.ctrl.Screen(); got != shop.ScreenNone {
		t.Fatalf("screen = %v, want %v", got, shop.ScreenNone)
	}
	if f.cart.TotalCount() != 1 {
		t.Errorf("cart count = %d, want 1", f.cart.TotalCount())
	}
}

func TestPricelessProductHasNoAddAction(t *testing.T) {
	f := newFixture(t)

	f.press(t, key("j")) // move to the priceless product
	f.press(t, enter())
	if got := f.ctrl.Screen(); got != shop.ScreenPreview {
		t.Fatalf("screen = %v, want %v", got, shop.ScreenPreview)
	}

	if !strings.Contains(f.model.View(), "Priceless") {
		t.Error("preview does not render the priceless price")
	}

	f.press(t, enter()) // toggle must not add it
	if f.cart.TotalCount() != 0 {
		t.Errorf("cart count = %d, want 0", f.cart.TotalCount())
	}
}
