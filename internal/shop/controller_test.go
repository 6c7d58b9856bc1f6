package shop

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Vladislav970/weblarek/internal/api"
	"github.com/Vladislav970/weblarek/internal/events"
	"github.com/Vladislav970/weblarek/internal/model"
)

type fakeGateway struct {
	products  []model.Product
	listErr   error
	result    api.OrderResult
	submitErr error
	gotOrder  api.OrderRequest
	submits   int
}

func (f *fakeGateway) GetProductList(context.Context) ([]model.Product, error) {
	return f.products, f.listErr
}

func (f *fakeGateway) SubmitOrder(_ context.Context, order api.OrderRequest) (api.OrderResult, error) {
	f.submits++
	f.gotOrder = order
	if f.submitErr != nil {
		return api.OrderResult{}, f.submitErr
	}
	return f.result, nil
}

type fixture struct {
	bus     *events.Bus
	catalog *model.Catalog
	cart    *model.Cart
	buyer   *model.Buyer
	gateway *fakeGateway
	ctrl    *Controller
}

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	bus := events.NewBus()
	catalog := model.NewCatalog(bus)
	cart := model.NewCart(bus)
	buyer := model.NewBuyer(bus)
	gateway := &fakeGateway{
		products: []model.Product{
			{ID: "a", Title: "Amplifier", Price: price(100)},
			{ID: "b", Title: "Trinket", Price: nil},
			{ID: "c", Title: "Polish", Price: price(750)},
		},
		result: api.OrderResult{ID: "ord-1", Total: decimal.NewFromInt(850)},
	}
	ctrl := NewController(bus, catalog, cart, buyer, gateway)

	if err := ctrl.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}
	return &fixture{bus: bus, catalog: catalog, cart: cart, buyer: buyer, gateway: gateway, ctrl: ctrl}
}

func (f *fixture) fillBuyer() {
	f.bus.Publish(events.FormInput, events.FormField{Form: "order", Field: "payment", Value: "card"})
	f.bus.Publish(events.FormInput, events.FormField{Form: "order", Field: "address", Value: "1 Synapse St"})
	f.bus.Publish(events.FormInput, events.FormField{Form: "contacts", Field: "email", Value: "a@b.c"})
	f.bus.Publish(events.FormInput, events.FormField{Form: "contacts", Field: "phone", Value: "+1000"})
}

func TestController_CardSelectOpensPreview(t *testing.T) {
	f := newFixture(t)

	f.bus.Publish(events.CardSelected, events.CardSelect{ID: "a"})

	if f.ctrl.Screen() != ScreenPreview {
		t.Fatalf("screen = %v, want preview", f.ctrl.Screen())
	}
	if sel, ok := f.catalog.Selected(); !ok || sel.ID != "a" {
		t.Fatalf("selection = %#v, %v; want product a", sel, ok)
	}
}

func TestController_CardSelectUnknownIDIsIgnored(t *testing.T) {
	f := newFixture(t)

	f.bus.Publish(events.CardSelected, events.CardSelect{ID: "ghost"})

	if f.ctrl.Screen() != ScreenNone {
		t.Fatalf("screen = %v, want none", f.ctrl.Screen())
	}
}

func TestController_PreviewToggleAddsAndCloses(t *testing.T) {
	f := newFixture(t)

	f.bus.Publish(events.CardSelected, events.CardSelect{ID: "a"})
	f.bus.Publish(events.PreviewToggled, nil)

	if f.ctrl.Screen() != ScreenNone {
		t.Fatalf("screen after toggle = %v, want none", f.ctrl.Screen())
	}
	if !f.cart.Contains("a") {
		t.Fatal("product a not in cart after toggle")
	}

	// Second toggle on the same product removes it; modal still closes.
	f.bus.Publish(events.CardSelected, events.CardSelect{ID: "a"})
	f.bus.Publish(events.PreviewToggled, nil)
	if f.cart.Contains("a") {
		t.Fatal("product a still in cart after second toggle")
	}
	if f.ctrl.Screen() != ScreenNone {
		t.Fatalf("screen = %v, want none", f.ctrl.Screen())
	}
}

func TestController_PreviewToggleOnPricelessClosesWithoutAdding(t *testing.T) {
	f := newFixture(t)

	f.bus.Publish(events.CardSelected, events.CardSelect{ID: "b"})
	f.bus.Publish(events.PreviewToggled, nil)

	if f.cart.TotalCount() != 0 {
		t.Fatalf("cart count = %d, want 0", f.cart.TotalCount())
	}
	if f.ctrl.Screen() != ScreenNone {
		t.Fatalf("screen = %v, want none", f.ctrl.Screen())
	}
}

func TestController_OrderStartRequiresNonEmptyCart(t *testing.T) {
	f := newFixture(t)

	f.bus.Publish(events.OrderStarted, nil)
	if f.ctrl.Screen() != ScreenNone {
		t.Fatalf("screen = %v, want none for empty cart", f.ctrl.Screen())
	}

	p, _ := f.catalog.ProductByID("a")
	_ = f.cart.Add(p)
	f.bus.Publish(events.BasketOpened, nil)
	f.bus.Publish(events.OrderStarted, nil)

	if f.ctrl.Screen() != ScreenOrder {
		t.Fatalf("screen = %v, want order", f.ctrl.Screen())
	}
	errs := f.ctrl.FormErrors()
	if errs["payment"] == "" || errs["address"] == "" {
		t.Fatalf("order errors = %v, want payment and address flagged", errs)
	}
	if _, ok := errs["email"]; ok {
		t.Fatalf("order errors = %v, must not contain contacts fields", errs)
	}
}

func TestController_BuyerChangeRevalidatesActiveFormOnly(t *testing.T) {
	f := newFixture(t)
	p, _ := f.catalog.ProductByID("a")
	_ = f.cart.Add(p)
	f.bus.Publish(events.OrderStarted, nil)

	f.bus.Publish(events.FormInput, events.FormField{Form: "order", Field: "payment", Value: "cash"})
	errs := f.ctrl.FormErrors()
	if _, ok := errs["payment"]; ok {
		t.Fatalf("errors = %v, payment should be valid now", errs)
	}
	if errs["address"] == "" {
		t.Fatalf("errors = %v, address still missing", errs)
	}

	f.bus.Publish(events.FormInput, events.FormField{Form: "order", Field: "address", Value: "1 Synapse St"})
	if !f.ctrl.FormValid() {
		t.Fatalf("order form invalid after filling: %v", f.ctrl.FormErrors())
	}
}

func TestController_OrderSubmitGatesOnOrderFields(t *testing.T) {
	f := newFixture(t)
	p, _ := f.catalog.ProductByID("a")
	_ = f.cart.Add(p)
	f.bus.Publish(events.OrderStarted, nil)

	// Invalid: stays on the order screen with errors.
	f.bus.Publish(events.OrderSubmitted, nil)
	if f.ctrl.Screen() != ScreenOrder {
		t.Fatalf("screen = %v, want order after invalid submit", f.ctrl.Screen())
	}

	f.bus.Publish(events.FormInput, events.FormField{Field: "payment", Value: "card"})
	f.bus.Publish(events.FormInput, events.FormField{Field: "address", Value: "1 Synapse St"})
	f.bus.Publish(events.OrderSubmitted, nil)

	if f.ctrl.Screen() != ScreenContacts {
		t.Fatalf("screen = %v, want contacts after valid submit", f.ctrl.Screen())
	}
	errs := f.ctrl.FormErrors()
	if errs["email"] == "" || errs["phone"] == "" {
		t.Fatalf("contacts errors = %v, want email and phone flagged", errs)
	}
}

func TestController_SuccessfulOrderClearsStateAndShowsServerTotal(t *testing.T) {
	f := newFixture(t)
	p, _ := f.catalog.ProductByID("a")
	_ = f.cart.Add(p)
	f.fillBuyer()
	f.bus.Publish(events.OrderStarted, nil)
	f.bus.Publish(events.OrderSubmitted, nil)

	// Server total deliberately differs from the local sum: the server
	// value is authoritative for display.
	f.gateway.result = api.OrderResult{ID: "ord-9", Total: decimal.NewFromInt(4242)}

	f.bus.Publish(events.ContactsSubmitted, nil)
	if !f.ctrl.Submitting() {
		t.Fatal("controller not submitting after valid contacts submit")
	}
	if err := f.ctrl.PlaceOrder(context.Background()); err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}

	if f.ctrl.Screen() != ScreenSuccess {
		t.Fatalf("screen = %v, want success", f.ctrl.Screen())
	}
	if !f.ctrl.OrderTotal().Equal(decimal.NewFromInt(4242)) {
		t.Fatalf("OrderTotal = %s, want server-confirmed 4242", f.ctrl.OrderTotal())
	}
	if f.cart.TotalCount() != 0 {
		t.Fatalf("cart count = %d after success, want 0", f.cart.TotalCount())
	}
	if f.buyer.Data() != (model.BuyerData{}) {
		t.Fatalf("buyer data = %#v after success, want cleared", f.buyer.Data())
	}
	if f.gateway.gotOrder.Items[0] != "a" || f.gateway.gotOrder.Payment != model.PaymentCard {
		t.Fatalf("submitted order = %#v, want item a paid by card", f.gateway.gotOrder)
	}

	f.bus.Publish(events.SuccessClosed, nil)
	if f.ctrl.Screen() != ScreenNone {
		t.Fatalf("screen = %v after success close, want none", f.ctrl.Screen())
	}
}

func TestController_FailedOrderKeepsStateAndShowsMessage(t *testing.T) {
	f := newFixture(t)
	p, _ := f.catalog.ProductByID("a")
	_ = f.cart.Add(p)
	f.fillBuyer()
	f.bus.Publish(events.OrderStarted, nil)
	f.bus.Publish(events.OrderSubmitted, nil)

	f.gateway.submitErr = &api.StatusError{Code: 503, Message: "Service Unavailable"}

	f.bus.Publish(events.ContactsSubmitted, nil)
	if err := f.ctrl.PlaceOrder(context.Background()); err == nil {
		t.Fatal("PlaceOrder = nil error, want failure")
	}

	if f.ctrl.Screen() != ScreenContacts {
		t.Fatalf("screen = %v, want contacts after failure", f.ctrl.Screen())
	}
	if got := f.ctrl.SubmitError(); got != "Service Unavailable" {
		t.Fatalf("SubmitError = %q, want Service Unavailable", got)
	}
	if f.ctrl.Submitting() {
		t.Fatal("still submitting after failure")
	}
	if f.cart.TotalCount() != 1 {
		t.Fatalf("cart count = %d after failure, want 1 (unchanged)", f.cart.TotalCount())
	}
	if f.buyer.Data().Email != "a@b.c" {
		t.Fatalf("buyer data = %#v after failure, want unchanged", f.buyer.Data())
	}

	// Retry succeeds.
	f.gateway.submitErr = nil
	f.bus.Publish(events.ContactsSubmitted, nil)
	if err := f.ctrl.PlaceOrder(context.Background()); err != nil {
		t.Fatalf("retry PlaceOrder returned error: %v", err)
	}
	if f.ctrl.Screen() != ScreenSuccess {
		t.Fatalf("screen = %v after retry, want success", f.ctrl.Screen())
	}
	if f.gateway.submits != 2 {
		t.Fatalf("submits = %d, want 2", f.gateway.submits)
	}
}

func TestController_PlaceOrderWithoutPendingSubmitIsNoop(t *testing.T) {
	f := newFixture(t)

	if err := f.ctrl.PlaceOrder(context.Background()); err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}
	if f.gateway.submits != 0 {
		t.Fatalf("submits = %d, want 0", f.gateway.submits)
	}
}

func TestController_ModalCloseCancelsPendingSubmit(t *testing.T) {
	f := newFixture(t)
	p, _ := f.catalog.ProductByID("a")
	_ = f.cart.Add(p)
	f.fillBuyer()
	f.bus.Publish(events.OrderStarted, nil)
	f.bus.Publish(events.OrderSubmitted, nil)
	f.bus.Publish(events.ContactsSubmitted, nil)

	// The close lands before the submit command got to run; the command
	// arriving late must find nothing pending.
	f.bus.Publish(events.ModalClosed, nil)
	if f.ctrl.Submitting() {
		t.Fatal("still submitting after modal close")
	}
	if err := f.ctrl.PlaceOrder(context.Background()); err != nil {
		t.Fatalf("late PlaceOrder returned error: %v", err)
	}
	if f.ctrl.Submitting() {
		t.Fatal("still submitting after late PlaceOrder")
	}
	if f.gateway.submits != 0 {
		t.Fatalf("submits = %d after cancelled checkout, want 0", f.gateway.submits)
	}

	// A later checkout with broken contacts must still be gated.
	f.bus.Publish(events.FormInput, events.FormField{Form: "contacts", Field: "email", Value: ""})
	f.bus.Publish(events.OrderStarted, nil)
	f.bus.Publish(events.OrderSubmitted, nil)
	f.bus.Publish(events.ContactsSubmitted, nil)

	if f.ctrl.Submitting() {
		t.Fatal("submitting with a blank email")
	}
	if err := f.ctrl.PlaceOrder(context.Background()); err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}
	if f.gateway.submits != 0 {
		t.Fatalf("submits = %d with invalid contacts, want 0", f.gateway.submits)
	}
	if _, ok := f.ctrl.FormErrors()["email"]; !ok {
		t.Fatalf("FormErrors = %v, want email error", f.ctrl.FormErrors())
	}
}

func TestController_LoadCatalogFailureSetsFallback(t *testing.T) {
	bus := events.NewBus()
	catalog := model.NewCatalog(bus)
	gateway := &fakeGateway{listErr: errors.New("connection refused")}
	ctrl := NewController(bus, catalog, model.NewCart(bus), model.NewBuyer(bus), gateway)

	if err := ctrl.LoadCatalog(context.Background()); err == nil {
		t.Fatal("LoadCatalog = nil error, want failure")
	}
	if msg := ctrl.CatalogError(); !strings.Contains(msg, "catalog") {
		t.Fatalf("CatalogError = %q, want fallback message", msg)
	}

	// A later successful load clears the fallback.
	gateway.listErr = nil
	gateway.products = []model.Product{{ID: "a", Price: price(1)}}
	if err := ctrl.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}
	if ctrl.CatalogError() != "" {
		t.Fatalf("CatalogError = %q after success, want empty", ctrl.CatalogError())
	}
	if len(catalog.Items()) != 1 {
		t.Fatalf("catalog has %d items, want 1", len(catalog.Items()))
	}
}

func TestController_ModalCloseFromFormScreens(t *testing.T) {
	f := newFixture(t)
	p, _ := f.catalog.ProductByID("c")
	_ = f.cart.Add(p)
	f.bus.Publish(events.OrderStarted, nil)

	f.bus.Publish(events.ModalClosed, nil)
	if f.ctrl.Screen() != ScreenNone {
		t.Fatalf("screen = %v after close, want none", f.ctrl.Screen())
	}

	// Buyer data persists across a dismissed checkout.
	f.bus.Publish(events.FormInput, events.FormField{Field: "address", Value: "kept"})
	f.bus.Publish(events.OrderStarted, nil)
	if f.buyer.Data().Address != "kept" {
		t.Fatalf("address = %q, want kept", f.buyer.Data().Address)
	}
}

func TestController_BasketRemoveUpdatesCart(t *testing.T) {
	f := newFixture(t)
	pa, _ := f.catalog.ProductByID("a")
	pc, _ := f.catalog.ProductByID("c")
	_ = f.cart.Add(pa)
	_ = f.cart.Add(pc)
	f.bus.Publish(events.BasketOpened, nil)

	f.bus.Publish(events.BasketRemoved, events.ItemRemove{ID: "a"})

	if f.cart.Contains("a") {
		t.Fatal("product a still in cart after basket remove")
	}
	if f.ctrl.Screen() != ScreenBasket {
		t.Fatalf("screen = %v, want basket (stays open)", f.ctrl.Screen())
	}
	if !f.cart.TotalPrice().Equal(decimal.NewFromInt(750)) {
		t.Fatalf("total = %s, want 750", f.cart.TotalPrice())
	}
}
