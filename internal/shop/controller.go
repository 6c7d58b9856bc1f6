package shop

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Vladislav970/weblarek/internal/api"
	"github.com/Vladislav970/weblarek/internal/events"
	"github.com/Vladislav970/weblarek/internal/model"
)

// User-facing messages the controller owns.
const (
	catalogLoadFailedMessage = "Could not load the catalog. Try again later."
)

// Fields shown per form screen. Buyer changes re-validate only the fields
// of the screen that is actually open.
var (
	orderFields    = []string{"payment", "address"}
	contactsFields = []string{"email", "phone"}
)

// OrderGateway is what the controller needs from the API layer.
// Implemented by *api.Gateway; tests substitute a fake.
type OrderGateway interface {
	GetProductList(ctx context.Context) ([]model.Product, error)
	SubmitOrder(ctx context.Context, order api.OrderRequest) (api.OrderResult, error)
}

// Controller sequences the storefront flow. It is the only component that
// knows the whole application: it subscribes to intent events, mutates
// the models, and decides which screen is open. Views never talk to each
// other or to the models directly; they publish intents and pull state
// back out through the accessors.
type Controller struct {
	bus     *events.Bus
	catalog *model.Catalog
	cart    *model.Cart
	buyer   *model.Buyer
	gateway OrderGateway

	mu         sync.Mutex
	screen     Screen
	formErrors map[string]string
	submitErr  string
	submitting bool
	orderTotal decimal.Decimal
	catalogErr string
}

// NewController wires a controller to the bus. All intent subscriptions
// are registered here; the caller only ever publishes events and reads
// state back.
func NewController(bus *events.Bus, catalog *model.Catalog, cart *model.Cart, buyer *model.Buyer, gateway OrderGateway) *Controller {
	c := &Controller{
		bus:     bus,
		catalog: catalog,
		cart:    cart,
		buyer:   buyer,
		gateway: gateway,
	}

	bus.Subscribe(events.Exact(events.CardSelected), c.handleCardSelect)
	bus.Subscribe(events.Exact(events.PreviewToggled), c.handlePreviewToggle)
	bus.Subscribe(events.Exact(events.BasketOpened), c.handleBasketOpen)
	bus.Subscribe(events.Exact(events.BasketRemoved), c.handleBasketRemove)
	bus.Subscribe(events.Exact(events.OrderStarted), c.handleOrderStart)
	bus.Subscribe(events.Exact(events.OrderSubmitted), c.handleOrderSubmit)
	bus.Subscribe(events.Exact(events.ContactsSubmitted), c.handleContactsSubmit)
	bus.Subscribe(events.Exact(events.FormInput), c.handleFormInput)
	bus.Subscribe(events.Exact(events.BuyerChanged), c.handleBuyerChanged)
	bus.Subscribe(events.Exact(events.ModalClosed), c.handleModalClose)
	bus.Subscribe(events.Exact(events.SuccessClosed), c.handleModalClose)

	return c
}

// LoadCatalog fetches the product list and replaces the catalog. On
// failure the gallery is left as-is and a fallback message is recorded;
// the rest of the UI keeps working.
func (c *Controller) LoadCatalog(ctx context.Context) error {
	items, err := c.gateway.GetProductList(ctx)

	c.mu.Lock()
	if err != nil {
		c.catalogErr = catalogLoadFailedMessage
		c.mu.Unlock()
		return err
	}
	c.catalogErr = ""
	c.mu.Unlock()

	c.catalog.SetItems(items)
	return nil
}

// PlaceOrder performs the pending order submission. Callers invoke it
// from their own goroutine after ContactsSubmitted flipped Submitting;
// the synchronous handler chain never blocks on the network. On success
// the cart and buyer are cleared and the success screen shows the
// server-confirmed total; on failure the contacts screen stays open with
// the error message and nothing is cleared.
func (c *Controller) PlaceOrder(ctx context.Context) error {
	c.mu.Lock()
	if !c.submitting || c.screen != ScreenContacts {
		// A close that raced the submit command cancels the submission.
		c.submitting = false
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	data := c.buyer.Data()
	items := c.cart.Items()
	ids := make([]string, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}
	result, err := c.gateway.SubmitOrder(ctx, api.OrderRequest{
		Payment: data.Payment,
		Address: data.Address,
		Email:   data.Email,
		Phone:   data.Phone,
		Items:   ids,
		Total:   c.cart.TotalPrice(),
	})

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.submitErr = userMessage(err)
		c.mu.Unlock()
		return err
	}
	c.orderTotal = result.Total
	c.screen = ScreenSuccess
	c.submitErr = ""
	c.mu.Unlock()

	c.cart.Clear()
	c.buyer.Clear()
	return nil
}

// Intent handlers. None of them may call into a model while holding
// c.mu: model mutations publish change events whose handlers lock c.mu
// on the same goroutine.

func (c *Controller) handleCardSelect(payload any) {
	sel, ok := payload.(events.CardSelect)
	if !ok {
		return
	}
	product, found := c.catalog.ProductByID(sel.ID)
	if !found {
		return
	}
	c.catalog.Select(&product)

	c.mu.Lock()
	c.screen = ScreenPreview
	c.mu.Unlock()
}

func (c *Controller) handlePreviewToggle(any) {
	if product, ok := c.catalog.Selected(); ok {
		if c.cart.Contains(product.ID) {
			c.cart.Remove(product.ID)
		} else {
			// Priceless products are a silent no-op inside Add.
			_ = c.cart.Add(product)
		}
	}

	// The modal closes whether or not the toggle changed anything.
	c.mu.Lock()
	c.screen = ScreenNone
	c.mu.Unlock()
}

func (c *Controller) handleBasketOpen(any) {
	c.mu.Lock()
	c.screen = ScreenBasket
	c.mu.Unlock()
}

func (c *Controller) handleBasketRemove(payload any) {
	rm, ok := payload.(events.ItemRemove)
	if !ok {
		return
	}
	c.cart.Remove(rm.ID)
}

func (c *Controller) handleOrderStart(any) {
	if c.cart.TotalCount() == 0 {
		return
	}
	errs := filterFields(c.buyer.Validate(), orderFields)

	c.mu.Lock()
	c.screen = ScreenOrder
	c.formErrors = errs
	c.submitErr = ""
	c.mu.Unlock()
}

func (c *Controller) handleOrderSubmit(any) {
	errs := c.buyer.Validate()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen != ScreenOrder {
		return
	}
	if orderErrs := filterFields(errs, orderFields); len(orderErrs) > 0 {
		c.formErrors = orderErrs
		return
	}
	c.screen = ScreenContacts
	c.formErrors = filterFields(errs, contactsFields)
	c.submitErr = ""
}

func (c *Controller) handleContactsSubmit(any) {
	errs := filterFields(c.buyer.Validate(), contactsFields)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen != ScreenContacts || c.submitting {
		return
	}
	if len(errs) > 0 {
		c.formErrors = errs
		return
	}
	c.submitting = true
	c.submitErr = ""
}

func (c *Controller) handleFormInput(payload any) {
	field, ok := payload.(events.FormField)
	if !ok {
		return
	}

	var patch model.BuyerPatch
	switch field.Field {
	case "payment":
		method := model.PaymentMethod(field.Value)
		patch.Payment = &method
	case "address":
		patch.Address = &field.Value
	case "email":
		patch.Email = &field.Value
	case "phone":
		patch.Phone = &field.Value
	default:
		return
	}
	c.buyer.Apply(patch)
}

func (c *Controller) handleBuyerChanged(any) {
	errs := c.buyer.Validate()

	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.screen {
	case ScreenOrder:
		c.formErrors = filterFields(errs, orderFields)
	case ScreenContacts:
		c.formErrors = filterFields(errs, contactsFields)
	}
}

func (c *Controller) handleModalClose(any) {
	c.mu.Lock()
	c.screen = ScreenNone
	c.submitErr = ""
	c.submitting = false
	c.mu.Unlock()
}

// Accessors for views. All return copies; the controller's state is only
// ever mutated through event handlers and the two operations above.

// Screen returns the currently open modal screen.
func (c *Controller) Screen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// FormErrors returns the validation errors of the active form screen.
func (c *Controller) FormErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.formErrors))
	for k, v := range c.formErrors {
		out[k] = v
	}
	return out
}

// FormValid reports whether the active form has no validation errors.
func (c *Controller) FormValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.formErrors) == 0
}

// SubmitError returns the message of the last failed order submission,
// empty when there is none.
func (c *Controller) SubmitError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitErr
}

// Submitting reports whether an order submission is pending.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// OrderTotal returns the server-confirmed total of the last successful
// order, shown on the success screen.
func (c *Controller) OrderTotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orderTotal
}

// CatalogError returns the gallery fallback message after a failed
// catalog load, empty once a load succeeds.
func (c *Controller) CatalogError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalogErr
}

func filterFields(errs map[string]string, fields []string) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		if msg, ok := errs[f]; ok {
			out[f] = msg
		}
	}
	return out
}

// userMessage unwraps a gateway error to the message worth showing on the
// form: the API's own error string when there is one, the transport error
// otherwise.
func userMessage(err error) string {
	var serr *api.StatusError
	if errors.As(err, &serr) {
		return serr.Message
	}
	return err.Error()
}
