package events

// Event names form a closed set. Each name maps to exactly one payload
// shape; publishers and subscribers agree on the pairing below.
//
//	CatalogChanged   (nil)          catalog replaced wholesale
//	ProductSelected  (nil)          preview selection changed or cleared
//	CartChanged      (nil)          item added/removed or cart cleared
//	BuyerChanged     (nil)          checkout form data mutated
//	CardSelected     CardSelect     catalog card activated
//	PreviewToggled   (nil)          buy/remove pressed on the preview
//	BasketOpened     (nil)          header basket button pressed
//	BasketRemoved    ItemRemove     delete pressed on a basket line
//	OrderStarted     (nil)          checkout begun from the basket
//	OrderSubmitted   (nil)          order form (payment+address) submitted
//	ContactsSubmitted (nil)         contacts form (email+phone) submitted
//	FormInput        FormField      a single form field changed
//	ModalClosed      (nil)          modal dismissed
//	SuccessClosed    (nil)          success screen acknowledged
//	APIError         Failure       a gateway call failed
const (
	CatalogChanged  = "catalog:changed"
	ProductSelected = "product:selected"
	CartChanged     = "cart:changed"
	BuyerChanged    = "buyer:changed"

	CardSelected      = "card:select"
	PreviewToggled    = "preview:toggle"
	BasketOpened      = "basket:open"
	BasketRemoved     = "basket:remove"
	OrderStarted      = "order:start"
	OrderSubmitted    = "order:submit"
	ContactsSubmitted = "contacts:submit"
	FormInput         = "form:input"
	ModalClosed       = "modal:close"
	SuccessClosed     = "success:close"

	APIError = "api:error"
)

// Gateway stages reported with APIError.
const (
	StageProductList = "product-list"
	StageOrderSubmit = "order-submit"
)

// CardSelect identifies the catalog card the user activated.
type CardSelect struct {
	ID string
}

// ItemRemove identifies the basket line to delete.
type ItemRemove struct {
	ID string
}

// FormField carries a single field edit from a checkout form.
type FormField struct {
	Form  string // "order" or "contacts"
	Field string // "payment", "address", "email" or "phone"
	Value string
}

// Failure reports a failed gateway operation for telemetry subscribers.
// The direct caller still receives the error through the return value.
type Failure struct {
	Stage string
	Err   error
}
