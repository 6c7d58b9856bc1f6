package model

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Vladislav970/weblarek/internal/events"
)

// PaymentMethod is the way the buyer pays for an order.
type PaymentMethod string

const (
	PaymentNone PaymentMethod = ""
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// BuyerData is the checkout form state, built incrementally across the
// order and contacts screens. Zero values mean "not entered yet";
// completeness is only checked by Validate, never enforced on write.
type BuyerData struct {
	Payment PaymentMethod `json:"payment" validate:"required,oneof=card cash"`
	Address string        `json:"address" validate:"notblank"`
	Email   string        `json:"email" validate:"notblank"`
	Phone   string        `json:"phone" validate:"notblank"`
}

// BuyerPatch is a partial update: only non-nil fields are applied, so
// setting the address never touches the payment method.
type BuyerPatch struct {
	Payment *PaymentMethod
	Address *string
	Email   *string
	Phone   *string
}

// Fixed user-facing messages for each invalid field.
var buyerFieldErrors = map[string]string{
	"payment": "Select a payment method",
	"address": "Enter a delivery address",
	"email":   "Enter your email",
	"phone":   "Enter your phone number",
}

var buyerValidate = newBuyerValidator()

func newBuyerValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Blank-after-trim counts as missing.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateBuyer checks data field by field and returns a mapping from
// field name to a fixed message for every invalid field. An empty map
// means the data is complete and valid.
func ValidateBuyer(data BuyerData) map[string]string {
	errs := map[string]string{}
	err := buyerValidate.Struct(data)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct-level failures cannot happen for BuyerData; treat any
		// other error as everything-missing.
		for field, msg := range buyerFieldErrors {
			errs[field] = msg
		}
		return errs
	}
	for _, fe := range verrs {
		if msg, known := buyerFieldErrors[fe.Field()]; known {
			errs[fe.Field()] = msg
		}
	}
	return errs
}

// Buyer owns the in-progress checkout form data.
type Buyer struct {
	mu     sync.Mutex
	events *events.Bus
	data   BuyerData
}

// NewBuyer creates an empty buyer model publishing change events on bus.
func NewBuyer(bus *events.Bus) *Buyer {
	return &Buyer{events: bus}
}

// Apply merges the patch into the current state and emits BuyerChanged.
func (b *Buyer) Apply(patch BuyerPatch) {
	b.mu.Lock()
	if patch.Payment != nil {
		b.data.Payment = *patch.Payment
	}
	if patch.Address != nil {
		b.data.Address = *patch.Address
	}
	if patch.Email != nil {
		b.data.Email = *patch.Email
	}
	if patch.Phone != nil {
		b.data.Phone = *patch.Phone
	}
	b.mu.Unlock()

	b.events.Publish(events.BuyerChanged, nil)
}

// Data returns a copy of the current form state.
func (b *Buyer) Data() BuyerData {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Validate reports the current validation errors, keyed by field name.
func (b *Buyer) Validate() map[string]string {
	return ValidateBuyer(b.Data())
}

// Clear resets the form to its initial empty state and emits BuyerChanged.
func (b *Buyer) Clear() {
	b.mu.Lock()
	b.data = BuyerData{}
	b.mu.Unlock()

	b.events.Publish(events.BuyerChanged, nil)
}
