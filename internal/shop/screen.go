package shop

// Screen identifies which modal content is currently mounted. It drives
// which form re-validates when the buyer data changes and which view the
// UI renders over the gallery.
type Screen int

const (
	ScreenNone Screen = iota
	ScreenPreview
	ScreenBasket
	ScreenOrder
	ScreenContacts
	ScreenSuccess
)

func (s Screen) String() string {
	switch s {
	case ScreenPreview:
		return "preview"
	case ScreenBasket:
		return "basket"
	case ScreenOrder:
		return "order"
	case ScreenContacts:
		return "contacts"
	case ScreenSuccess:
		return "success"
	default:
		return "none"
	}
}
