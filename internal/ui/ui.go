package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vladislav970/weblarek/internal/config"
	"github.com/Vladislav970/weblarek/internal/events"
	"github.com/Vladislav970/weblarek/internal/model"
	"github.com/Vladislav970/weblarek/internal/shop"
)

// Options configure the storefront UI.
type Options struct {
	Context    context.Context
	Bus        *events.Bus
	Controller *shop.Controller
	Catalog    *model.Catalog
	Cart       *model.Cart
	Buyer      *model.Buyer
	Config     config.Config
	ThemeName  string
	PrefsPath  string
}

// Model is the root Bubble Tea state. It never mutates the domain models
// directly: key handling publishes intent events, the controller reacts,
// and View pulls the resulting state back out on the next render.
type Model struct {
	ctx       context.Context
	bus       *events.Bus
	ctrl      *shop.Controller
	catalog   *model.Catalog
	cart      *model.Cart
	buyer     *model.Buyer
	cfg       config.Config
	prefsPath string

	theme  Theme
	width  int
	height int
	ready  bool

	galleryIndex int
	basketIndex  int

	orderFocus    int // 0 = payment row, 1 = address field
	addressInput  textinput.Model
	contactsFocus int // 0 = email, 1 = phone
	emailInput    textinput.Model
	phoneInput    textinput.Model
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = config.DefaultPrefsPath()
	}

	address := textinput.New()
	address.Placeholder = "Delivery address"
	address.CharLimit = 120

	email := textinput.New()
	email.Placeholder = "name@example.com"
	email.CharLimit = 80

	phone := textinput.New()
	phone.Placeholder = "+1 555 000 0000"
	phone.CharLimit = 24

	return Model{
		ctx:          ctx,
		bus:          opts.Bus,
		ctrl:         opts.Controller,
		catalog:      opts.Catalog,
		cart:         opts.Cart,
		buyer:        opts.Buyer,
		cfg:          opts.Config,
		prefsPath:    prefsPath,
		theme:        GetTheme(opts.ThemeName),
		addressInput: address,
		emailInput:   email,
		phoneInput:   phone,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.loadCatalogCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case catalogLoadedMsg:
		m.galleryIndex = clamp(m.galleryIndex, 0, len(m.catalog.Items())-1)
		return m, nil

	case orderPlacedMsg:
		return m, nil
	}

	return m, nil
}

// View implements tea.Model. The gallery is the base page; any open
// screen renders as a centered modal that replaces it, the same way the
// browser original covers the page with an overlay.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.ctrl.Screen() {
	case shop.ScreenPreview:
		return m.renderOverlay(m.renderPreview())
	case shop.ScreenBasket:
		return m.renderOverlay(m.renderBasket())
	case shop.ScreenOrder:
		return m.renderOverlay(m.renderOrderForm())
	case shop.ScreenContacts:
		return m.renderOverlay(m.renderContactsForm())
	case shop.ScreenSuccess:
		return m.renderOverlay(m.renderSuccess())
	default:
		return m.renderGallery()
	}
}

// Messages

// Both outcomes, good or bad, already live in controller state by the
// time these arrive; they only prompt the next render.
type catalogLoadedMsg struct{}

type orderPlacedMsg struct{}

// Commands

func (m Model) loadCatalogCmd() tea.Cmd {
	ctrl := m.ctrl
	ctx := m.ctx
	return func() tea.Msg {
		_ = ctrl.LoadCatalog(ctx)
		return catalogLoadedMsg{}
	}
}

func (m Model) placeOrderCmd() tea.Cmd {
	ctrl := m.ctrl
	ctx := m.ctx
	return func() tea.Msg {
		_ = ctrl.PlaceOrder(ctx)
		return orderPlacedMsg{}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
