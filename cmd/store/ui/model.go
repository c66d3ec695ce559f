package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	cartapp "github.com/dwikikusuma/tamrin-store/internal/cart/app"
	cartdomain "github.com/dwikikusuma/tamrin-store/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/tamrin-store/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/tamrin-store/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/tamrin-store/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/tamrin-store/internal/checkout/domain"
)

// Fixed user-facing messages.
const (
	msgLoading       = "Loading products..."
	msgLoadError     = "Error loading products. Please check your connection."
	msgNoProducts    = "No products found."
	msgEmptyCart     = "Your cart is empty."
	msgEmptyCheckout = "Your cart is empty. Please add items before checking out."
)

type drawerState int

const (
	drawerClosed drawerState = iota
	drawerOpen
)

type catalogMsg struct {
	catalog catalogdomain.Catalog
	err     error
}

type Model struct {
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	checkout *checkoutapp.Service

	currencySymbol string

	loading bool
	loadErr bool
	spinner spinner.Model

	products   []catalogdomain.Product
	categories []string

	sortKey     catalogdomain.SortKey
	categoryIdx int // 0 means no category filter
	view        []catalogdomain.Product
	selected    int

	drawer    drawerState
	drawerSel int
	cartSnap  cartdomain.Snapshot

	receipt *checkoutdomain.Receipt
	status  string
	warning bool

	width  int
	height int
}

func New(catalog *catalogapp.Service, cart *cartapp.Service, checkout *checkoutapp.Service, currencySymbol string) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		catalog:        catalog,
		cart:           cart,
		checkout:       checkout,
		currencySymbol: currencySymbol,
		loading:        true,
		spinner:        sp,
		cartSnap:       cart.Snapshot(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCatalog())
}

// loadCatalog fetches in the background. There is no in-flight guard; with
// repeated reloads the last completed fetch wins.
func (m Model) loadCatalog() tea.Cmd {
	svc := m.catalog
	return func() tea.Msg {
		catalog, err := svc.Load(context.Background())
		return catalogMsg{catalog: catalog, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case catalogMsg:
		m.loading = false
		m.loadErr = msg.err != nil
		if msg.err == nil {
			m.products = msg.catalog.Products
			m.categories = msg.catalog.Categories
			m.refreshView()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.warning = false

	// The confirmation dialog swallows everything but quit.
	if m.receipt != nil {
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		default:
			m.receipt = nil
			return m, nil
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "r":
		m.loading = true
		m.loadErr = false
		return m, tea.Batch(m.spinner.Tick, m.loadCatalog())

	case "s":
		m.sortKey = nextSortKey(m.sortKey)
		m.refreshView()
		return m, nil

	case "f":
		m.categoryIdx = (m.categoryIdx + 1) % (len(m.categories) + 1)
		m.refreshView()
		return m, nil

	case "c":
		if m.drawer == drawerOpen {
			m.drawer = drawerClosed
		} else {
			m.drawer = drawerOpen
		}
		return m, nil

	case "esc":
		m.drawer = drawerClosed
		return m, nil

	case "o":
		return m.placeOrder()
	}

	if m.drawer == drawerOpen {
		switch msg.String() {
		case "up", "k":
			if m.drawerSel > 0 {
				m.drawerSel--
			}
			return m, nil
		case "down", "j":
			if m.drawerSel < len(m.cartSnap.Items)-1 {
				m.drawerSel++
			}
			return m, nil
		case "d", "x":
			return m.removeSelected()
		}
	}

	switch msg.String() {
	case "left", "h":
		if m.selected > 0 {
			m.selected--
		}
	case "right", "l":
		if m.selected < len(m.view)-1 {
			m.selected++
		}
	case "enter", "a":
		return m.addSelected()
	}

	return m, nil
}

func (m Model) addSelected() (tea.Model, tea.Cmd) {
	if m.selected < 0 || m.selected >= len(m.view) {
		return m, nil
	}
	p := m.view[m.selected]

	event, err := m.cart.Add(cartdomain.ProductSnapshot{
		ID:    p.ID,
		Title: p.Title,
		Price: p.Price,
		Image: p.Image,
	})
	m.applyCartEvent(event)
	m.status = "Added!"
	if err != nil {
		m.status = "Added (not saved to disk)"
	}
	return m, nil
}

func (m Model) removeSelected() (tea.Model, tea.Cmd) {
	if m.drawerSel < 0 || m.drawerSel >= len(m.cartSnap.Items) {
		return m, nil
	}
	id := m.cartSnap.Items[m.drawerSel].ProductID

	event, _ := m.cart.Remove(id)
	m.applyCartEvent(event)
	return m, nil
}

func (m Model) placeOrder() (tea.Model, tea.Cmd) {
	receipt, err := m.checkout.PlaceOrder()
	if err != nil {
		if errors.Is(err, checkoutapp.ErrEmptyCart) {
			m.status = msgEmptyCheckout
			m.warning = true
			m.drawer = drawerClosed
			return m, nil
		}
		m.status = err.Error()
		m.warning = true
		return m, nil
	}

	m.receipt = &receipt
	m.drawer = drawerClosed
	return m, nil
}

// applyCartEvent folds a cart mutation into the view. Drawer policy lives
// here: an add opens the drawer, removing the last item closes it.
func (m *Model) applyCartEvent(event cartdomain.Event) {
	m.cartSnap = event.Cart

	switch event.Kind {
	case cartdomain.EventItemAdded:
		m.drawer = drawerOpen
	case cartdomain.EventItemRemoved:
		if event.Cart.Empty {
			m.drawer = drawerClosed
		}
	}

	if m.drawerSel >= len(m.cartSnap.Items) {
		m.drawerSel = len(m.cartSnap.Items) - 1
	}
	if m.drawerSel < 0 {
		m.drawerSel = 0
	}
}

// refreshView recomputes the derived product ordering from the loaded
// catalog; the catalog itself is never reordered.
func (m *Model) refreshView() {
	m.view = catalogdomain.Sort(
		catalogdomain.FilterByCategory(m.products, m.currentCategory()),
		m.sortKey,
	)
	if m.selected >= len(m.view) {
		m.selected = len(m.view) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) currentCategory() string {
	if m.categoryIdx <= 0 || m.categoryIdx > len(m.categories) {
		return ""
	}
	return m.categories[m.categoryIdx-1]
}

func nextSortKey(key catalogdomain.SortKey) catalogdomain.SortKey {
	switch key {
	case catalogdomain.SortDefault:
		return catalogdomain.SortPriceAscending
	case catalogdomain.SortPriceAscending:
		return catalogdomain.SortPriceDescending
	case catalogdomain.SortPriceDescending:
		return catalogdomain.SortRatingDescending
	default:
		return catalogdomain.SortDefault
	}
}

func (m Model) formatPrice(d decimal.Decimal) string {
	return m.currencySymbol + d.StringFixed(2)
}
