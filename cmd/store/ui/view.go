package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	catalogdomain "github.com/dwikikusuma/tamrin-store/internal/catalog/domain"
)

const cardsPerRow = 3

func (m Model) View() string {
	if m.receipt != nil {
		return m.receiptView()
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")

	body := m.bodyView()
	if m.drawer == drawerOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.drawerView())
	}
	b.WriteString(body)
	b.WriteString("\n")

	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	title := headerStyle.Render("TAMRIN ONLINE STORE")
	badge := cartBadgeStyle.Render(fmt.Sprintf("Cart (%d)", m.cartSnap.TotalItems))

	sort := statusStyle.Render("sort: " + m.sortKey.String())
	filter := ""
	if cat := m.currentCategory(); cat != "" {
		filter = statusStyle.Render("  category: " + cat)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", badge, "  ", sort, filter)
}

func (m Model) bodyView() string {
	switch {
	case m.loading:
		return messageStyle.Render(m.spinner.View() + " " + msgLoading)
	case m.loadErr:
		return errorStyle.Render(msgLoadError)
	case len(m.view) == 0:
		return messageStyle.Render(msgNoProducts)
	}

	rows := make([]string, 0, (len(m.view)+cardsPerRow-1)/cardsPerRow)
	for start := 0; start < len(m.view); start += cardsPerRow {
		end := min(start+cardsPerRow, len(m.view))
		cards := make([]string, 0, cardsPerRow)
		for i := start; i < end; i++ {
			cards = append(cards, m.cardView(m.view[i], i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) cardView(p catalogdomain.Product, selected bool) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		p.DisplayTitle(),
		categoryStyle.Render(p.Category),
		ratingLine(p.Rating),
		priceStyle.Render(m.formatPrice(p.Price)),
	)

	if selected {
		return selectedCardStyle.Render(content)
	}
	return cardStyle.Render(content)
}

func ratingLine(r catalogdomain.Rating) string {
	return fmt.Sprintf("★ %.1f (%d)", r.Rate, r.Count)
}

func (m Model) drawerView() string {
	parts := []string{drawerTitleStyle.Render("Your Cart"), ""}

	if m.cartSnap.Empty {
		parts = append(parts, msgEmptyCart)
	} else {
		for i, item := range m.cartSnap.Items {
			line := fmt.Sprintf("%s  %s x %d",
				item.Title, m.formatPrice(item.Price), item.Quantity)
			if i == m.drawerSel {
				line = drawerSelectedStyle.Render("> " + line)
			} else {
				line = drawerLineStyle.Render("  " + line)
			}
			parts = append(parts, line)
		}
		parts = append(parts, "",
			priceStyle.Render("Total: "+m.formatPrice(m.cartSnap.Subtotal)))
	}

	return drawerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) receiptView() string {
	r := m.receipt

	lines := []string{
		drawerTitleStyle.Render("Order Confirmed"),
		"",
		fmt.Sprintf("Order %s", r.OrderID),
		fmt.Sprintf("Items: %d", r.TotalItems),
		fmt.Sprintf("Total: %s", m.formatPrice(r.Subtotal)),
		"",
		statusStyle.Render("press any key to continue"),
	}

	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) footerView() string {
	help := helpStyle.Render(
		"h/l move · a add · c cart · j/k select · d remove · s sort · f filter · o checkout · r reload · q quit")

	if m.status == "" {
		return help
	}

	status := statusStyle.Render(m.status)
	if m.warning {
		status = warningStyle.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, help)
}
