// Package ui renders the storefront: the product grid, the cart drawer and
// the checkout dialogs. It consumes store snapshots and never reaches into
// store internals.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("208")
	subtle  = lipgloss.Color("243")
	danger  = lipgloss.Color("161")
	success = lipgloss.Color("77")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(0, 1)

	cartBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1).
			Width(30)

	selectedCardStyle = cardStyle.
				BorderForeground(accent)

	categoryStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true)

	priceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(success)

	drawerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(subtle).
			Padding(0, 2).
			Width(40)

	drawerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true)

	drawerLineStyle = lipgloss.NewStyle()

	drawerSelectedStyle = lipgloss.NewStyle().
				Foreground(accent).
				Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(danger).
			Padding(1, 2)

	warningStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(subtle)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(success).
			Padding(1, 3)

	helpStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 1)
)
