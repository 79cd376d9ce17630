package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwcivic/civictools/internal/catalog"
	"github.com/mwcivic/civictools/internal/domain"
	"github.com/mwcivic/civictools/internal/output"
)

var (
	browserTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(output.ColorCivicBlue)
	filterActiveStyle  = lipgloss.NewStyle().Bold(true).Reverse(true)
	filterIdleStyle    = lipgloss.NewStyle().Foreground(output.ColorMuted)
	cursorRowStyle     = lipgloss.NewStyle().Bold(true)
	notesStyle         = lipgloss.NewStyle().Foreground(output.ColorMuted).PaddingLeft(4)
	helpStyle          = lipgloss.NewStyle().Foreground(output.ColorMuted)
	maxVisibleItems    = 12
)

// BrowserModel is the interactive SNAP item checker: live substring
// search plus status and category filter cycling over the static
// catalog.
type BrowserModel struct {
	cat         *catalog.Catalog
	search      textinput.Model
	statuses    []string
	categories  []string
	statusIdx   int
	categoryIdx int
	cursor      int
	expanded    bool
	filtered    []domain.SNAPItem
}

// NewBrowser creates the browser over a catalog.
func NewBrowser(cat *catalog.Catalog) BrowserModel {
	search := textinput.New()
	search.Placeholder = "Search items… (e.g. ice cream, Gatorade, Kit Kat)"
	search.Focus()
	search.CharLimit = 64
	search.Width = 48

	m := BrowserModel{
		cat:        cat,
		search:     search,
		statuses:   cat.Statuses(),
		categories: cat.Categories(),
	}
	m.refilter()
	return m
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.statusIdx = (m.statusIdx + 1) % len(m.statuses)
			m.refilter()
			return m, nil
		case "shift+tab":
			m.categoryIdx = (m.categoryIdx + 1) % len(m.categories)
			m.refilter()
			return m, nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			m.expanded = false
			return m, nil
		case "down":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			m.expanded = false
			return m, nil
		case "enter":
			m.expanded = !m.expanded
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *BrowserModel) refilter() {
	m.filtered = m.cat.Filter(m.search.Value(), m.statuses[m.statusIdx], m.categories[m.categoryIdx])
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(browserTitleStyle.Render("Indiana SNAP Eligibility Checker (2026)"))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")

	total := len(m.cat.Items())
	b.WriteString(fmt.Sprintf("Showing %d of %d items\n\n", len(m.filtered), total))

	if len(m.filtered) == 0 {
		b.WriteString(helpStyle.Render("No items match your search."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderItems())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select · enter notes · tab status · shift+tab category · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m BrowserModel) renderFilters() string {
	render := func(label, value string) string {
		if value == catalog.FilterAll {
			return filterIdleStyle.Render(label + ": All")
		}
		return filterActiveStyle.Render(label + ": " + value)
	}
	return render("Status", m.statuses[m.statusIdx]) + "  " + render("Category", m.categories[m.categoryIdx])
}

func (m BrowserModel) renderItems() string {
	start := 0
	if m.cursor >= maxVisibleItems {
		start = m.cursor - maxVisibleItems + 1
	}
	end := min(start+maxVisibleItems, len(m.filtered))

	var b strings.Builder
	for i := start; i < end; i++ {
		item := m.filtered[i]
		prefix := "  "
		line := fmt.Sprintf("%s  %s  %s", output.StatusBadge(item.Status), item.Name,
			filterIdleStyle.Render("["+string(item.Category)+"]"))
		if i == m.cursor {
			prefix = "> "
			line = cursorRowStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")

		if i == m.cursor {
			b.WriteString(notesStyle.Render(item.Reason))
			b.WriteString("\n")
			if m.expanded && item.Notes != "" {
				b.WriteString(notesStyle.Render(item.Notes))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
