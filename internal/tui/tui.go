// Package tui provides a terminal user interface for browsing the prompt document.
// It uses the Bubble Tea framework to create a responsive, keyboard-driven interface
// with fuzzy search over categories, prompt names and bodies.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/toozej/promptbook/internal/prompt"
)

// item is one listed prompt.
type item struct {
	Category string
	Name     string
	Key      string
	Body     string
}

// searchText is what the filter matches against.
func (i item) searchText() string {
	return i.Category + " " + i.Name + " " + i.Key + " " + i.Body
}

type model struct {
	textInput       textinput.Model
	items           []item
	filteredResults []item
	cursor          int
	copied          string
	copyFunc        func(string) error
	err             error
}

// maxDisplay is how many results are listed at once.
const maxDisplay = 5

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// RunTUI starts the interactive browser. Enter copies the selected prompt's
// body to the clipboard and exits; the copied key is returned, or "" when
// the user quit without choosing.
func RunTUI(doc *prompt.Document) (string, error) {
	m := newModel(itemsFromDocument(doc), prompt.CopyToClipboard)

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return "", err
	}
	return final.(model).copied, nil
}

func newModel(items []item, copyFunc func(string) error) model {
	ti := textinput.New()
	ti.Placeholder = "Search prompts..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 50

	return model{
		textInput:       ti,
		items:           items,
		filteredResults: items,
		copyFunc:        copyFunc,
	}
}

// itemsFromDocument flattens the listed categories. Prompts without a stored
// body (no closing fence) are left out since there is nothing to copy.
func itemsFromDocument(doc *prompt.Document) []item {
	var items []item
	for _, c := range doc.Categories() {
		for _, name := range c.Prompts {
			key := prompt.ToKey(name)
			body, ok := doc.Body(key)
			if !ok {
				continue
			}
			items = append(items, item{Category: c.Name, Name: name, Key: key, Body: body})
		}
	}
	return items
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if len(m.filteredResults) > 0 && m.cursor < len(m.filteredResults) {
				selected := m.filteredResults[m.cursor]
				if err := m.copyFunc(selected.Body); err != nil {
					m.err = err
					return m, nil
				}
				m.copied = selected.Key
				return m, tea.Quit
			}

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "ctrl+n":
			if m.cursor < len(m.filteredResults)-1 {
				m.cursor++
			}

		default:
			m.textInput, cmd = m.textInput.Update(msg)
			m.filterResults()
			if m.cursor >= len(m.filteredResults) {
				m.cursor = len(m.filteredResults) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
		}
	}

	return m, cmd
}

func (m *model) filterResults() {
	query := m.textInput.Value()
	if query == "" {
		m.filteredResults = m.items
		return
	}

	searchData := make([]string, len(m.items))
	for i, it := range m.items {
		searchData[i] = it.searchText()
	}

	matches := fuzzy.RankFindNormalizedFold(query, searchData)
	// Keep document order among equally good matches.
	sort.Stable(matches)
	m.filteredResults = make([]item, len(matches))
	for i, match := range matches {
		m.filteredResults[i] = m.items[match.OriginalIndex]
	}
}

// window returns the range of filtered results to draw. It holds at most
// maxDisplay rows and always contains the cursor.
func (m model) window() (start, end int) {
	if m.cursor >= maxDisplay {
		start = m.cursor - maxDisplay + 1
	}
	end = min(start+maxDisplay, len(m.filteredResults))
	return start, end
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress Ctrl+C to exit", m.err)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("promptbook"))
	b.WriteString("\n\n")

	b.WriteString("Search: ")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	if len(m.filteredResults) == 0 {
		b.WriteString("No prompts found.\n")
	} else {
		b.WriteString(fmt.Sprintf("Found %d prompt(s):\n\n", len(m.filteredResults)))

		start, end := m.window()
		if start > 0 {
			b.WriteString(fmt.Sprintf("... %d above\n", start))
		}
		for i := start; i < end; i++ {
			it := m.filteredResults[i]
			cursor := " "
			title := it.Key
			if m.cursor == i {
				cursor = "▶"
				title = selectedStyle.Render(title)
			}

			b.WriteString(fmt.Sprintf("%s %s [%s]\n", cursor, title, it.Category))

			// Preview of the selected body
			if m.cursor == i {
				preview := it.Body
				if r := []rune(preview); len(r) > 100 {
					preview = string(r[:100]) + "..."
				}
				b.WriteString(promptStyle.Render(preview))
				b.WriteString("\n")
			}
		}

		if len(m.filteredResults) > end {
			b.WriteString(fmt.Sprintf("\n... and %d more\n", len(m.filteredResults)-end))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/ctrl+p up • ↓/ctrl+n down • enter copy • ctrl+c/esc quit"))

	return b.String()
}
