package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/donghojung/mru/internal/constants"
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var pickerKeys = pickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k", "ctrl+p"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "ctrl+n"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Picker is a bubbletea front-end for Menu. Digits pick an entry directly,
// arrows and enter pick the highlighted one, and rows are clickable.
type Picker struct {
	menu   *Menu
	cursor int
	width  int
	zones  *zone.Manager
}

// NewPicker creates a picker over menu.
func NewPicker(menu *Menu) *Picker {
	return &Picker{
		menu:  menu,
		width: 80,
		zones: zone.New(),
	}
}

// Init initializes the picker.
func (m *Picker) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for i := range m.menu.Items() {
			if z := m.zones.Get(rowZoneID(i)); z != nil && z.InBounds(msg) {
				m.menu.Select(i)
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// handleKey handles keyboard input.
func (m *Picker) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pickerKeys.Quit):
		m.menu.Quit()
		return m, tea.Quit

	case key.Matches(msg, pickerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, pickerKeys.Down):
		if m.cursor < len(m.menu.Items())-1 {
			m.cursor++
		}

	case key.Matches(msg, pickerKeys.Select):
		if m.menu.Select(m.cursor) {
			return m, tea.Quit
		}

	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		if m.menu.Feed(string(msg.Runes)) == MenuValidated {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the picker.
func (m *Picker) View() string {
	if m.menu.State() != MenuPrompting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styleTitle.Render("Open recent file"))
	sb.WriteString("\n\n")

	pathWidth := m.width - 6
	if pathWidth < constants.MinDisplayPathLen {
		pathWidth = constants.MinDisplayPathLen
	}
	if pathWidth > constants.MaxDisplayPathLen {
		pathWidth = constants.MaxDisplayPathLen
	}

	for i, item := range m.menu.Items() {
		cursor := "  "
		style := styleItem
		if i == m.cursor {
			cursor = "> "
			style = styleSelected
		}
		row := cursor + styleNumber.Render(fmt.Sprintf("%d)", i+1)) + " " +
			style.Render(constants.TruncatePath(item, pathWidth))
		sb.WriteString(m.zones.Mark(rowZoneID(i), row))
		sb.WriteString("\n")
	}
	if m.menu.More() {
		sb.WriteString("  " + styleNumber.Render(constants.Ellipsis) + "\n")
	}

	if err := m.menu.Err(); err != nil {
		sb.WriteString(styleError.Render(err.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString(styleHelp.Render(fmt.Sprintf("1-%d: open  ↑/↓: move  enter: open  q: quit", len(m.menu.Items()))))

	return m.zones.Scan(sb.String())
}

func rowZoneID(i int) string {
	return fmt.Sprintf("mru-row-%d", i)
}

// RunPicker runs the picker on the terminal, drawing to out.
// It returns the chosen path, or ok=false if the user quit.
func RunPicker(in io.Reader, out io.Writer, menu *Menu) (path string, ok bool, err error) {
	m := NewPicker(menu)
	defer m.zones.Close()

	p := tea.NewProgram(m,
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return "", false, fmt.Errorf("failed to run picker: %w", err)
	}

	path, ok = menu.Selected()
	return path, ok, nil
}
