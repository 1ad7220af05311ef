// Package ui renders the terminal progress view: one row per hot-reload
// unit, showing the latest status word reported for it by the compiler
// (queued, working, done, error) or by the watcher (up_to_date, rebuilding,
// failed, stale) as source changes are reconciled, plus a header row
// tracking the one-shot executable build.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Event is the ui package's own vocabulary: a rename of whatever domain
// event (compiler.Event, watcher.Event) triggered it, so this package
// doesn't need to import either. Name == "" addresses the header row (the
// executable build); any other Name addresses that unit's row.
type Event struct {
	Name   string
	Status string // "queued", "working", "done", "error", "registered", "up_to_date", "rebuilding", "failed", "stale"
}

type progressModel struct {
	title   string
	events  <-chan Event
	spinner spinner.Model
	prog    progress.Model
	items   []rowItem
	index   map[string]int
	header  string
	width   int
	done    bool
}

type rowItem struct {
	name   string
	status string
}

type eventMsg Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model with one row per name in
// units, fed by events.
func NewProgressModel(title string, units []string, events <-chan Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]rowItem, 0, len(units))
	index := make(map[string]int, len(units))
	for i, name := range units {
		items = append(items, rowItem{name: name, status: "queued"})
		index[name] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		next, cmd := m.prog.Update(msg)
		m.prog = next.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.header != "" {
		header = fmt.Sprintf("%s (%s)", header, m.header)
	}
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	for _, item := range m.items {
		name := truncate(item.name, nameWidth)
		statusStyled := styleStatus(item.status).Render(fmt.Sprintf("%12s", item.status))
		b.WriteString(fmt.Sprintf("  %s %s\n", statusStyled, name))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev Event) tea.Cmd {
	if ev.Name == "" {
		m.header = ev.Status
		return nil
	}
	idx, ok := m.index[ev.Name]
	if !ok {
		m.items = append(m.items, rowItem{name: ev.Name, status: ev.Status})
		m.index[ev.Name] = len(m.items) - 1
	} else {
		m.items[idx].status = ev.Status
	}

	total := 0.0
	for _, item := range m.items {
		total += progressFromStatus(item.status)
	}
	if len(m.items) == 0 {
		return nil
	}
	return m.prog.SetPercent(total / float64(len(m.items)))
}

func progressFromStatus(status string) float64 {
	switch status {
	case "up_to_date", "registered":
		return 1.0
	case "rebuilding", "working":
		return 0.5
	case "failed":
		return 1.0
	default:
		return 0.0
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "up_to_date", "registered", "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "failed", "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "rebuilding", "working":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
