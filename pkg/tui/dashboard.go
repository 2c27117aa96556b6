// Package tui is the interactive dashboard: the task list, the month's
// completion bar, and the calendar, backed by the same Service the CLI
// runners use.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/pace/pkg/app"
	"tableflip.dev/pace/pkg/dates"
	"tableflip.dev/pace/pkg/glyph"
	"tableflip.dev/pace/pkg/task"
	"tableflip.dev/pace/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeAddTask
	modeHours
	modeTarget
)

type taskItem struct {
	index int
	t     task.Task
}

func (it taskItem) Title() string {
	if it.t.Completed {
		return fmt.Sprintf("%s  %s", glyph.Completed, glyph.Strike(it.t.Description))
	}
	return fmt.Sprintf("%s  %s", glyph.Open, it.t.Description)
}
func (it taskItem) Description() string { return "" }
func (it taskItem) FilterValue() string { return it.t.Description }

// Model contains the dashboard state.
type Model struct {
	svc  *app.Service
	ctx  context.Context
	mode mode

	tasks list.Model
	input textinput.Model
	theme theme.Theme

	target  string
	weekly  float64
	monthly float64
	active  bool
	stats   task.Stats
	events  []app.Event

	status string
	toast  string

	termWidth  int
	termHeight int
}

// New creates the dashboard model backed by the Service.
func New(svc *app.Service) Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 48, 20)
	l.Title = "Tasks"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""

	return Model{
		svc:    svc,
		ctx:    context.Background(),
		mode:   modeNormal,
		tasks:  l,
		input:  ti,
		theme:  theme.Default(),
		status: "j/k move, x complete, o add, H hours, t target, q quit",
	}
}

type errMsg struct{ err error }

type refreshMsg struct {
	tasks   []task.Task
	target  string
	weekly  float64
	monthly float64
	active  bool
	stats   task.Stats
	events  []app.Event
	toast   string
}

func (m *Model) refresh(toast string) tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.svc.TaskList(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		target, err := m.svc.Target(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		weekly, err := m.svc.WeeklyAverage(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		monthly, active, err := m.svc.MonthlyAverage(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		now := m.svc.Clock.Now()
		stats, err := m.svc.Tasks.CompletionStats(m.ctx, dates.MonthKey(now))
		if err != nil {
			return errMsg{err}
		}
		events, err := m.svc.CalendarEvents(m.ctx, now)
		if err != nil {
			return errMsg{err}
		}
		if msg, fired, err := m.svc.CheckMotivation(m.ctx); err != nil {
			return errMsg{err}
		} else if fired {
			toast = msg
		}
		return refreshMsg{
			tasks:   tasks,
			target:  target,
			weekly:  weekly,
			monthly: monthly,
			active:  active,
			stats:   stats,
			events:  events,
			toast:   toast,
		}
	}
}

// Init loads initial data.
func (m Model) Init() tea.Cmd {
	return m.refresh("")
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case refreshMsg:
		items := make([]list.Item, 0, len(msg.tasks))
		for i, t := range msg.tasks {
			items = append(items, taskItem{index: i, t: t})
		}
		m.tasks.SetItems(items)
		m.target = msg.target
		m.weekly = msg.weekly
		m.monthly = msg.monthly
		m.active = msg.active
		m.stats = msg.stats
		m.events = msg.events
		m.toast = msg.toast
	case tea.KeyPressMsg:
		switch m.mode {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "o":
				m.mode = modeAddTask
				m.input.SetValue("")
				m.input.Placeholder = "New task"
				m.input.Focus()
				return m, nil
			case "H":
				m.mode = modeHours
				m.input.SetValue("")
				m.input.Placeholder = "Hours studied today"
				m.input.Focus()
				return m, nil
			case "t":
				m.mode = modeTarget
				m.input.SetValue("")
				m.input.Placeholder = "Daily target"
				m.input.Focus()
				return m, nil
			case "x", "enter":
				if it, ok := m.tasks.SelectedItem().(taskItem); ok {
					_, quote, err := m.svc.CompleteTask(m.ctx, it.index)
					if err != nil {
						cmds = append(cmds, func() tea.Msg { return errMsg{err} })
					} else {
						cmds = append(cmds, m.refresh(quote))
					}
				}
			case "r":
				cmds = append(cmds, m.refresh(""))
			}
		case modeAddTask, modeHours, modeTarget:
			switch msg.String() {
			case "esc":
				m.mode = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				cmds = append(cmds, m.submitInput())
				m.mode = modeNormal
				m.input.Blur()
			}
		}
	}

	if m.mode == modeNormal {
		var cmd tea.Cmd
		m.tasks, cmd = m.tasks.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) submitInput() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return nil
	}
	switch m.mode {
	case modeAddTask:
		if _, err := m.svc.AddTask(m.ctx, value); err != nil {
			return func() tea.Msg { return errMsg{err} }
		}
	case modeHours:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return func() tea.Msg { return errMsg{fmt.Errorf("not a number: %q", value)} }
		}
		if err := m.svc.RecordHours(m.ctx, m.svc.Clock.Now(), v); err != nil {
			return func() tea.Msg { return errMsg{err} }
		}
	case modeTarget:
		if err := m.svc.SaveTarget(m.ctx, value); err != nil {
			return func() tea.Msg { return errMsg{err} }
		}
	}
	return m.refresh("")
}

const statsBarWidth = 16

func (m Model) statsView() string {
	t := m.theme
	lines := make([]string, 0, 8)
	if m.target != "" {
		lines = append(lines, t.Panel.Title.Render("Target"), m.target, "")
	}
	lines = append(lines, t.Panel.Title.Render("Hours"))
	lines = append(lines, fmt.Sprintf("weekly  %.2f hrs/day", m.weekly))
	if m.active {
		lines = append(lines, fmt.Sprintf("monthly %.2f hrs/day", m.monthly))
	}
	if m.active {
		lines = append(lines, "", t.Panel.Title.Render("Completion"))
		if m.stats.Total == 0 {
			lines = append(lines, t.Footer.Status.Render("no tasks this month"))
		} else {
			filled := m.stats.Completed * statsBarWidth / m.stats.Total
			bar := t.Stats.Done.Render(strings.Repeat("█", filled)) +
				t.Stats.Remaining.Render(strings.Repeat("░", statsBarWidth-filled))
			lines = append(lines, fmt.Sprintf("%s %d/%d", bar, m.stats.Completed, m.stats.Total))
		}
	}
	lines = append(lines, "", t.Panel.Title.Render("Calendar"), m.calendarView())
	return t.Panel.Frame.Render(strings.Join(lines, "\n"))
}

func (m Model) calendarView() string {
	now := m.svc.Clock.Now()
	hasEvent := make(map[int]bool, len(m.events))
	for _, e := range m.events {
		hasEvent[e.Day.Day()] = true
	}

	var b strings.Builder
	b.WriteString(now.Month().String() + "\n")
	for i := time.Sunday; i < dates.StartDay(now); i++ {
		b.WriteString("   ")
	}
	d := dates.StartDay(now)
	for i := 1; i <= dates.DaysIn(now); i++ {
		cell := fmt.Sprintf("%2d ", i)
		if hasEvent[i] {
			b.WriteString(m.theme.Stats.EventDay.Render(cell))
		} else {
			b.WriteString(m.theme.Stats.QuietDay.Render(cell))
		}
		d++
		if d > time.Saturday {
			d = time.Sunday
			b.WriteString("\n")
		}
	}
	return b.String()
}

// View renders the task list beside the stats panel with a status
// footer.
func (m Model) View() string {
	left := m.tasks.View()
	right := m.statsView()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	if m.mode != modeNormal {
		body += "\n\n> " + m.input.View()
	}

	footer := m.theme.Footer.Status.Render(m.status)
	if m.toast != "" {
		footer = m.theme.Footer.Toast.Render(m.toast) + "  " + footer
	}
	return body + "\n\n" + footer
}

func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	left := m.termWidth / 2
	if left < 32 {
		left = 32
	}
	m.tasks.SetSize(left, m.termHeight-4)
}

// Run launches the dashboard.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
