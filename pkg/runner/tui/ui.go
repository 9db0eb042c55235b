package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/appointment"
	"tableflip.dev/citas/pkg/calendar"
	"tableflip.dev/citas/pkg/tui/theme"
	"tableflip.dev/citas/pkg/view"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeForm
	modeHelp
)

type viewMode int

const (
	viewList viewMode = iota
	viewCalendar
)

// form field indices
const (
	fieldName = iota
	fieldDate
	fieldTime
	fieldCount
)

// Model contains UI state. The transient selectors of the views (search
// query, view mode, selected date, displayed month) live here and never
// survive a restart.
type Model struct {
	svc  *app.Service
	ctx  context.Context
	mode mode

	viewMode viewMode

	appts []appointment.Appointment

	searchQuery string
	search      textinput.Model

	form      [fieldCount]textinput.Model
	formIndex int
	editingID string

	selectedDate string
	month        calendar.Month
	cursorDay    int

	cursor int // index into the visible, sorted list

	status     string
	awaitingDD bool
	lastDTime  time.Time

	termWidth  int
	termHeight int

	th  theme.Theme
	now func() time.Time
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) Model {
	search := textinput.New()
	search.Placeholder = "client name"
	search.CharLimit = 64
	search.Prompt = "/"

	var form [fieldCount]textinput.Model
	labels := [fieldCount]string{"Client", "Date (YYYY-MM-DD)", "Time (HH:MM)"}
	for i := range form {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 64
		ti.Prompt = ""
		form[i] = ti
	}

	now := time.Now
	m := Model{
		svc:       svc,
		ctx:       context.Background(),
		mode:      modeNormal,
		viewMode:  viewList,
		search:    search,
		form:      form,
		month:     calendar.MonthOf(now()),
		cursorDay: now().Day(),
		status:    "NORMAL: j/k move, v calendar, / search, o add, i edit, x done, c cancel, u reopen, dd delete, ? help, q quit",
		th:        theme.Default(),
		now:       now,
	}
	return m
}

// Init loads initial data
func (m Model) Init() tea.Cmd {
	return m.refresh()
}

func (m *Model) refresh() tea.Cmd {
	return func() tea.Msg {
		appts, err := m.svc.Appointments(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return apptsLoadedMsg{appts}
	}
}

// messages
type errMsg struct{ err error }
type apptsLoadedMsg struct{ appts []appointment.Appointment }

// visible returns the sorted list-view projection for the current selectors.
func (m *Model) visible() []appointment.Appointment {
	appts := view.Search(m.appts, m.searchQuery)
	if m.viewMode == viewCalendar {
		appts = view.OnDate(appts, m.selectedDate)
	}
	return view.SortChronological(appts)
}

func (m *Model) currentAppointment() *appointment.Appointment {
	vis := m.visible()
	if len(vis) == 0 || m.cursor < 0 || m.cursor >= len(vis) {
		return nil
	}
	a := vis[m.cursor]
	return &a
}

func (m *Model) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case apptsLoadedMsg:
		m.appts = msg.appts
		m.clampCursor()
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeSearch:
			switch msg.String() {
			case "enter":
				m.searchQuery = strings.TrimSpace(m.search.Value())
				m.mode = modeNormal
				m.search.Blur()
				m.clampCursor()
			case "esc":
				m.searchQuery = ""
				m.search.Reset()
				m.search.Blur()
				m.mode = modeNormal
				m.status = "Search cleared"
				m.clampCursor()
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				cmds = append(cmds, cmd)
				// filter live, like typing in the search box
				m.searchQuery = strings.TrimSpace(m.search.Value())
				m.clampCursor()
			}
		case modeForm:
			switch msg.String() {
			case "enter":
				if cmd := m.submitForm(); cmd != nil {
					cmds = append(cmds, cmd)
				}
			case "esc":
				m.closeForm()
				m.status = "Cancelled"
			case "tab", "down":
				m.focusField((m.formIndex + 1) % fieldCount)
			case "shift+tab", "up":
				m.focusField((m.formIndex + fieldCount - 1) % fieldCount)
			default:
				var cmd tea.Cmd
				m.form[m.formIndex], cmd = m.form[m.formIndex].Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				cmds = append(cmds, tea.Quit)

			case "/":
				m.mode = modeSearch
				m.search.SetValue(m.searchQuery)
				m.search.CursorEnd()
				if cmd := m.search.Focus(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				cmds = append(cmds, textinput.Blink)

			case "v", "tab":
				if m.viewMode == viewList {
					m.viewMode = viewCalendar
				} else {
					m.viewMode = viewList
					// date selection does not survive leaving the calendar
					m.selectedDate = ""
				}
				m.clampCursor()

			case "esc":
				if m.searchQuery != "" {
					m.searchQuery = ""
					m.search.Reset()
					m.status = "Search cleared"
				} else if m.selectedDate != "" {
					m.selectedDate = ""
				}
				m.clampCursor()

			// movement
			case "j", "down":
				if m.viewMode == viewCalendar {
					m.moveCursorDay(7)
				} else if m.cursor < len(m.visible())-1 {
					m.cursor++
				}
			case "k", "up":
				if m.viewMode == viewCalendar {
					m.moveCursorDay(-7)
				} else if m.cursor > 0 {
					m.cursor--
				}
			case "h", "left":
				if m.viewMode == viewCalendar {
					m.moveCursorDay(-1)
				}
			case "l", "right":
				if m.viewMode == viewCalendar {
					m.moveCursorDay(1)
				}
			case "g":
				m.cursor = 0
			case "G":
				m.cursor = len(m.visible()) - 1
				m.clampCursor()

			// month navigation
			case "n":
				if m.viewMode == viewCalendar {
					m.setMonth(m.month.Next())
				}
			case "p":
				if m.viewMode == viewCalendar {
					m.setMonth(m.month.Prev())
				}

			// day selection toggles
			case "enter", "space":
				if m.viewMode == viewCalendar {
					m.selectedDate = calendar.Toggle(m.selectedDate, m.month.Date(m.cursorDay))
					m.clampCursor()
				}

			// add
			case "o", "O":
				m.openForm(nil)
				cmds = append(cmds, textinput.Blink)

			// edit
			case "i":
				if a := m.currentAppointment(); a != nil {
					m.openForm(a)
					cmds = append(cmds, textinput.Blink)
				}

			// status changes
			case "x":
				m.applyStatus(&cmds, appointment.Completed, "Marked completed")
			case "c":
				m.applyStatus(&cmds, appointment.Cancelled, "Marked cancelled")
			case "u":
				m.applyStatus(&cmds, appointment.Scheduled, "Back to scheduled")

			// delete on dd
			case "d":
				if a := m.currentAppointment(); a != nil {
					if m.awaitingDD && time.Since(m.lastDTime) < 600*time.Millisecond {
						if err := m.svc.Remove(m.ctx, a.ID); err != nil {
							cmds = append(cmds, func() tea.Msg { return errMsg{err} })
						} else {
							m.status = "Deleted " + a.ClientName
							cmds = append(cmds, m.refresh())
						}
						m.awaitingDD = false
					} else {
						m.awaitingDD = true
						m.lastDTime = time.Now()
					}
				}

			case "r":
				cmds = append(cmds, m.refresh())
			case "?":
				m.mode = modeHelp
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) applyStatus(cmds *[]tea.Cmd, status appointment.Status, note string) {
	a := m.currentAppointment()
	if a == nil {
		return
	}
	if err := m.svc.SetStatus(m.ctx, a.ID, status); err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	m.status = note
	*cmds = append(*cmds, m.refresh())
}

func (m *Model) moveCursorDay(delta int) {
	day := m.cursorDay + delta
	if day < 1 {
		day = 1
	}
	if max := m.month.DaysIn(); day > max {
		day = max
	}
	m.cursorDay = day
}

// setMonth moves the displayed month and clears the active day selection;
// a selected day never survives a month change.
func (m *Model) setMonth(month calendar.Month) {
	m.month = month
	m.selectedDate = ""
	m.cursorDay = 1
	m.clampCursor()
}

// openForm prepares the add/edit overlay. A nil appointment means a new
// draft; the date field is prefilled with the selected day or today.
func (m *Model) openForm(a *appointment.Appointment) {
	m.mode = modeForm
	if a != nil {
		m.editingID = a.ID
		m.form[fieldName].SetValue(a.ClientName)
		m.form[fieldDate].SetValue(a.Date)
		m.form[fieldTime].SetValue(a.Time)
	} else {
		m.editingID = ""
		date := m.selectedDate
		if date == "" {
			date = appointment.Day(m.now())
		}
		m.form[fieldName].SetValue("")
		m.form[fieldDate].SetValue(date)
		m.form[fieldTime].SetValue("")
	}
	m.focusField(fieldName)
}

func (m *Model) focusField(i int) {
	m.formIndex = i
	for j := range m.form {
		if j == i {
			m.form[j].Focus()
			m.form[j].CursorEnd()
		} else {
			m.form[j].Blur()
		}
	}
}

func (m *Model) closeForm() {
	m.mode = modeNormal
	m.editingID = ""
	for i := range m.form {
		m.form[i].Reset()
		m.form[i].Blur()
	}
}

// submitForm validates the draft and applies it. A rejected draft keeps the
// form open with no state change.
func (m *Model) submitForm() tea.Cmd {
	name := strings.TrimSpace(m.form[fieldName].Value())
	date := strings.TrimSpace(m.form[fieldDate].Value())
	at := strings.TrimSpace(m.form[fieldTime].Value())

	if m.editingID == "" {
		if _, err := m.svc.Add(m.ctx, name, date, at); err != nil {
			m.status = "ERR: " + err.Error()
			return nil
		}
		m.status = "Added " + name
	} else {
		record := appointment.Appointment{ID: m.editingID, ClientName: name, Date: date, Time: at, Status: m.editingStatus()}
		if err := record.Validate(); err != nil {
			m.status = "ERR: " + err.Error()
			return nil
		}
		if err := m.svc.Edit(m.ctx, record); err != nil {
			m.status = "ERR: " + err.Error()
			return nil
		}
		m.status = "Saved " + name
	}
	m.closeForm()
	return m.refresh()
}

func (m *Model) editingStatus() appointment.Status {
	for _, a := range m.appts {
		if a.ID == m.editingID {
			return a.Status
		}
	}
	return appointment.Scheduled
}

// View renders the header, the active view and overlays.
func (m Model) View() string {
	var b strings.Builder

	tally := view.Count(m.appts, m.now())
	b.WriteString(m.th.Header.Render("✿ citas"))
	b.WriteString("  ")
	b.WriteString(m.th.Tally.Render(fmt.Sprintf("total %d · today %d · scheduled %d · completed %d · cancelled %d",
		tally.Total, tally.Today, tally.Scheduled, tally.Completed, tally.Cancelled)))
	b.WriteString("\n\n")

	if m.mode == modeSearch {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	} else if m.searchQuery != "" {
		b.WriteString(m.th.Muted.Render("search: " + m.searchQuery))
		b.WriteString("\n\n")
	}

	switch m.viewMode {
	case viewCalendar:
		b.WriteString(m.calendarView())
	default:
		b.WriteString(m.listView())
	}

	switch m.mode {
	case modeForm:
		b.WriteString("\n" + m.formView())
	case modeHelp:
		help := "Keys: j/k move, v/tab switch list and calendar, / search (enter keeps, esc clears), " +
			"o add, i edit, x mark completed, c mark cancelled, u back to scheduled, dd delete, " +
			"h/l move day, n/p change month, enter/space select day, esc clear filters, q quit"
		width := m.termWidth
		if width <= 0 {
			width = 80
		}
		b.WriteString("\n" + m.th.Help.Render(wordwrap.String(help, width-2)))
	}

	b.WriteString("\n\n" + m.th.Status.Render(m.status))
	return b.String()
}

func (m Model) listView() string {
	vis := m.visible()
	if len(vis) == 0 {
		if m.searchQuery != "" {
			return m.th.Muted.Render("no appointments match " + m.searchQuery)
		}
		return m.th.Muted.Render("no appointments yet, press o to add the first one")
	}

	var lines []string
	i := 0
	for _, g := range view.GroupByDate(vis) {
		lines = append(lines, m.th.DayTitle.Render(longDate(g.Date)))
		for _, a := range g.Appointments {
			marker := "  "
			style := m.th.Row
			if i == m.cursor {
				marker = "→ "
				style = m.th.RowCursor
			}
			glyph := m.th.ForStatus(a.Status).Render(a.Status.Glyph())
			lines = append(lines, fmt.Sprintf("%s%s %s  %s", marker, style.Render(a.Time), glyph, style.Render(a.ClientName)))
			i++
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) calendarView() string {
	appts := view.Search(m.appts, m.searchQuery)
	cells := calendar.Grid(m.month, appts, m.selectedDate, m.now())

	var b strings.Builder
	b.WriteString(m.th.DayTitle.Render(m.month.String()))
	b.WriteString("\n")
	b.WriteString(m.renderGrid(cells))
	b.WriteString("\n")

	if m.selectedDate == "" {
		b.WriteString("\n" + m.th.Muted.Render("enter selects a day, enter again clears it"))
		return b.String()
	}

	day := view.SortChronological(view.OnDate(appts, m.selectedDate))
	b.WriteString("\n" + m.th.DayTitle.Render(longDate(m.selectedDate)) + "\n")
	if len(day) == 0 {
		b.WriteString(m.th.Muted.Render("no appointments that day"))
		return b.String()
	}
	for i, a := range day {
		marker := "  "
		style := m.th.Row
		if i == m.cursor {
			marker = "→ "
			style = m.th.RowCursor
		}
		glyph := m.th.ForStatus(a.Status).Render(a.Status.Glyph())
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", marker, style.Render(a.Time), glyph, style.Render(a.ClientName)))
	}
	return b.String()
}

// renderGrid draws the month cells with the UI cursor on top of the grid
// builder's flags.
func (m Model) renderGrid(cells []calendar.Cell) string {
	opts := m.th.Calendar
	var lines []string
	lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))

	rows := (len(cells) + 6) / 7
	for row := 0; row < rows; row++ {
		var day, marks []string
		for col := 0; col < 7; col++ {
			i := row*7 + col
			if i >= len(cells) || cells[i].Day == 0 {
				day = append(day, opts.EmptyStyle.Render("  "))
				marks = append(marks, "   ")
				continue
			}
			c := cells[i]
			style := opts.EmptyStyle
			if c.HasAppointments {
				style = opts.BusyStyle
			}
			if c.IsToday {
				style = style.Inherit(opts.TodayStyle)
			}
			if c.IsSelected {
				style = style.Inherit(opts.SelectedStyle)
			}
			if c.Day == m.cursorDay {
				style = style.Reverse(true)
			}
			day = append(day, style.Render(fmt.Sprintf("%2d", c.Day)))
			marks = append(marks, calendar.MarkerStrip(c))
		}
		lines = append(lines, strings.Join(day, " "))
		lines = append(lines, strings.TrimRight(strings.Join(marks, ""), " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) formView() string {
	title := "New appointment"
	if m.editingID != "" {
		title = "Edit appointment"
	}
	labels := [fieldCount]string{"Client", "Date  ", "Time  "}
	lines := []string{m.th.DayTitle.Render(title), ""}
	for i := range m.form {
		cursor := "  "
		if i == m.formIndex {
			cursor = "→ "
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", cursor, m.th.Muted.Render(labels[i]), m.form[i].View()))
	}
	lines = append(lines, "", m.th.Muted.Render("enter saves, esc cancels, tab next field"))
	return m.th.Panel.Render(strings.Join(lines, "\n"))
}

func longDate(date string) string {
	if t, err := time.Parse(appointment.DateLayout, date); err == nil {
		return t.Format("Monday, January 2, 2006")
	}
	return date
}

// Run starts the program.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
