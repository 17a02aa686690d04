// Package tui is the terminal client for a pomoplan server.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/pomoplan/internal/ui"
	"github.com/td0m/pomoplan/pkg/brief"
	"github.com/td0m/pomoplan/pkg/client"
	"github.com/td0m/pomoplan/pkg/dateinput"
	"github.com/td0m/pomoplan/pkg/plan"
	"github.com/td0m/pomoplan/pkg/task"
)

// API is the part of the server the terminal client uses.
type API interface {
	Tasks(ctx context.Context) ([]task.Task, error)
	CreateTask(ctx context.Context, d task.Draft) (task.Task, error)
	PatchTask(ctx context.Context, id task.ID, fields map[string]interface{}) (task.Task, error)
	DeleteTask(ctx context.Context, id task.ID) (task.Task, error)
	Plan(ctx context.Context) (plan.Plan, error)
	GeneratePlan(ctx context.Context, minutes int, policy plan.Policy) (plan.Plan, error)
	PutPlan(ctx context.Context, blocks []plan.Block) (plan.Plan, error)
	WeeklyParse(ctx context.Context, text string) (brief.Result, error)
}

var _ API = &client.Client{}

const (
	headerHeight = 3
	footerHeight = 1

	requestTimeout = 30 * time.Second

	// blockStep is how much +/- changes a plan block.
	blockStep = 5 * 60
)

const (
	tabTasks = iota
	tabPlan
)

type mode int

const (
	modeNormal mode = iota
	modeNew
	modeDue
	modeBrief
)

type Options struct {
	// Minutes is the budget used when generating a plan.
	Minutes int
	Policy  plan.Policy
	Now     func() time.Time
}

type Model struct {
	api  API
	opts Options

	mode mode

	viewport  viewport.Model
	nameinput textinput.Model
	pathinput textinput.Model
	dueinput  dateinput.Model
	tabs      ui.Tabs

	cursor int
	tasks  []task.Task
	plan   plan.Plan

	status string
	err    error
}

// New returns a model talking to api. Run it with tea.NewProgram.
func New(api API, opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	i := textinput.New()
	i.Prompt = ""
	i.Width = 40
	i.Cursor.SetMode(cursor.CursorStatic)

	path := textinput.New()
	path.Prompt = ""
	path.Width = 60
	path.Placeholder = "brief.txt"
	path.Cursor.SetMode(cursor.CursorStatic)

	due := dateinput.NewModel()
	due.Now = opts.Now

	return &Model{
		api:       api,
		opts:      opts,
		nameinput: i,
		pathinput: path,
		dueinput:  due,
		tabs:      ui.NewTabs([]string{"Tasks", "Plan"}),
	}
}

// Init loads tasks and the current plan.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadTasks(), m.loadPlan())
}

func (m *Model) now() time.Time {
	return m.opts.Now()
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		m.tabs.Width = msg.Width
		m.setCursor(m.cursor)
	case tasksMsg:
		m.tasks = task.Prioritize(msg)
		m.setCursor(m.cursor)
		m.err = nil
	case taskMsg:
		m.replace(task.Task(msg))
		m.err = nil
	case deletedMsg:
		m.remove(task.ID(msg))
		m.err = nil
	case planMsg:
		m.plan = plan.Plan(msg)
		m.setCursor(m.cursor)
	case briefMsg:
		m.tasks = task.Prioritize(msg.Tasks)
		m.tabs.Set(tabTasks)
		m.setCursor(0)
		m.status, m.err = fmt.Sprintf("%d tasks parsed by %s", len(msg.Tasks), msg.Source), nil
		if msg.Warning != "" {
			m.status += " (" + msg.Warning + ")"
		}
	case generatedMsg:
		m.plan = msg.plan
		m.tabs.Set(tabPlan)
		m.setCursor(0)
		m.status, m.err = fmt.Sprintf("plan generated for %d minutes", msg.minutes), nil
	case statusMsg:
		m.status, m.err = string(msg), nil
	case errMsg:
		m.err = msg.err
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.mode = modeNormal
		default:
			cmd = m.keyUpdate(msg)
		}
	}
	m.render()
	return m, cmd
}

// handle keys differently based on the current mode
func (m *Model) keyUpdate(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeNew:
		if msg.Type == tea.KeyEnter {
			m.mode = modeNormal
			return m.create(m.nameinput.Value())
		}
		m.nameinput, cmd = m.nameinput.Update(msg)
	case modeDue:
		if msg.Type == tea.KeyEnter {
			if !m.dueinput.Valid() {
				return nil
			}
			m.mode = modeNormal
			return m.setDue(m.atCursor().ID, m.dueinput.Value())
		}
		m.dueinput, cmd = m.dueinput.Update(msg)
	case modeBrief:
		if msg.Type == tea.KeyEnter {
			m.mode = modeNormal
			return m.importBrief(m.pathinput.Value())
		}
		m.pathinput, cmd = m.pathinput.Update(msg)
	case modeNormal:
		if msg.Type == tea.KeyTab || msg.Type == tea.KeyShiftTab {
			m.tabs, cmd = m.tabs.Update(msg)
			m.setCursor(0)
			return cmd
		}
		switch msg.String() {
		case "q":
			return tea.Quit
		case "alt+1":
			m.tabs.Set(tabTasks)
			m.setCursor(0)
		case "alt+2":
			m.tabs.Set(tabPlan)
			m.setCursor(0)
		case "j", "down":
			m.setCursor(m.cursor + 1)
		case "k", "up":
			m.setCursor(m.cursor - 1)
		case "ctrl+d":
			m.setCursor(m.cursor + 10)
		case "ctrl+u":
			m.setCursor(m.cursor - 10)
		case "G":
			m.setCursor(m.size())
		case "r":
			return tea.Batch(m.loadTasks(), m.loadPlan())
		case "g":
			return m.generate()
		case "i":
			m.mode = modeBrief
			m.pathinput.SetValue("")
			return m.pathinput.Focus()
		}
		if m.tabs.Value() == tabPlan {
			return m.planKey(msg.String())
		}
		t := m.atCursor()
		switch msg.String() {
		case "o":
			m.mode = modeNew
			m.nameinput.SetValue("")
			return m.nameinput.Focus()
		case "t":
			if t.ID != "" {
				return m.toggle(t)
			}
		case "x", tea.KeyDelete.String():
			if t.ID != "" {
				return m.delete(t.ID)
			}
		case "d":
			if t.ID != "" {
				m.mode = modeDue
				m.dueinput.SetValue(t.Due)
			}
		}
	}
	return cmd
}

// planKey edits the block under the cursor and sends the whole plan back.
func (m *Model) planKey(key string) tea.Cmd {
	if m.cursor >= len(m.plan.Blocks) {
		return nil
	}
	blocks := append([]plan.Block{}, m.plan.Blocks...)
	switch key {
	case "+":
		blocks[m.cursor].Seconds += blockStep
	case "-":
		blocks[m.cursor].Seconds = max(blocks[m.cursor].Seconds-blockStep, plan.MinSeconds)
	case "x", tea.KeyDelete.String():
		blocks = append(blocks[:m.cursor], blocks[m.cursor+1:]...)
	default:
		return nil
	}
	return m.putPlan(blocks)
}

func (m *Model) atCursor() task.Task {
	// if no items visible
	if m.tabs.Value() != tabTasks || m.cursor >= len(m.tasks) {
		return task.Task{}
	}
	return m.tasks[m.cursor]
}

func (m *Model) size() int {
	if m.tabs.Value() == tabPlan {
		return len(m.plan.Blocks)
	}
	return len(m.tasks)
}

func (m *Model) setCursor(value int) {
	size := m.size()
	m.cursor = min(max(value, 0), max(size-1, 0))
	if size == 0 {
		return
	}

	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = m.cursor + 1 - m.viewport.Height
	}
	if m.cursor < m.viewport.YOffset {
		m.viewport.YOffset = m.cursor
	}
}

// replace swaps in an updated task, keeping priority order.
func (m *Model) replace(t task.Task) {
	found := false
	for i := range m.tasks {
		if m.tasks[i].ID == t.ID {
			m.tasks[i] = t
			found = true
		}
	}
	if !found {
		m.tasks = append(m.tasks, t)
	}
	m.tasks = task.Prioritize(m.tasks)
	m.setCursor(m.cursor)
}

func (m *Model) remove(id task.ID) {
	out := m.tasks[:0]
	for _, t := range m.tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	m.tasks = out
	m.setCursor(m.cursor)
}

func (m *Model) render() {
	if m.tabs.Value() == tabPlan {
		m.viewport.SetContent(m.viewPlan())
	} else {
		m.viewport.SetContent(m.viewTasks())
	}
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m *Model) View() string {
	m.tabs.Info = m.info()
	statusline := ""
	switch {
	case m.mode == modeNew:
		statusline = "new: " + m.nameinput.View()
	case m.mode == modeDue:
		statusline = m.dueinput.View()
	case m.mode == modeBrief:
		statusline = "brief: " + m.pathinput.View()
	case m.err != nil:
		statusline = ui.StatusError.Render(m.err.Error())
	case m.status != "":
		statusline = ui.StatusInfo.Render(m.status)
	}
	return m.tabs.View() + m.viewport.View() + "\n" + statusline
}
