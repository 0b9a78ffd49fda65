// Package tui provides the interactive terminal view for taskmaster.
// It is a pure consumer of the manager's plain-data contract: operations
// run as commands, and state arrives back through snapshot messages.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgplazas/TaskMaster/internal/domain"
	"github.com/rgplazas/TaskMaster/internal/usecase"
)

// Mode is the input mode of the TUI.
type Mode int

// Input modes.
const (
	ModeNormal Mode = iota
	ModeInput       // textinput focused for add or edit
)

const noticeDuration = 3 * time.Second

// Model is the main bubbletea model for the TUI.
// Fields are ordered to minimize memory padding.
type Model struct {
	manager   *usecase.Manager
	snapshots chan usecase.Snapshot

	notice    string
	editingID string // task being edited; empty while adding
	tasks     []domain.Task
	view      domain.DerivedView
	filter    domain.Filter

	input textinput.Model
	spin  spinner.Model

	keys   KeyMap
	styles Styles

	mode      Mode
	cursor    int
	width     int
	height    int
	seedLimit int
	seeding   bool
	noticeErr bool
}

// New creates a new TUI Model bound to the given manager.
func New(manager *usecase.Manager, seedLimit int) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task text"
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		manager:   manager,
		snapshots: make(chan usecase.Snapshot, 16),
		filter:    domain.FilterAll,
		input:     ti,
		spin:      sp,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		seedLimit: seedLimit,
	}

	manager.SetListener(func(s usecase.Snapshot) {
		m.snapshots <- s
	})

	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.operation(func(ctx context.Context) error {
			return m.manager.Initialize(ctx)
		}),
		m.waitSnapshot(),
	)
}

// waitSnapshot pumps the next manager snapshot into the update loop.
func (m *Model) waitSnapshot() tea.Cmd {
	return func() tea.Msg {
		return MsgSnapshot{Snapshot: <-m.snapshots}
	}
}

// operation runs a manager call off the update loop. Results come back
// through the snapshot channel, so the command itself emits nothing.
func (m *Model) operation(fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		_ = fn(context.Background()) // outcome is delivered via the snapshot
		return nil
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgSnapshot:
		return m.applySnapshot(msg.Snapshot)

	case MsgClearNotice:
		m.notice = ""
		return m, nil

	case spinner.TickMsg:
		if !m.seeding {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.mode == ModeInput {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

// applySnapshot reconciles the view state from a manager snapshot.
func (m *Model) applySnapshot(snap usecase.Snapshot) (tea.Model, tea.Cmd) {
	m.tasks = snap.Tasks
	m.view = snap.View
	if snap.Outcome.Op == usecase.OpSeed {
		m.seeding = false
	}
	if m.cursor >= len(m.view.Visible) {
		m.cursor = len(m.view.Visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	cmds := []tea.Cmd{m.waitSnapshot()}
	if text := noticeFor(snap.Outcome); text != "" {
		m.notice = text
		m.noticeErr = snap.Outcome.Err != nil
		cmds = append(cmds, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
			return MsgClearNotice{}
		}))
	}
	return m, tea.Batch(cmds...)
}

// noticeFor renders the outcome signal as a transient notification.
func noticeFor(out usecase.Outcome) string {
	if out.Err != nil {
		switch {
		case errors.Is(out.Err, domain.ErrStorageUnavailable):
			return "Storage unavailable — change not saved"
		case errors.Is(out.Err, domain.ErrSeedUnreachable):
			return "Seed source unreachable — list unchanged"
		case errors.Is(out.Err, domain.ErrTaskNotFound):
			return "Task no longer exists"
		case errors.Is(out.Err, domain.ErrEmptyText):
			return "Task text cannot be empty"
		default:
			return out.Err.Error()
		}
	}
	switch out.Op {
	case usecase.OpAdd:
		return "Task added"
	case usecase.OpEdit:
		return "Task updated"
	case usecase.OpDelete:
		return "Task deleted"
	case usecase.OpClearCompleted:
		return "Completed tasks cleared"
	case usecase.OpClearAll:
		return "All tasks cleared"
	case usecase.OpSeed:
		return "Demo tasks imported"
	default:
		return ""
	}
}

// updateNormal handles keys in normal mode.
func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.Visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeInput
		m.editingID = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.selected()
		if !ok {
			break
		}
		m.mode = ModeInput
		m.editingID = task.ID
		m.input.SetValue(task.Text)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.selected()
		if !ok {
			break
		}
		id := task.ID
		return m, m.operation(func(ctx context.Context) error {
			return m.manager.ToggleTask(ctx, id)
		})

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.selected()
		if !ok {
			break
		}
		id := task.ID
		return m, m.operation(func(ctx context.Context) error {
			return m.manager.DeleteTask(ctx, id)
		})

	case key.Matches(msg, m.keys.ClearCompleted):
		return m, m.operation(m.manager.ClearCompleted)

	case key.Matches(msg, m.keys.ClearAll):
		return m, m.operation(m.manager.ClearAll)

	case key.Matches(msg, m.keys.SeedFetch):
		return m, m.startSeed(domain.SeedSourceFetch)

	case key.Matches(msg, m.keys.SeedStream):
		return m, m.startSeed(domain.SeedSourceStream)

	case key.Matches(msg, m.keys.Filter):
		m.filter = nextFilter(m.filter)
		m.manager.SetFilter(m.filter)
		m.cursor = 0
	}

	return m, nil
}

// startSeed kicks off a seed unless one is already in flight. The manager
// itself has no such guard; racing seeds would fight over the destructive
// overwrite, so the view keeps the triggers disabled meanwhile.
func (m *Model) startSeed(source string) tea.Cmd {
	if m.seeding {
		return nil
	}
	m.seeding = true
	limit := m.seedLimit
	return tea.Batch(
		m.spin.Tick,
		m.operation(func(ctx context.Context) error {
			return m.manager.Seed(ctx, source, limit)
		}),
	)
}

// updateInput handles keys while the text input is focused.
func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		text := m.input.Value()
		editingID := m.editingID
		m.mode = ModeNormal
		m.input.Blur()

		if _, ok := domain.NormalizeText(text); !ok {
			// Empty submits are dropped without a round-trip.
			return m, nil
		}
		if editingID == "" {
			return m, m.operation(func(ctx context.Context) error {
				return m.manager.AddTask(ctx, text)
			})
		}
		return m, m.operation(func(ctx context.Context) error {
			return m.manager.UpdateText(ctx, editingID, text)
		})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// selected returns the task under the cursor.
func (m *Model) selected() (*domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Visible) {
		return nil, false
	}
	return &m.view.Visible[m.cursor], true
}

// nextFilter cycles all -> pending -> completed -> all.
func nextFilter(f domain.Filter) domain.Filter {
	switch f {
	case domain.FilterAll:
		return domain.FilterPending
	case domain.FilterPending:
		return domain.FilterCompleted
	default:
		return domain.FilterAll
	}
}

// View renders the UI.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("TaskMaster"))
	b.WriteString("\n\n")

	if m.mode == ModeInput {
		label := "New task: "
		if m.editingID != "" {
			label = "Edit task: "
		}
		b.WriteString(label + m.input.View() + "\n\n")
	}

	if len(m.view.Visible) == 0 {
		b.WriteString(m.styles.Footer.Render("No tasks to show. Press 'a' to add one.") + "\n")
	}
	for i, task := range m.view.Visible {
		mark := "[ ]"
		style := m.styles.Task
		if task.Completed {
			mark = "[x]"
			style = m.styles.TaskDone
		}

		line := fmt.Sprintf("%s %s", mark, task.Text)
		if i == m.cursor && m.mode == ModeNormal {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = "  " + style.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(
		"a add · e edit · space toggle · d delete · f filter · c/C clear · s/S seed · q quit"))
	b.WriteString("\n")

	return b.String()
}

// statusLine renders counts, filter, seed progress, and the notice.
func (m *Model) statusLine() string {
	status := fmt.Sprintf("%d pending / %d total · filter: %s",
		m.view.PendingCount, m.view.TotalCount, m.filter)
	line := m.styles.Footer.Render(status)

	if m.seeding {
		line += "  " + m.spin.View() + m.styles.Footer.Render("seeding…")
	}
	if m.notice != "" {
		style := m.styles.Notice
		if m.noticeErr {
			style = m.styles.Error
		}
		line += "  " + style.Render(m.notice)
	}
	return line
}
