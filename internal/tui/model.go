package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"codeberg.org/snonux/wordcycle/internal/export"
	"codeberg.org/snonux/wordcycle/internal/review"
	"codeberg.org/snonux/wordcycle/internal/words"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptJump
	promptEdit
	promptOpen
)

// Options configures the terminal host
type Options struct {
	OutputDir string // where s writes snapshots
	FilePath  string // word file loaded at start
}

// Model is the Bubble Tea model hosting a review session
type Model struct {
	session *review.Session
	opts    Options
	keys    KeyMap
	styles  Styles
	help    help.Model
	input   textinput.Model
	log     zerolog.Logger
	now     func() time.Time

	prompt    promptKind
	editField words.Field
	status    string
	statusErr bool
	width     int
}

// New creates a model for session
func New(session *review.Session, opts Options, logger zerolog.Logger) Model {
	input := textinput.New()
	input.CharLimit = 512

	return Model{
		session: session,
		opts:    opts,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		help:    help.New(),
		input:   input,
		log:     logger,
		now:     time.Now,
	}
}

// Run starts the terminal UI and blocks until the user quits
func Run(session *review.Session, opts Options, logger zerolog.Logger) error {
	_, err := tea.NewProgram(New(session, opts, logger), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		return m.handleKey(msg)
	}

	if m.prompt != promptNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.session.View()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.session.Next()
		m.clearStatus()

	case key.Matches(msg, m.keys.Previous):
		m.session.Previous()
		m.clearStatus()

	case key.Matches(msg, m.keys.ToggleLearned):
		if m.session.ToggleLearned() {
			m.setStatus("Learned: " + yesNo(m.session.View().Record.Learned))
		}

	case key.Matches(msg, m.keys.Favorite):
		if m.session.ToggleFavorited() {
			m.setStatus("Favorited: " + yesNo(m.session.View().Record.Favorited))
		}

	case key.Matches(msg, m.keys.Mastered):
		if m.session.ToggleMastered() {
			m.setStatus("Mastered: " + yesNo(m.session.View().Record.Mastered))
		}

	case key.Matches(msg, m.keys.LearnFavorites):
		if m.session.ToggleLearnFavorites() {
			m.setStatus("Reviewing learned favorites")
		} else {
			m.setStatus("Skipping learned favorites")
		}

	case key.Matches(msg, m.keys.Edit):
		if view.Loaded && !view.AllDone && view.Stage == review.StageDetails {
			field := words.EditableFields[int(msg.String()[0]-'1')]
			m.editField = field
			return m.openPrompt(promptEdit, field.Label()+": ", view.Record.Get(field))
		}

	case key.Matches(msg, m.keys.Jump):
		if view.Loaded {
			return m.openPrompt(promptJump, fmt.Sprintf("Jump to (1-%d): ", m.session.Store().Len()), "")
		}

	case key.Matches(msg, m.keys.Open):
		return m.openPrompt(promptOpen, "Open file: ", m.opts.FilePath)

	case key.Matches(msg, m.keys.Save):
		m.save()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) openPrompt(kind promptKind, label, value string) (tea.Model, tea.Cmd) {
	m.prompt = kind
	m.input.Prompt = label
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closePrompt()
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		value := m.input.Value()
		kind := m.prompt
		m.closePrompt()

		switch kind {
		case promptJump:
			if err := m.session.Jump(value); err != nil {
				m.setError(err)
			} else {
				m.setStatus("Jumped to word " + strings.TrimSpace(value))
			}
		case promptEdit:
			if m.session.Edit(m.editField, words.SanitizeValue(value)) {
				m.setStatus(m.editField.Label() + " updated")
			}
		case promptOpen:
			m.open(strings.TrimSpace(value))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) open(path string) {
	if path == "" {
		return
	}

	store, err := words.ReadFile(path)
	if err != nil {
		m.setError(err)
		return
	}

	m.session.Replace(store)
	m.opts.FilePath = path
	m.setStatus(fmt.Sprintf("Loaded %d words from %s", store.Len(), filepath.Base(path)))
	m.log.Info().Str("file", path).Int("words", store.Len()).Msg("Word list opened")
}

func (m *Model) save() {
	path, err := export.Save(m.opts.OutputDir, m.session, m.now())
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus("Saved to " + path)
	m.log.Info().Str("file", path).Msg("Snapshot saved")
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(err error) {
	m.status, m.statusErr = "Error: "+err.Error(), true
	m.log.Warn().Err(err).Msg("TUI error")
}

func (m *Model) clearStatus() {
	m.status, m.statusErr = "", false
}

// View implements tea.Model
func (m Model) View() string {
	view := m.session.View()
	var b strings.Builder

	title := "wordcycle"
	if m.opts.FilePath != "" {
		title += " · " + filepath.Base(m.opts.FilePath)
	}
	progress := view.Progress.String()
	if view.LearnFavorites {
		progress += " ★"
	}
	b.WriteString(m.styles.Title.Render(title) + " " + m.styles.Progress.Render(progress))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Card.Render(m.renderCard(view)))
	b.WriteString("\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(m.styles.Error.Render(m.status))
		} else {
			b.WriteString(m.styles.Status.Render(m.status))
		}
		b.WriteString("\n")
	}

	if m.prompt != promptNone {
		b.WriteString(m.styles.Prompt.Render(m.input.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) renderCard(view review.View) string {
	switch {
	case !view.Loaded:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Heading.Render("No words loaded"),
			m.styles.Hint.Render("Open a word list with o"))
	case view.AllDone:
		hint := "Every word is learned or mastered"
		if !view.LearnFavorites {
			hint += ". Press t to review learned favorites"
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Heading.Render("All done!"),
			m.styles.Hint.Render(hint))
	}

	r := view.Record
	lines := []string{m.styles.Heading.Render(r.Word), ""}

	switch view.Stage {
	case review.StageWord:
		lines = append(lines, m.styles.Hint.Render("→ shows the details"))

	case review.StageDetails:
		for i, f := range words.EditableFields {
			value := r.Get(f)
			if value == "" {
				value = "-"
			}
			lines = append(lines, fmt.Sprintf("%d %s %s", i+1, m.styles.Label.Render(f.Label()+":"), value))
		}
		lines = append(lines, "", m.styles.Hint.Render("1-4 edits a field"))

	case review.StageStatus:
		lines = append(lines,
			m.styles.Label.Render("Learned:")+" "+yesNo(r.Learned),
			m.styles.Label.Render("Favorited:")+" "+yesNo(r.Favorited),
			m.styles.Label.Render("Mastered:")+" "+yesNo(r.Mastered),
			"", m.styles.Hint.Render("↑/↓ toggles learned"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
