package gui

import (
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"github.com/rs/zerolog"

	"codeberg.org/snonux/wordcycle/internal"
	"codeberg.org/snonux/wordcycle/internal/cli"
	"codeberg.org/snonux/wordcycle/internal/review"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	card          *CardDisplay
	progressLabel *widget.Label
	statusLabel   *widget.Label

	// Toolbar buttons
	prevBtn           *ttwidget.Button
	nextBtn           *ttwidget.Button
	learnedBtn        *ttwidget.Button
	favoriteBtn       *ttwidget.Button
	masteredBtn       *ttwidget.Button
	learnFavoritesBtn *ttwidget.Button
	openBtn           *ttwidget.Button
	saveBtn           *ttwidget.Button
	jumpBtn           *ttwidget.Button
	helpBtn           *ttwidget.Button

	// State
	session    *review.Session
	filePath   string
	dialogOpen bool

	config *Config
	log    zerolog.Logger
	now    func() time.Time
}

// Config holds GUI application configuration
type Config struct {
	OutputDir string // default location of the save dialog
	FilePath  string // word file loaded at start, shown in the title
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	return &Config{
		OutputDir: cli.DefaultOutputDir(),
	}
}

// New creates a new GUI application for session
func New(session *review.Session, config *Config, logger zerolog.Logger) *Application {
	return newApplication(app.NewWithID("org.codeberg.snonux.wordcycle"), session, config, logger)
}

func newApplication(fyneApp fyne.App, session *review.Session, config *Config, logger zerolog.Logger) *Application {
	if config == nil {
		config = DefaultConfig()
	} else if config.OutputDir == "" {
		config.OutputDir = DefaultConfig().OutputDir
	}

	fyneApp.SetIcon(theme.FileTextIcon())

	a := &Application{
		app:      fyneApp,
		session:  session,
		filePath: config.FilePath,
		config:   config,
		log:      logger,
		now:      time.Now,
	}

	a.setupUI()
	a.refresh()

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow("")
	a.window.Resize(fyne.NewSize(640, 480))
	a.updateTitle()

	a.card = NewCardDisplay()

	// Tooltips are set after the tooltip layer exists
	a.prevBtn = ttwidget.NewButtonWithIcon("", theme.NavigateBackIcon(), a.onPrevious)
	a.nextBtn = ttwidget.NewButtonWithIcon("", theme.NavigateNextIcon(), a.onNext)
	a.learnedBtn = ttwidget.NewButtonWithIcon("", theme.ConfirmIcon(), a.onToggleLearned)
	a.favoriteBtn = ttwidget.NewButtonWithIcon("", theme.VisibilityIcon(), a.onToggleFavorited)
	a.masteredBtn = ttwidget.NewButtonWithIcon("", theme.MediaRecordIcon(), a.onToggleMastered)
	a.learnFavoritesBtn = ttwidget.NewButtonWithIcon("", theme.HistoryIcon(), a.onToggleLearnFavorites)
	a.openBtn = ttwidget.NewButtonWithIcon("", theme.FolderOpenIcon(), a.onOpen)
	a.saveBtn = ttwidget.NewButtonWithIcon("", theme.DocumentSaveIcon(), a.onSave)
	a.jumpBtn = ttwidget.NewButtonWithIcon("", theme.SearchIcon(), a.onJump)
	a.helpBtn = ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)

	toolbar := container.NewHBox(
		a.prevBtn,
		a.nextBtn,
		widget.NewSeparator(),
		a.learnedBtn,
		a.favoriteBtn,
		a.masteredBtn,
		a.learnFavoritesBtn,
		widget.NewSeparator(),
		a.openBtn,
		a.saveBtn,
		a.jumpBtn,
		widget.NewSeparator(),
		a.helpBtn,
	)

	a.progressLabel = widget.NewLabel("")
	a.progressLabel.TextStyle = fyne.TextStyle{Monospace: true}
	a.statusLabel = widget.NewLabel("Ready")
	a.statusLabel.TextStyle = fyne.TextStyle{Italic: true}

	statusSection := container.NewBorder(
		widget.NewSeparator(), nil,
		nil,
		a.progressLabel,
		a.statusLabel,
	)

	content := container.NewBorder(
		container.NewVBox(toolbar, widget.NewSeparator()),
		statusSection,
		nil, nil,
		a.card,
	)

	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.setupTooltips()
	a.setupKeyboardShortcuts()
}

// setupTooltips sets up all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.prevBtn.SetToolTip("Previous (←)")
	a.nextBtn.SetToolTip("Next (→)")
	a.learnedBtn.SetToolTip("Toggle learned on the status card (↑/↓)")
	a.favoriteBtn.SetToolTip("Toggle favorite (f)")
	a.masteredBtn.SetToolTip("Toggle mastered (m)")
	a.learnFavoritesBtn.SetToolTip("Review learned favorites on/off (t)")
	a.openBtn.SetToolTip("Open word list (o)")
	a.saveBtn.SetToolTip("Save word list (s)")
	a.jumpBtn.SetToolTip("Jump to word number (j)")
	a.helpBtn.SetToolTip("Show hotkeys (h)")
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

func (a *Application) updateTitle() {
	title := fmt.Sprintf("wordcycle v%s", internal.Version)
	if a.filePath != "" {
		title += " - " + filepath.Base(a.filePath)
	}
	a.window.SetTitle(title)
}

// refresh re-renders the card, the progress line and the button states
func (a *Application) refresh() {
	view := a.session.View()
	a.card.SetView(view)

	progress := view.Progress.String()
	if view.LearnFavorites {
		progress += " ★"
	}
	a.progressLabel.SetText(progress)

	onCard := view.Loaded && !view.AllDone
	setEnabled(onCard, a.prevBtn, a.nextBtn, a.favoriteBtn, a.masteredBtn)
	setEnabled(onCard && view.Stage == review.StageStatus, a.learnedBtn)
	setEnabled(view.Loaded, a.saveBtn, a.jumpBtn, a.learnFavoritesBtn)
}

func setEnabled(enabled bool, buttons ...*ttwidget.Button) {
	for _, b := range buttons {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}

func (a *Application) showError(err error) {
	a.log.Warn().Err(err).Msg("GUI error")
	dialog.ShowError(err, a.window)
	a.updateStatus("Error: " + err.Error())
}
