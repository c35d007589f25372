package gui

import (
	"fyne.io/fyne/v2"

	"codeberg.org/snonux/wordcycle/internal/review"
	"codeberg.org/snonux/wordcycle/internal/words"
)

// onNext advances one stage or to the next eligible word
func (a *Application) onNext() {
	a.session.Next()
	a.refresh()
}

// onPrevious goes back one stage or to the previous eligible word
func (a *Application) onPrevious() {
	a.session.Previous()
	a.refresh()
}

func (a *Application) onToggleLearned() {
	if a.session.ToggleLearned() {
		a.updateStatus("Learned: " + yesNo(a.session.View().Record.Learned))
	}
	a.refresh()
}

func (a *Application) onToggleFavorited() {
	if a.session.ToggleFavorited() {
		a.updateStatus("Favorited: " + yesNo(a.session.View().Record.Favorited))
	}
	a.refresh()
}

func (a *Application) onToggleMastered() {
	if a.session.ToggleMastered() {
		a.updateStatus("Mastered: " + yesNo(a.session.View().Record.Mastered))
	}
	a.refresh()
}

func (a *Application) onToggleLearnFavorites() {
	if a.session.ToggleLearnFavorites() {
		a.updateStatus("Reviewing learned favorites")
	} else {
		a.updateStatus("Skipping learned favorites")
	}
	a.refresh()
}

// setupKeyboardShortcuts routes keys to session events while no entry has
// focus and no dialog is open
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if a.dialogOpen || a.window.Canvas().Focused() != nil {
			return
		}
		a.handleShortcutKey(ev.Name)
	})
}

// editKeys maps the number keys to the editable fields in display order
var editKeys = map[fyne.KeyName]int{
	fyne.Key1: 0,
	fyne.Key2: 1,
	fyne.Key3: 2,
	fyne.Key4: 3,
}

// handleShortcutKey handles the actual shortcut action
func (a *Application) handleShortcutKey(key fyne.KeyName) {
	if i, ok := editKeys[key]; ok {
		view := a.session.View()
		if view.Loaded && !view.AllDone && view.Stage == review.StageDetails {
			a.onEditField(words.EditableFields[i])
		}
		return
	}

	switch key {
	case fyne.KeyRight:
		a.onNext()
	case fyne.KeyLeft:
		a.onPrevious()
	case fyne.KeyUp, fyne.KeyDown:
		a.onToggleLearned()
	case fyne.KeyF:
		a.onToggleFavorited()
	case fyne.KeyM:
		a.onToggleMastered()
	case fyne.KeyT:
		a.onToggleLearnFavorites()
	case fyne.KeyJ:
		a.onJump()
	case fyne.KeyO:
		a.onOpen()
	case fyne.KeyS:
		a.onSave()
	case fyne.KeyH:
		a.onShowHotkeys()
	case fyne.KeyQ:
		a.window.Close()
	}
}
