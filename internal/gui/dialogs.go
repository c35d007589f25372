package gui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/wordcycle/internal/export"
	"codeberg.org/snonux/wordcycle/internal/words"
)

type closable interface {
	Show()
	SetOnClosed(func())
}

// trackDialog suspends the window shortcuts while d is shown
func (a *Application) trackDialog(d closable) {
	a.dialogOpen = true
	d.SetOnClosed(func() {
		a.dialogOpen = false
	})
	d.Show()
}

// onOpen shows a file dialog for .txt word lists
func (a *Application) onOpen() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.showError(err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			a.showError(fmt.Errorf("failed to read %s: %w", reader.URI().Name(), err))
			return
		}
		a.loadContent(reader.URI().Path(), string(data))
	}, a.window)

	d.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	if a.filePath != "" {
		setDialogLocation(d, filepath.Dir(a.filePath))
	}
	a.trackDialog(d)
}

// loadFile reads a word list from disk into the session
func (a *Application) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read word file: %w", err)
	}
	a.loadContent(path, string(data))
	return nil
}

func (a *Application) loadContent(path, content string) {
	a.session.Load(content)
	a.filePath = path
	a.updateTitle()
	a.updateStatus(fmt.Sprintf("Loaded %d words from %s", a.session.Store().Len(), filepath.Base(path)))
	a.log.Info().Str("file", path).Int("words", a.session.Store().Len()).Msg("Word list opened")
	a.refresh()
}

// onSave shows a save dialog pre-filled with the snapshot name
func (a *Application) onSave() {
	if a.session.Empty() {
		a.updateStatus("Nothing to save")
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.showError(err)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := a.writeSnapshot(writer); err != nil {
			a.showError(err)
			return
		}
		a.updateStatus("Saved to " + writer.URI().Path())
	}, a.window)

	d.SetFileName(export.SuggestedName(a.session, a.now()))
	d.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	if err := os.MkdirAll(a.config.OutputDir, 0755); err == nil {
		setDialogLocation(d, a.config.OutputDir)
	}
	a.trackDialog(d)
}

// writeSnapshot writes the serialized word list to w
func (a *Application) writeSnapshot(w io.Writer) error {
	content, err := a.session.Export()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, content); err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	return nil
}

type locatable interface {
	SetLocation(fyne.ListableURI)
}

func setDialogLocation(d locatable, dir string) {
	uri, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return
	}
	d.SetLocation(uri)
}

// onJump asks for a 1-based word number
func (a *Application) onJump() {
	if a.session.Empty() {
		return
	}

	entry := NewCustomEntry()
	entry.SetPlaceHolder(fmt.Sprintf("1-%d", a.session.Store().Len()))

	d := dialog.NewForm("Jump to word", "Jump", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Number", entry)},
		func(ok bool) {
			if ok {
				a.applyJump(entry.Text)
			}
		}, a.window)

	entry.SetOnEscape(d.Hide)
	entry.OnSubmitted = func(string) { d.Submit() }

	a.trackDialog(d)
	a.window.Canvas().Focus(entry)
}

func (a *Application) applyJump(text string) {
	if err := a.session.Jump(text); err != nil {
		a.showError(err)
		return
	}
	a.updateStatus("Jumped to word " + text)
	a.refresh()
}

// onEditField edits one detail field of the current word
func (a *Application) onEditField(field words.Field) {
	current := a.session.View().Record.Get(field)

	var entry *CustomEntry
	var input fyne.CanvasObject
	if field == words.FieldMeaning || field == words.FieldMnemonic {
		multi := NewCustomMultiLineEntry()
		entry, input = &multi.CustomEntry, multi
	} else {
		entry = NewCustomEntry()
		input = entry
	}
	entry.SetText(current)

	d := dialog.NewForm("Edit "+field.Label(), "Save", "Cancel",
		[]*widget.FormItem{widget.NewFormItem(field.Label(), input)},
		func(ok bool) {
			if ok {
				a.applyEdit(field, entry.Text)
			}
		}, a.window)

	entry.SetOnEscape(d.Hide)
	d.Resize(fyne.NewSize(480, 200))
	a.trackDialog(d)
	a.window.Canvas().Focus(input.(fyne.Focusable))
}

func (a *Application) applyEdit(field words.Field, value string) {
	if a.session.Edit(field, words.SanitizeValue(value)) {
		a.updateStatus(field.Label() + " updated")
	}
	a.refresh()
}

// onShowHotkeys displays a dialog with all available keyboard shortcuts
func (a *Application) onShowHotkeys() {
	hotkeys := `## Review
**→** Next stage or word  
**←** Previous stage or word  
**↑ / ↓** Toggle learned (status card)  

## Marks
**f** Toggle favorite  
**m** Toggle mastered  
**t** Review learned favorites on/off  

## Details card
**1-4** Edit phonetic, part of speech, meaning, mnemonic  

## Files
**o** Open word list  
**s** Save word list  
**j** Jump to word number  

## Help
**h** Show hotkeys  
**q** Quit application  `

	content := widget.NewRichTextFromMarkdown(hotkeys)
	content.Wrapping = fyne.TextWrapWord

	scroll := container.NewScroll(container.NewPadded(content))
	scroll.SetMinSize(fyne.NewSize(420, 420))

	a.trackDialog(dialog.NewCustom("Keyboard Shortcuts", "Close", scroll, a.window))
}
