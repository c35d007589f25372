package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/wordcycle/internal/review"
	"codeberg.org/snonux/wordcycle/internal/words"
)

// CardDisplay renders one stage of the current word
type CardDisplay struct {
	widget.BaseWidget

	container *fyne.Container
	heading   *widget.RichText
	rows      []*widget.Label
	hint      *widget.Label
}

// NewCardDisplay creates a new card display widget
func NewCardDisplay() *CardDisplay {
	d := &CardDisplay{}

	d.heading = widget.NewRichText()
	d.heading.Wrapping = fyne.TextWrapWord

	body := container.NewVBox()
	for range words.EditableFields {
		row := widget.NewLabel("")
		row.Wrapping = fyne.TextWrapWord
		d.rows = append(d.rows, row)
		body.Add(row)
	}

	d.hint = widget.NewLabel("")
	d.hint.TextStyle = fyne.TextStyle{Italic: true}
	d.hint.Alignment = fyne.TextAlignCenter

	d.container = container.NewBorder(
		container.NewCenter(d.heading),
		d.hint,
		nil, nil,
		container.NewPadded(body),
	)

	d.ExtendBaseWidget(d)
	return d
}

// CreateRenderer implements fyne.Widget
func (d *CardDisplay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.container)
}

// Heading returns the text currently shown as the card title
func (d *CardDisplay) Heading() string {
	return d.heading.String()
}

// Row returns the text of detail row i
func (d *CardDisplay) Row(i int) string {
	return d.rows[i].Text
}

// Hint returns the hint line below the card
func (d *CardDisplay) Hint() string {
	return d.hint.Text
}

// SetView renders a session snapshot
func (d *CardDisplay) SetView(v review.View) {
	switch {
	case !v.Loaded:
		d.show("No words loaded", nil, "Open a word list with o")
		return
	case v.AllDone:
		hint := "Every word is learned or mastered"
		if !v.LearnFavorites {
			hint += ". Press t to review learned favorites"
		}
		d.show("All done!", nil, hint)
		return
	}

	r := v.Record
	switch v.Stage {
	case review.StageWord:
		d.show(r.Word, nil, "→ shows the details")

	case review.StageDetails:
		rows := make([]string, len(words.EditableFields))
		for i, f := range words.EditableFields {
			value := r.Get(f)
			if value == "" {
				value = "-"
			}
			rows[i] = fmt.Sprintf("%d  %s: %s", i+1, f.Label(), value)
		}
		d.show(r.Word, rows, "1-4 edits a field, → shows the status")

	case review.StageStatus:
		rows := []string{
			"Learned: " + yesNo(r.Learned),
			"Favorited: " + yesNo(r.Favorited),
			"Mastered: " + yesNo(r.Mastered),
		}
		d.show(r.Word, rows, "↑/↓ toggles learned, → moves to the next word")
	}
}

func (d *CardDisplay) show(heading string, rows []string, hint string) {
	d.heading.Segments = []widget.RichTextSegment{
		&widget.TextSegment{Text: heading, Style: widget.RichTextStyleHeading},
	}
	d.heading.Refresh()

	for i, row := range d.rows {
		if i < len(rows) {
			row.SetText(rows[i])
			row.Show()
		} else {
			row.SetText("")
			row.Hide()
		}
	}

	d.hint.SetText(hint)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
