// Package gui is the Fyne desktop host for a review session. It renders the
// current card stage, maps toolbar buttons and keys to session events and
// handles opening and saving word lists.
package gui
