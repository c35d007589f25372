// Package tui is the terminal host for a review session, built on Bubble
// Tea. It offers the same key map as the desktop GUI and uses an inline
// prompt for jumping, editing and opening files.
package tui
