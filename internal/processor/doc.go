// Package processor wires the command-line modes together. It loads word
// lists, runs the GUI or terminal review, and drives enrichment, Anki export,
// archiving and model listing.
package processor
