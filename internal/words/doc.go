// Package words holds the vocabulary list reviewed by wordcycle. It parses
// the pipe-delimited word file format, applies field edits and flag toggles
// in place, and serializes the list back into the same format.
package words
