// Package review implements the review loop over a word list: which words
// are eligible for display, the Word -> Details -> Status stage cycle for
// each word, circular navigation between eligible words, and the progress
// figures shown to the user. Session bundles the word store and the cursor
// into the single mutable context handed to every UI event handler.
package review
