// Package enrich fills empty word fields (phonetic, part of speech, meaning
// and mnemonic) by asking an LLM provider, one record at a time.
package enrich
