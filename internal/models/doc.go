// Package models lists the OpenAI chat models that can be used for word
// enrichment with the configured API key.
package models
